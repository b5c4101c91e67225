package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/mock"
	"github.com/MKhiriev/go-payment-system/internal/store"
	"github.com/MKhiriev/go-payment-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 4, 12, 15, 4, 5, 0, time.FixedZone("UZT", 5*60*60))

func newTestUserService(t *testing.T) (*userService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	return &userService{
		users:  users,
		now:    func() time.Time { return fixedNow },
		logger: logger.Nop(),
	}, users
}

func TestSignUp_Success(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().FindUserByPhone(ctx, "+998901234567").Return(models.User{}, store.ErrNoUserWasFound),
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "Ali Valiyev", u.FullName)
				assert.Equal(t, "+998901234567", u.PhoneNumber)
				assert.Equal(t, "Premium", u.Tariff)
				assert.Equal(t, time.UTC, u.CreatedAt.Location())
				assert.True(t, fixedNow.Equal(u.CreatedAt))
				u.ID = 1
				return u, nil
			}),
	)

	resp, err := svc.SignUp(ctx, models.SignUpRequest{
		FullName:    "  Ali Valiyev ",
		PhoneNumber: "+998 90 123 45 67",
		Tariff:      " Premium",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "+998901234567", resp.PhoneNumber)
	assert.Equal(t, "Ali Valiyev", resp.FullName)
}

// A second sign-up with the same phone in any spacing is rejected and no
// insert is attempted.
func TestSignUp_DuplicatePhone(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	users.EXPECT().FindUserByPhone(ctx, "+998901234567").
		Return(models.User{ID: 1, PhoneNumber: "+998901234567"}, nil)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SignUp(ctx, models.SignUpRequest{
		FullName:    "Someone Else",
		PhoneNumber: "+998901234567",
		Tariff:      "Basic",
	})

	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestSignUp_ConcurrentDuplicate(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	users.EXPECT().FindUserByPhone(ctx, gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrPhoneAlreadyRegistered)

	_, err := svc.SignUp(ctx, models.SignUpRequest{FullName: "Ali", PhoneNumber: "+998901234567", Tariff: "Basic"})

	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestSignUp_StoreFailures(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("lookup fails", func(t *testing.T) {
		svc, users := newTestUserService(t)
		users.EXPECT().FindUserByPhone(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

		_, err := svc.SignUp(context.Background(), models.SignUpRequest{PhoneNumber: "+998901234567"})

		assert.ErrorIs(t, err, ErrProcessing)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("insert fails", func(t *testing.T) {
		svc, users := newTestUserService(t)
		users.EXPECT().FindUserByPhone(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
		users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

		_, err := svc.SignUp(context.Background(), models.SignUpRequest{PhoneNumber: "+998901234567"})

		assert.ErrorIs(t, err, ErrProcessing)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestListUsers(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()
	page := models.NewPageRequest(2, 2)

	users.EXPECT().CountUsers(ctx).Return(int64(5), nil)
	users.EXPECT().ListUsers(ctx, page).Return([]models.User{
		{ID: 3, FullName: "C", PhoneNumber: "+998900000003", Tariff: "Basic", CreatedAt: fixedNow},
		{ID: 2, FullName: "B", PhoneNumber: "+998900000002", Tariff: "Basic", CreatedAt: fixedNow},
	}, nil)

	result, err := svc.ListUsers(ctx, page)

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, int64(3), result.Items[0].ID)
	assert.Equal(t, int64(5), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.HasPrevious)
	assert.True(t, result.HasNext)
}

func TestListUsers_ClampsPageSize(t *testing.T) {
	svc, users := newTestUserService(t)
	ctx := context.Background()

	users.EXPECT().CountUsers(ctx).Return(int64(0), nil)
	users.EXPECT().ListUsers(ctx, models.PageRequest{PageNumber: 1, PageSize: models.MaxPageSize}).Return(nil, nil)

	result, err := svc.ListUsers(ctx, models.PageRequest{PageNumber: 1, PageSize: 500})

	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, models.MaxPageSize, result.PageSize)
	assert.Equal(t, 0, result.TotalPages)
	assert.False(t, result.HasNext)
}

func TestListUsers_Errors(t *testing.T) {
	t.Run("count fails", func(t *testing.T) {
		svc, users := newTestUserService(t)
		users.EXPECT().CountUsers(gomock.Any()).Return(int64(0), store.ErrExecutingQuery)

		_, err := svc.ListUsers(context.Background(), models.DefaultPageRequest())
		assert.ErrorIs(t, err, ErrProcessing)
	})

	t.Run("list fails", func(t *testing.T) {
		svc, users := newTestUserService(t)
		users.EXPECT().CountUsers(gomock.Any()).Return(int64(1), nil)
		users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, store.ErrScanningRows)

		_, err := svc.ListUsers(context.Background(), models.DefaultPageRequest())
		assert.ErrorIs(t, err, ErrProcessing)
		assert.ErrorIs(t, err, store.ErrScanningRows)
	})
}
