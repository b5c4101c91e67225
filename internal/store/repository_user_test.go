package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "full_name", "phone_number", "tariff", "created_at", "updated_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, ConstraintName: "users_phone_number_key"}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	user := models.User{
		FullName:    "Ali Valiyev",
		PhoneNumber: "+998901234567",
		Tariff:      "Premium",
		CreatedAt:   now,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.FullName, user.PhoneNumber, user.Tariff, now).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, user.FullName, user.PhoneNumber, user.Tariff, now, nil))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, user.PhoneNumber, created.PhoneNumber)
	assert.Equal(t, now, created.CreatedAt)
	assert.Nil(t, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{PhoneNumber: "+998901234567"})

	assert.ErrorIs(t, err, ErrPhoneAlreadyRegistered)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreateUser(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrPhoneAlreadyRegistered)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape → scan error

	_, err := repo.CreateUser(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByPhone(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
		wantID  int64
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE phone_number = \\$1").
					WithArgs("+998901234567").
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(5, "Ali", "+998901234567", "Basic", now, now))
			},
			wantID: 5,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("+998901234567").
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			user, err := repo.FindUserByPhone(context.Background(), "+998901234567")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			require.NotNil(t, user.UpdatedAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at DESC, id DESC LIMIT 2 OFFSET 2")).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(4, "D", "+998900000004", "Basic", now, nil).
			AddRow(3, "C", "+998900000003", "Basic", now.Add(-time.Minute), nil))

	users, err := repo.ListUsers(context.Background(), models.NewPageRequest(2, 2))

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(4), users[0].ID)
	assert.Equal(t, int64(3), users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.ListUsers(context.Background(), models.DefaultPageRequest())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("FROM users").WillReturnError(errors.New("boom"))

		_, err := repo.ListUsers(context.Background(), models.DefaultPageRequest())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("FROM users").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("not-a-number", "A", "+998900000001", "Basic", time.Now(), nil))

		_, err := repo.ListUsers(context.Background(), models.DefaultPageRequest())
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("FROM users").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(1, "A", "+998900000001", "Basic", time.Now(), nil).
				RowError(0, errors.New("stream broken")))

		_, err := repo.ListUsers(context.Background(), models.DefaultPageRequest())
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestCountUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.CountUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}

func TestCountUsers_Error(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnError(errors.New("boom"))

	_, err := repo.CountUsers(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
