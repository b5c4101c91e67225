// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-payment-system/internal/config"
	myHTTP "github.com/MKhiriev/go-payment-system/internal/handler/http"
	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/mock"
	"github.com/MKhiriev/go-payment-system/internal/service"
	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAdapter creates an httpServerAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(Config{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " http://localhost:8080/ ", want: "http://localhost:8080"},
		{raw: "https://payments.example.com", want: "https://payments.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(Config{}, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ali Valiyev", req.FullName)

		writeEnvelope(t, w, http.StatusOK, models.SuccessResponse(models.UserResponse{ID: 1, FullName: req.FullName}, "ok"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SignUp(context.Background(), models.SignUpRequest{
		FullName:    "Ali Valiyev",
		PhoneNumber: "+998901234567",
		Tariff:      "Basic",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Ali Valiyev", got.FullName)
}

func TestSignUp_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest,
			models.ErrorResponse("Validation error", validators.MsgFullNameRequired, validators.MsgTariffRequired))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SignUp(context.Background(), models.SignUpRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Validation error", apiErr.Message)
	assert.Equal(t, []string{validators.MsgFullNameRequired, validators.MsgTariffRequired}, apiErr.Errors)
	assert.Contains(t, err.Error(), validators.MsgTariffRequired)
}

func TestMapHTTPError_NonEnvelopeBodies(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{name: "router 404", status: http.StatusNotFound, body: "", wantErr: ErrNotFound, wantMessage: "Not Found"},
		{name: "plain 500", status: http.StatusInternalServerError, body: "boom\n", wantErr: ErrInternalServerError, wantMessage: "boom"},
		{name: "timeout", status: http.StatusGatewayTimeout, body: "", wantErr: ErrGatewayTimeout, wantMessage: "Gateway Timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestListUsers_SendsPageQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("pageNumber"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

		page := models.NewPage([]models.UserResponse{{ID: 6}}, 6, models.PageRequest{PageNumber: 2, PageSize: 5})
		writeEnvelope(t, w, http.StatusOK, models.SuccessResponse(page, "Users list"))
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).ListUsers(context.Background(), models.PageRequest{PageNumber: 2, PageSize: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(6), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 1)
}

func TestPageQuery_OmitsUnsetValues(t *testing.T) {
	assert.Empty(t, pageQuery(models.PageRequest{}))
	assert.Equal(t, map[string]string{"pageSize": "20"}, pageQuery(models.PageRequest{PageSize: 20}))
}

// newRouterServer serves the real HTTP handler backed by mocked services.
func newRouterServer(t *testing.T) (*httptest.Server, *mock.MockUserService, *mock.MockPaymentService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserService(ctrl)
	payments := mock.NewMockPaymentService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1", "today", "abc")).AnyTimes()

	h := myHTTP.NewHandler(
		&service.Services{UserService: users, PaymentService: payments, AppInfoService: appInfo},
		config.Server{MaxUploadSize: config.DefaultMaxUploadSize},
		config.Files{UploadDir: t.TempDir(), PublicPath: "/uploads"},
		logger.Nop(),
	)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, users, payments
}

func TestRoundTrip_Pay(t *testing.T) {
	srv, _, payments := newRouterServer(t)

	payments.EXPECT().
		Pay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PayRequest) (models.PaymentResponse, error) {
			assert.Equal(t, "Ali Valiyev", req.FullName)
			assert.Equal(t, "+998 90 123 45 67", req.PhoneNumber)
			require.NotNil(t, req.CheckFile)
			assert.Equal(t, "receipt.png", req.CheckFile.FileName)
			assert.Equal(t, "image/png", req.CheckFile.ContentType)

			content, err := io.ReadAll(req.CheckFile.Content)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(content))

			return models.PaymentResponse{ID: 10, CheckFileName: "x.png"}, nil
		})

	got, err := newTestAdapter(t, srv.URL).Pay(context.Background(), models.PayRequest{
		FullName:    "Ali Valiyev",
		PhoneNumber: "+998 90 123 45 67",
		Tariff:      "Premium",
		CheckFile: &models.Receipt{
			FileName:    "receipt.png",
			ContentType: "image/png",
			Content:     bytes.NewReader([]byte("png-bytes")),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "x.png", got.CheckFileName)
}

func TestRoundTrip_PayWithoutFile(t *testing.T) {
	srv, _, payments := newRouterServer(t)

	payments.EXPECT().
		Pay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PayRequest) (models.PaymentResponse, error) {
			assert.Nil(t, req.CheckFile)
			return models.PaymentResponse{}, service.ErrMissingFile
		})

	_, err := newTestAdapter(t, srv.URL).Pay(context.Background(), models.PayRequest{FullName: "Ali"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), service.ErrMissingFile.Error())
}

func TestRoundTrip_ListPaymentsByPhone(t *testing.T) {
	srv, _, payments := newRouterServer(t)

	payments.EXPECT().
		ListPaymentsByPhone(gomock.Any(), "+998 90 123 45 67").
		Return([]models.PaymentResponse{{ID: 1}, {ID: 2}}, nil)

	got, err := newTestAdapter(t, srv.URL).ListPaymentsByPhone(context.Background(), "+998 90 123 45 67")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRoundTrip_ListPayments(t *testing.T) {
	srv, _, payments := newRouterServer(t)

	payments.EXPECT().
		ListPayments(gomock.Any(), models.PageRequest{PageNumber: 1, PageSize: 10}).
		Return(models.NewPage([]models.PaymentResponse{}, 0, models.DefaultPageRequest()), nil)

	page, err := newTestAdapter(t, srv.URL).ListPayments(context.Background(), models.PageRequest{})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 10, page.PageSize)
}

func TestRoundTrip_Version(t *testing.T) {
	srv, _, _ := newRouterServer(t)

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.VersionResponse{
		Version:      "1.0.0",
		BuildVersion: "v1",
		BuildDate:    "today",
		BuildCommit:  "abc",
	}, got)
}

func TestRoundTrip_UnknownRoute(t *testing.T) {
	srv, _, _ := newRouterServer(t)

	a := newTestAdapter(t, strings.TrimSuffix(srv.URL, "/")+"/missing-prefix")
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}
