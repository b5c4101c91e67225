package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-payment-system/models"
)

// UserService registers and lists users.
type UserService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.UserResponse, error)
	ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.UserResponse], error)
}

// PaymentService records and lists payments.
type PaymentService interface {
	Pay(ctx context.Context, req models.PayRequest) (models.PaymentResponse, error)
	ListPayments(ctx context.Context, page models.PageRequest) (models.Page[models.PaymentResponse], error)
	ListPaymentsByPhone(ctx context.Context, phoneNumber string) ([]models.PaymentResponse, error)
}

// AppInfoService exposes the running application version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
