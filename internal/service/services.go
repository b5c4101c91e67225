package service

import (
	"github.com/MKhiriev/go-payment-system/internal/config"
	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/store"
	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
)

type Services struct {
	UserService    UserService
	PaymentService PaymentService
	AppInfoService AppInfoService
}

// NewServices builds every service of the application. User and payment
// services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator(cfg.Server.MaxUploadSize)

	userService := NewUserValidationService(validator).
		Wrap(NewUserService(storages.UserRepository, logger))

	paymentService := NewPaymentValidationService(validator).
		Wrap(NewPaymentService(storages.PaymentRepository, storages.UserRepository, storages.ReceiptStorage, logger))

	return &Services{
		UserService:    userService,
		PaymentService: paymentService,
		AppInfoService: appInfoService,
	}, nil
}
