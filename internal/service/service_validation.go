package service

import (
	"context"

	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
)

// UserValidationService rejects malformed requests before they reach the
// wrapped [UserService]. Validation failures are *validators.ValidationError.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

// NewUserValidationService returns a wrapper validating with validator.
func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserResponse{}, err
	}

	return v.inner.SignUp(ctx, req)
}

func (v *UserValidationService) ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.UserResponse], error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return models.Page[models.UserResponse]{}, err
	}

	return v.inner.ListUsers(ctx, page)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// PaymentValidationService rejects malformed requests before they reach the
// wrapped [PaymentService].
type PaymentValidationService struct {
	inner     PaymentService
	validator validators.Validator
}

func NewPaymentValidationService(validator validators.Validator) PaymentServiceWrapper {
	return &PaymentValidationService{
		validator: validator,
	}
}

func (v *PaymentValidationService) Pay(ctx context.Context, req models.PayRequest) (models.PaymentResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PaymentResponse{}, err
	}

	return v.inner.Pay(ctx, req)
}

func (v *PaymentValidationService) ListPayments(ctx context.Context, page models.PageRequest) (models.Page[models.PaymentResponse], error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return models.Page[models.PaymentResponse]{}, err
	}

	return v.inner.ListPayments(ctx, page)
}

func (v *PaymentValidationService) ListPaymentsByPhone(ctx context.Context, phoneNumber string) ([]models.PaymentResponse, error) {
	if err := v.validator.Validate(ctx, phoneNumber); err != nil {
		return nil, err
	}

	return v.inner.ListPaymentsByPhone(ctx, phoneNumber)
}

func (v *PaymentValidationService) Wrap(wrapped PaymentService) PaymentService {
	v.inner = wrapped
	return v
}
