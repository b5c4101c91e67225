package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-payment-system/models"
)

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts user and returns it with the database-assigned ID.
	// A second user with the same phone number yields ErrPhoneAlreadyRegistered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByPhone returns the user with the given canonical phone number
	// or ErrNoUserWasFound.
	FindUserByPhone(ctx context.Context, phoneNumber string) (models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// PaymentRepository persists payments.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error)
	ListPayments(ctx context.Context, page models.PageRequest) ([]models.Payment, error)
	CountPayments(ctx context.Context) (int64, error)
	// FindPaymentsByPhone returns every payment made with the given canonical
	// phone number, newest first.
	FindPaymentsByPhone(ctx context.Context, phoneNumber string) ([]models.Payment, error)
}

// ReceiptStorage stores uploaded receipt files.
type ReceiptStorage interface {
	// Save writes the content of r under fileName and returns the full
	// storage path of the written file.
	Save(ctx context.Context, fileName string, r io.Reader) (string, error)
	// Remove deletes the file previously stored under fileName.
	Remove(ctx context.Context, fileName string) error
}
