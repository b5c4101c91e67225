package store

import (
	"fmt"

	"github.com/MKhiriev/go-payment-system/internal/config"
	"github.com/MKhiriev/go-payment-system/internal/logger"
)

// Storages groups every storage dependency of the service layer.
type Storages struct {
	UserRepository    UserRepository
	PaymentRepository PaymentRepository
	ReceiptStorage    ReceiptStorage
}

// NewStorages builds the repositories on top of db and the receipt file
// storage rooted at cfg.Files.UploadDir.
func NewStorages(db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	receipts, err := NewReceiptFileStorage(cfg.Files.UploadDir, log)
	if err != nil {
		return nil, fmt.Errorf("error creating receipt storage: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PaymentRepository: NewPaymentRepository(db, log),
		ReceiptStorage:    receipts,
	}, nil
}
