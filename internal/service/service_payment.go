// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/store"
	"github.com/MKhiriev/go-payment-system/internal/utils"
	"github.com/MKhiriev/go-payment-system/models"
)

// nameGenerator produces unique receipt base names.
type nameGenerator interface {
	Generate() string
}

// paymentService implements [PaymentService]. A payment is linked to the
// user registered with the same phone number, if any. Paying never creates
// a user.
type paymentService struct {
	payments store.PaymentRepository
	users    store.UserRepository
	receipts store.ReceiptStorage

	names nameGenerator
	now   func() time.Time

	logger *logger.Logger
}

// NewPaymentService constructs a [PaymentService].
func NewPaymentService(payments store.PaymentRepository, users store.UserRepository, receipts store.ReceiptStorage, logger *logger.Logger) PaymentService {
	return &paymentService{
		payments: payments,
		users:    users,
		receipts: receipts,
		names:    utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

// Pay stores the receipt under a fresh unique name and records the payment.
// When the payment row cannot be written, the stored receipt is removed.
func (s *paymentService) Pay(ctx context.Context, req models.PayRequest) (models.PaymentResponse, error) {
	log := logger.FromContext(ctx)

	if req.CheckFile == nil {
		return models.PaymentResponse{}, ErrMissingFile
	}

	phone := utils.NormalizePhone(req.PhoneNumber)

	var userID *int64
	user, err := s.users.FindUserByPhone(ctx, phone)
	switch {
	case err == nil:
		userID = &user.ID
	case errors.Is(err, store.ErrNoUserWasFound):
		// anonymous payer
	default:
		log.Err(err).Str("func", "*paymentService.Pay").Msg("failed to look up payer")
		return models.PaymentResponse{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	fileName := s.names.Generate() + receiptExtension(req.CheckFile.FileName)

	filePath, err := s.receipts.Save(ctx, fileName, req.CheckFile.Content)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.Pay").Str("file_name", fileName).Msg("failed to save receipt")
		return models.PaymentResponse{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	payment := models.Payment{
		FullName:      strings.TrimSpace(req.FullName),
		PhoneNumber:   phone,
		Tariff:        strings.TrimSpace(req.Tariff),
		CheckFilePath: filePath,
		CheckFileName: fileName,
		CreatedAt:     s.now().UTC(),
		UserID:        userID,
	}

	created, err := s.payments.CreatePayment(ctx, payment)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.Pay").Str("file_name", fileName).Msg("failed to record payment")
		if rmErr := s.receipts.Remove(ctx, fileName); rmErr != nil {
			log.Warn().Err(rmErr).Str("file_name", fileName).Msg("orphaned receipt left in upload directory")
		}
		return models.PaymentResponse{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	log.Info().
		Str("func", "*paymentService.Pay").
		Int64("payment_id", created.ID).
		Bool("linked", created.UserID != nil).
		Msg("payment recorded")
	return created.ToResponse(), nil
}

// ListPayments returns one page of payments, newest first.
func (s *paymentService) ListPayments(ctx context.Context, req models.PageRequest) (models.Page[models.PaymentResponse], error) {
	log := logger.FromContext(ctx)
	page := models.NewPageRequest(req.PageNumber, req.PageSize)

	total, err := s.payments.CountPayments(ctx)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.ListPayments").Msg("failed to count payments")
		return models.Page[models.PaymentResponse]{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	payments, err := s.payments.ListPayments(ctx, page)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.ListPayments").Msg("failed to list payments")
		return models.Page[models.PaymentResponse]{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	return models.MapPage(models.NewPage(payments, total, page), models.Payment.ToResponse), nil
}

// ListPaymentsByPhone returns every payment made with the phone number,
// newest first.
func (s *paymentService) ListPaymentsByPhone(ctx context.Context, phoneNumber string) ([]models.PaymentResponse, error) {
	log := logger.FromContext(ctx)

	payments, err := s.payments.FindPaymentsByPhone(ctx, utils.NormalizePhone(phoneNumber))
	if err != nil {
		log.Err(err).Str("func", "*paymentService.ListPaymentsByPhone").Msg("failed to list payments by phone")
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	responses := make([]models.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, payment.ToResponse())
	}

	return responses, nil
}

// receiptExtension returns the extension of the base name of fileName,
// including the leading dot, or "" when there is none. A trailing dot does
// not count as an extension. Both slash styles are treated as separators.
func receiptExtension(fileName string) string {
	base := fileName
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}

	dot := strings.LastIndexByte(base, '.')
	if dot < 0 || dot == len(base)-1 {
		return ""
	}

	return base[dot:]
}
