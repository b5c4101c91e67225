// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/models"
)

// paymentRepository is the PostgreSQL-backed implementation of
// [PaymentRepository] over the "payments" table.
type paymentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPaymentRepository constructs a [PaymentRepository] backed by the
// provided database connection and logger.
func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePayment persists payment and returns it with the server-assigned ID.
// A nil UserID is stored as NULL.
func (p *paymentRepository) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	log := logger.FromContext(ctx)

	row := p.db.QueryRowContext(ctx, createPayment,
		payment.FullName,
		payment.PhoneNumber,
		payment.Tariff,
		payment.CheckFilePath,
		payment.CheckFileName,
		payment.CreatedAt,
		payment.UserID,
	)

	created, err := scanPayment(row)
	if err != nil {
		log.Err(err).
			Str("func", "*paymentRepository.CreatePayment").
			Str("phone_number", payment.PhoneNumber).
			Str("check_file_name", payment.CheckFileName).
			Str("pg_code", postgresError(err)).
			Msg("failed to insert payment")
		return models.Payment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListPayments returns one page of payments ordered newest first.
func (p *paymentRepository) ListPayments(ctx context.Context, page models.PageRequest) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(models.Payment{}.TableName(), paymentColumns, page)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.ListPayments").Msg("failed to create query")
		return nil, err
	}

	return p.queryPayments(ctx, "*paymentRepository.ListPayments", page.Limit(), query, args...)
}

// CountPayments returns the total number of recorded payments.
func (p *paymentRepository) CountPayments(ctx context.Context) (int64, error) {
	return count(ctx, p.db, models.Payment{}.TableName())
}

// FindPaymentsByPhone returns all payments made with phoneNumber, newest
// first. An unknown phone number yields an empty slice.
func (p *paymentRepository) FindPaymentsByPhone(ctx context.Context, phoneNumber string) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPaymentsByPhoneQuery(phoneNumber)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.FindPaymentsByPhone").Msg("failed to create query")
		return nil, err
	}

	return p.queryPayments(ctx, "*paymentRepository.FindPaymentsByPhone", 8, query, args...)
}

func (p *paymentRepository) queryPayments(ctx context.Context, funcName string, capacity int, query string, args ...any) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for payments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0, capacity)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan payment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return payments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

var (
	_ rowScanner = (*sql.Row)(nil)
	_ rowScanner = (*sql.Rows)(nil)
)

func scanPayment(row rowScanner) (models.Payment, error) {
	var payment models.Payment
	err := row.Scan(
		&payment.ID,
		&payment.FullName,
		&payment.PhoneNumber,
		&payment.Tariff,
		&payment.CheckFilePath,
		&payment.CheckFileName,
		&payment.CreatedAt,
		&payment.UserID,
	)

	return payment, err
}
