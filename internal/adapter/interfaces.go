// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the payment service REST API.
//
// The primary abstraction is [ServerAdapter], which hides the transport from
// callers. The package ships an HTTP implementation ([NewHTTPServerAdapter])
// built on resty that unwraps the API envelope on success.
//
// Non-2xx responses are returned as *[APIError], which carries the envelope
// messages and matches the sentinel errors in errors.go by status code so that
// callers can use [errors.Is] (e.g. [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-payment-system/models"
)

// ServerAdapter defines communication with the payment service.
type ServerAdapter interface {
	// SignUp registers a user via POST /api/users/signup.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.UserResponse, error)

	// ListUsers fetches one page of users via GET /api/users.
	ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.UserResponse], error)

	// Pay records a payment and uploads its receipt via the multipart
	// POST /api/payments/pay. req.CheckFile may be nil, in which case the
	// server rejects the request.
	Pay(ctx context.Context, req models.PayRequest) (models.PaymentResponse, error)

	// ListPayments fetches one page of payments via GET /api/payments.
	ListPayments(ctx context.Context, page models.PageRequest) (models.Page[models.PaymentResponse], error)

	// ListPaymentsByPhone fetches every payment made with phoneNumber.
	ListPaymentsByPhone(ctx context.Context, phoneNumber string) ([]models.PaymentResponse, error)

	// Version reports the server version and build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)
}
