// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgPaymentRecorded = "Payment recorded successfully"
	msgPaymentsList    = "Payments list"
)

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize())
	if err := r.ParseMultipartForm(formMemoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, validators.NewValidationError(
				fmt.Sprintf(validators.MsgCheckFileTooLarge, h.receiptLimitMB())))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Err(err).Msg("removing multipart temporary files failed")
		}
	}()

	req := models.PayRequest{
		FullName:    r.FormValue(validators.FieldFullName),
		PhoneNumber: r.FormValue(validators.FieldPhoneNumber),
		Tariff:      r.FormValue(validators.FieldTariff),
	}

	file, header, err := r.FormFile(validators.FieldCheckFile)
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	default:
		defer file.Close()
		req.CheckFile = &models.Receipt{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
	}

	payment, err := h.services.PaymentService.Pay(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().
		Int64("payment_id", payment.ID).
		Str("check_file_name", payment.CheckFileName).
		Msg("payment recorded")
	writeSuccess(w, r, payment, msgPaymentRecorded)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.PaymentService.ListPayments(r.Context(), pageRequestFromQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, page, msgPaymentsList)
}

func (h *Handler) listPaymentsByPhone(w http.ResponseWriter, r *http.Request) {
	// chi matches on the raw path when the client escaped characters such
	// as '+', so the parameter may still be percent-encoded.
	phoneNumber := chi.URLParam(r, validators.FieldPhoneNumber)
	if unescaped, err := url.PathUnescape(phoneNumber); err == nil {
		phoneNumber = unescaped
	}

	payments, err := h.services.PaymentService.ListPaymentsByPhone(r.Context(), phoneNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, payments, msgPaymentsList)
}

func (h *Handler) receiptLimitMB() int64 {
	limit := h.server.MaxUploadSize
	if limit <= 0 {
		limit = validators.DefaultMaxReceiptSize
	}

	return limit / (1 << 20)
}
