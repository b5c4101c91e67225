// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"mime"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-payment-system/models"
)

// Field names accepted by [RequestValidator.Validate] to restrict validation
// to a subset of fields.
const (
	FieldFullName    = "fullName"
	FieldPhoneNumber = "phoneNumber"
	FieldTariff      = "tariff"
	FieldCheckFile   = "checkFile"
	FieldPageNumber  = "pageNumber"
	FieldPageSize    = "pageSize"
)

const (
	minFullNameLength = 2
	maxFullNameLength = 200
	maxTariffLength   = 100

	// DefaultMaxReceiptSize is the receipt size limit used when none is
	// configured: 5 MiB.
	DefaultMaxReceiptSize int64 = 5 * 1024 * 1024
)

// Messages reported to clients.
const (
	MsgFullNameRequired   = "Full name is required"
	MsgFullNameTooShort   = "Full name must be at least 2 characters long"
	MsgFullNameTooLong    = "Full name must not exceed 200 characters"
	MsgPhoneRequired      = "Phone number is required"
	MsgPhoneInvalid       = "Phone number format is invalid. Format: +998 XX XXX XX XX"
	MsgTariffRequired     = "Tariff is required"
	MsgTariffTooLong      = "Tariff name must not exceed 100 characters"
	MsgCheckFileRequired  = "Check file is required"
	MsgCheckFileEmpty     = "Check file must not be empty"
	MsgCheckFileTooLarge  = "Check file size must not exceed %dMB"
	MsgCheckFileBadFormat = "Only PDF, PNG, JPG and JPEG files are accepted"
	MsgPageNumberInvalid  = "Page number must be a positive integer"
	MsgPageSizeInvalid    = "Page size must be a positive integer"
)

// PhonePattern is the accepted phone number format, spaces optional:
// +998 XX XXX XX XX.
var PhonePattern = regexp.MustCompile(`^\+998\s?\d{2}\s?\d{3}\s?\d{2}\s?\d{2}$`)

var allowedReceiptTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/jpg":       {},
}

// RequestValidator validates the inbound requests of the payment API:
// [models.SignUpRequest], [models.PayRequest] and [models.PageRequest].
//
// Every violated rule is reported; validation does not stop at the first
// failure. The result is a *[ValidationError] or nil.
type RequestValidator struct {
	maxReceiptSize int64
}

// NewRequestValidator constructs a RequestValidator that rejects receipts
// larger than maxReceiptSize bytes. A non-positive limit falls back to
// [DefaultMaxReceiptSize].
func NewRequestValidator(maxReceiptSize int64) Validator {
	if maxReceiptSize <= 0 {
		maxReceiptSize = DefaultMaxReceiptSize
	}

	return &RequestValidator{maxReceiptSize: maxReceiptSize}
}

// Validate dispatches on the dynamic type of obj. Both values and pointers
// are accepted. fields optionally restricts which fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.PayRequest:
		return v.validatePay(value, fields...)
	case *models.PayRequest:
		return v.validatePay(*value, fields...)

	case models.PageRequest:
		return v.validatePage(value, fields...)
	case *models.PageRequest:
		return v.validatePage(*value, fields...)

	case string:
		// a bare string is a phone number, e.g. a path parameter
		return NewValidationError(validatePhone(value)...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldPhoneNumber, FieldTariff}
	}

	var messages []string
	for _, f := range fields {
		switch f {
		case FieldFullName:
			messages = append(messages, validateFullName(req.FullName)...)
		case FieldPhoneNumber:
			messages = append(messages, validatePhone(req.PhoneNumber)...)
		case FieldTariff:
			messages = append(messages, validateTariff(req.Tariff)...)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return NewValidationError(messages...)
}

func (v *RequestValidator) validatePay(req models.PayRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldPhoneNumber, FieldTariff, FieldCheckFile}
	}

	var messages []string
	for _, f := range fields {
		switch f {
		case FieldFullName:
			messages = append(messages, validateFullName(req.FullName)...)
		case FieldPhoneNumber:
			messages = append(messages, validatePhone(req.PhoneNumber)...)
		case FieldTariff:
			messages = append(messages, validateTariff(req.Tariff)...)
		case FieldCheckFile:
			messages = append(messages, v.validateReceipt(req.CheckFile)...)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return NewValidationError(messages...)
}

func (v *RequestValidator) validatePage(req models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPageNumber, FieldPageSize}
	}

	var messages []string
	for _, f := range fields {
		switch f {
		case FieldPageNumber:
			if req.PageNumber < 1 {
				messages = append(messages, MsgPageNumberInvalid)
			}
		case FieldPageSize:
			if req.PageSize < 1 {
				messages = append(messages, MsgPageSizeInvalid)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return NewValidationError(messages...)
}

func validateFullName(fullName string) []string {
	name := strings.TrimSpace(fullName)
	length := utf8.RuneCountInString(name)

	var messages []string
	if name == "" {
		messages = append(messages, MsgFullNameRequired)
	}
	if length < minFullNameLength {
		messages = append(messages, MsgFullNameTooShort)
	}
	if length > maxFullNameLength {
		messages = append(messages, MsgFullNameTooLong)
	}

	return messages
}

func validatePhone(phone string) []string {
	if strings.TrimSpace(phone) == "" {
		return []string{MsgPhoneRequired, MsgPhoneInvalid}
	}
	if !PhonePattern.MatchString(phone) {
		return []string{MsgPhoneInvalid}
	}

	return nil
}

func validateTariff(tariff string) []string {
	trimmed := strings.TrimSpace(tariff)

	var messages []string
	if trimmed == "" {
		messages = append(messages, MsgTariffRequired)
	}
	if utf8.RuneCountInString(trimmed) > maxTariffLength {
		messages = append(messages, MsgTariffTooLong)
	}

	return messages
}

func (v *RequestValidator) validateReceipt(receipt *models.Receipt) []string {
	if receipt == nil {
		return []string{MsgCheckFileRequired}
	}

	var messages []string
	if receipt.Size <= 0 {
		messages = append(messages, MsgCheckFileEmpty)
	}
	if receipt.Size > v.maxReceiptSize {
		messages = append(messages, fmt.Sprintf(MsgCheckFileTooLarge, v.maxReceiptSize/(1024*1024)))
	}
	if !isAllowedReceiptType(receipt.ContentType) {
		messages = append(messages, MsgCheckFileBadFormat)
	}

	return messages
}

// isAllowedReceiptType reports whether contentType, ignoring parameters and
// case, is one of the accepted receipt formats.
func isAllowedReceiptType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	_, ok := allowedReceiptTypes[mediaType]
	return ok
}
