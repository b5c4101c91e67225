// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Payment is a recorded tariff payment together with the receipt that
// proves it.
type Payment struct {
	// ID is the surrogate key assigned by the database.
	ID int64 `json:"id"`

	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Tariff      string `json:"tariff"`

	// CheckFilePath is the full storage path of the receipt file.
	// It is internal and never exposed by the API.
	CheckFilePath string `json:"-"`

	// CheckFileName is the generated unique name of the receipt file.
	// The receipt is served statically under this name.
	CheckFileName string `json:"checkFileName"`

	// CreatedAt is the UTC moment the payment was recorded.
	CreatedAt time.Time `json:"createdAt"`

	// UserID links the payment to a registered user with the same phone
	// number. Nil when no such user existed at payment time, or when the
	// user was deleted later.
	UserID *int64 `json:"userId,omitempty"`
}

// TableName returns the name of the database table
// associated with the Payment model.
func (p Payment) TableName() string {
	return "payments"
}

// PaymentResponse is the public shape of a payment returned by the API.
type PaymentResponse struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Tariff        string    `json:"tariff"`
	CheckFileName string    `json:"checkFileName"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToResponse maps the stored payment onto its API representation.
func (p Payment) ToResponse() PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		FullName:      p.FullName,
		PhoneNumber:   p.PhoneNumber,
		Tariff:        p.Tariff,
		CheckFileName: p.CheckFileName,
		CreatedAt:     p.CreatedAt,
	}
}
