package models

import "io"

// SignUpRequest carries the fields of POST /api/users/signup.
type SignUpRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Tariff      string `json:"tariff"`
}

// PayRequest carries the fields of the multipart POST /api/payments/pay form.
// CheckFile is nil when the form had no checkFile part.
type PayRequest struct {
	FullName    string
	PhoneNumber string
	Tariff      string
	CheckFile   *Receipt
}

// Receipt is an uploaded proof-of-payment file together with the metadata
// declared by the client.
type Receipt struct {
	// FileName is the original file name as sent by the client.
	FileName string

	// ContentType is the MIME type declared in the multipart part header.
	ContentType string

	// Size is the declared size of the file in bytes.
	Size int64

	// Content streams the file bytes.
	Content io.Reader
}
