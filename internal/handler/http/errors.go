// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while decoding request bodies, before the service
// layer is reached. Both map to 400 Bad Request.
var (
	// ErrInvalidJSON is returned when a JSON request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a multipart request body cannot be
	// parsed.
	ErrInvalidForm = errors.New("invalid multipart form was passed")
)
