// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests of the payment service before
// they reach the workflows.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - RequestValidator: the implementation for sign-up, payment, pagination
//     and phone lookup requests. It reports every failed rule at once as a
//     *ValidationError instead of stopping at the first one.
//
// The service layer applies it through validation wrappers, so handlers only
// map the resulting error onto the response envelope.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation and semantic checks.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
