// Package utils provides general-purpose helpers used across the payment
// service: phone number normalization, UUIDv7 generation for receipt names,
// JSON response writing and the preconfigured HTTP client used by the API
// adapter.
package utils
