package service

import "errors"

var (
	// ErrDuplicateUser is returned by SignUp when the phone number is
	// already registered.
	ErrDuplicateUser = errors.New("a user with this phone number is already registered")

	// ErrMissingFile is returned by Pay when the request carries no receipt.
	ErrMissingFile = errors.New("check file was not uploaded")

	// ErrProcessing wraps storage and I/O failures. The wrapped message is
	// reported to the client.
	ErrProcessing = errors.New("processing error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
