package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every [ValidationError] via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries every rule violation found in a request.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a *ValidationError with messages, or nil when
// there are none.
func NewValidationError(messages ...string) error {
	if len(messages) == 0 {
		return nil
	}

	return &ValidationError{Messages: messages}
}

// Messages extracts the rule violations carried by err. For errors that are
// not a [ValidationError] the error text itself is returned.
func Messages(err error) []string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages
	}

	return []string{err.Error()}
}
