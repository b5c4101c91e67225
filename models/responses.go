package models

// APIResponse is the envelope every JSON endpoint answers with.
//
// On success Data holds the payload and Errors is empty. On failure Success
// is false, Message carries a human-readable summary and Errors lists every
// individual problem (for example each failed validation rule).
type APIResponse[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors"`
}

// SuccessResponse wraps data into a successful envelope.
func SuccessResponse[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  []string{},
	}
}

// ErrorResponse builds a failed envelope. When no errors are given the
// message itself is listed as the only error.
func ErrorResponse(message string, errors ...string) APIResponse[any] {
	if len(errors) == 0 {
		errors = []string{message}
	}

	return APIResponse[any]{
		Success: false,
		Message: message,
		Data:    nil,
		Errors:  errors,
	}
}

// VersionResponse is the payload of GET /api/version.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"buildVersion"`
	BuildDate    string `json:"buildDate"`
	BuildCommit  string `json:"buildCommit"`
}
