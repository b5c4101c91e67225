package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/service"
	"github.com/MKhiriev/go-payment-system/internal/utils"
	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
)

const msgValidationFailed = "Validation error"

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,

	service.ErrDuplicateUser: http.StatusBadRequest,
	service.ErrMissingFile:   http.StatusBadRequest,
	service.ErrProcessing:    http.StatusBadRequest,

	ErrInvalidJSON: http.StatusBadRequest,
	ErrInvalidForm: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the error envelope. Validation failures list every
// collected message; known domain errors expose their text; anything else is
// reported with the generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var body models.APIResponse[any]
	switch {
	case errors.Is(err, validators.ErrValidation):
		body = models.ErrorResponse(msgValidationFailed, validators.Messages(err)...)
	case status == http.StatusInternalServerError:
		body = models.ErrorResponse(msgInternalError)
	default:
		body = models.ErrorResponse(err.Error())
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Msg("writing error response failed")
	}
}

// writeSuccess answers 200 with data wrapped in the success envelope.
func writeSuccess[T any](w http.ResponseWriter, r *http.Request, data T, message string) {
	if _, err := utils.WriteJSON(w, models.SuccessResponse(data, message), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
