package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/utils"
	"github.com/MKhiriev/go-payment-system/models"
)

const msgInternalError = "An internal server error occurred"

// withRecovery turns a panic in a downstream handler into a 500 response
// carrying the generic error envelope.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if _, err := utils.WriteJSON(w, models.ErrorResponse(msgInternalError), http.StatusInternalServerError); err != nil {
				logger.FromRequest(r).Err(err).Msg("writing panic response failed")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
