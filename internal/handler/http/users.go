package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/models"
)

const (
	msgUserRegistered = "User registered successfully"
	msgUsersList      = "Users list"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.UserService.SignUp(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	writeSuccess(w, r, user, msgUserRegistered)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.UserService.ListUsers(r.Context(), pageRequestFromQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, page, msgUsersList)
}
