// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/store"
	"github.com/MKhiriev/go-payment-system/internal/utils"
	"github.com/MKhiriev/go-payment-system/models"
)

// userService implements [UserService] on top of a [store.UserRepository].
type userService struct {
	users store.UserRepository
	now   func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a [UserService]. Requests are expected to be
// validated already; see [NewUserValidationService].
func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		now:    time.Now,
		logger: logger,
	}
}

// SignUp registers a new user under the canonical form of the phone number.
// A phone number that is already registered yields [ErrDuplicateUser].
func (s *userService) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	phone := utils.NormalizePhone(req.PhoneNumber)

	_, err := s.users.FindUserByPhone(ctx, phone)
	switch {
	case err == nil:
		log.Info().Str("func", "*userService.SignUp").Str("phone_number", phone).Msg("phone number already registered")
		return models.UserResponse{}, ErrDuplicateUser
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*userService.SignUp").Msg("failed to look up user by phone")
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	user := models.User{
		FullName:    strings.TrimSpace(req.FullName),
		PhoneNumber: phone,
		Tariff:      strings.TrimSpace(req.Tariff),
		CreatedAt:   s.now().UTC(),
	}

	created, err := s.users.CreateUser(ctx, user)
	if errors.Is(err, store.ErrPhoneAlreadyRegistered) {
		// lost a race with a concurrent sign-up for the same phone
		log.Info().Str("func", "*userService.SignUp").Str("phone_number", phone).Msg("phone number registered concurrently")
		return models.UserResponse{}, ErrDuplicateUser
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.SignUp").Msg("failed to create user")
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	log.Info().Str("func", "*userService.SignUp").Int64("user_id", created.ID).Msg("user registered")
	return created.ToResponse(), nil
}

// ListUsers returns one page of users, newest first.
func (s *userService) ListUsers(ctx context.Context, req models.PageRequest) (models.Page[models.UserResponse], error) {
	log := logger.FromContext(ctx)
	page := models.NewPageRequest(req.PageNumber, req.PageSize)

	total, err := s.users.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.ListUsers").Msg("failed to count users")
		return models.Page[models.UserResponse]{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	users, err := s.users.ListUsers(ctx, page)
	if err != nil {
		log.Err(err).Str("func", "*userService.ListUsers").Msg("failed to list users")
		return models.Page[models.UserResponse]{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	return models.MapPage(models.NewPage(users, total, page), models.User.ToResponse), nil
}
