package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user creation, lookup and listing against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPhoneAlreadyRegistered].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FullName, user.PhoneNumber, user.Tariff, user.CreatedAt)

	var created models.User
	err := row.Scan(&created.ID, &created.FullName, &created.PhoneNumber, &created.Tariff, &created.CreatedAt, &created.UpdatedAt)
	if err == nil {
		return created, nil
	}

	if isUniqueViolation(err) {
		log.Warn().
			Str("func", "*userRepository.CreateUser").
			Str("phone_number", user.PhoneNumber).
			Str("constraint", postgresConstraint(err)).
			Msg("phone number already registered")
		return models.User{}, ErrPhoneAlreadyRegistered
	}

	if postgresError(err) != "" {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to scan inserted user")
	return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
}

// FindUserByPhone retrieves the user whose canonical phone number equals
// phoneNumber. [sql.ErrNoRows] is translated to [ErrNoUserWasFound].
func (r *userRepository) FindUserByPhone(ctx context.Context, phoneNumber string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByPhone, phoneNumber)

	err := row.Scan(&found.ID, &found.FullName, &found.PhoneNumber, &found.Tariff, &found.CreatedAt, &found.UpdatedAt)
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).
			Str("func", "*userRepository.FindUserByPhone").
			Str("phone_number", phoneNumber).
			Msg("failed to find user by phone")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// ListUsers returns one page of users ordered newest first.
func (r *userRepository) ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(models.User{}.TableName(), userColumns, page)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsers").
			Int("page_number", page.PageNumber).
			Int("page_size", page.PageSize).
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Limit())
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.FullName, &user.PhoneNumber, &user.Tariff, &user.CreatedAt, &user.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsers returns the total number of registered users.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	return count(ctx, r.db, models.User{}.TableName())
}

// count runs SELECT COUNT(*) over table.
func count(ctx context.Context, db *DB, table string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountQuery(table)
	if err != nil {
		log.Err(err).Str("func", "store.count").Str("table", table).Msg("failed to create query")
		return 0, err
	}

	var total int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "store.count").Str("table", table).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
