package store

import (
	"fmt"

	"github.com/MKhiriev/go-payment-system/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (full_name, phone_number, tariff, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, full_name, phone_number, tariff, created_at, updated_at;`

	findUserByPhone = `SELECT id, full_name, phone_number, tariff, created_at, updated_at
    FROM users
    WHERE phone_number = $1;`

	createPayment = `INSERT INTO payments (full_name, phone_number, tariff, check_file_path, check_file_name, created_at, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, full_name, phone_number, tariff, check_file_path, check_file_name, created_at, user_id;`
)

var (
	userColumns = []string{
		"id", "full_name", "phone_number", "tariff", "created_at", "updated_at",
	}

	paymentColumns = []string{
		"id", "full_name", "phone_number", "tariff",
		"check_file_path", "check_file_name", "created_at", "user_id",
	}

	// newest first; id breaks ties between rows created in the same instant
	newestFirst = []string{"created_at DESC", "id DESC"}

	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

// buildListQuery builds a paged SELECT of columns from table ordered newest
// first.
func buildListQuery(table string, columns []string, page models.PageRequest) (string, []any, error) {
	query, args, err := psql.
		Select(columns...).
		From(table).
		OrderBy(newestFirst...).
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountQuery builds a SELECT COUNT(*) over table.
func buildCountQuery(table string) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildPaymentsByPhoneQuery(phoneNumber string) (string, []any, error) {
	query, args, err := psql.
		Select(paymentColumns...).
		From(models.Payment{}.TableName()).
		Where(sq.Eq{"phone_number": phoneNumber}).
		OrderBy(newestFirst...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
