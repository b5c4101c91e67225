package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPhoneAlreadyRegistered is returned when an INSERT into users
	// violates the unique constraint on phone_number.
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrReceiptNotSaved is returned when a receipt file could not be written
	// to the upload directory.
	ErrReceiptNotSaved = errors.New("receipt file was not saved")

	// ErrInvalidReceiptName is returned when a receipt file name is empty or
	// would escape the upload directory.
	ErrInvalidReceiptName = errors.New("invalid receipt file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result set
	// fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
