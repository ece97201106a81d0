package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned when no token was stored for the requested
	// identifier.
	ErrTokenNotFound = errors.New("token was not found")

	// ErrTokenNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrTokenNotSaved = errors.New("token was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan token row")

	// ErrSealingToken is returned when a token cannot be sealed before
	// storage or opened after loading.
	ErrSealingToken = errors.New("failed to seal token")
)
