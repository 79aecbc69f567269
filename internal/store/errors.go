package store

import "errors"

// Sentinel errors returned by store and repository methods. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrDuplicateCatalog is returned by Add when a handle with the same
	// locator id is already present in the store.
	ErrDuplicateCatalog = errors.New("catalog already present in store")

	// ErrIndexEntryNotFound is returned when a cache index query targets a
	// locator id that has no row in the index database.
	ErrIndexEntryNotFound = errors.New("catalog index entry not found")
)

// Low-level database operation errors, returned (or wrapped) by repository
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// index database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan catalog index row")
)
