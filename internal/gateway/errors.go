package gateway

import "errors"

// Sentinel errors surfaced by gateway operations. Callers match with
// [errors.Is].
var (
	// ErrCacheMissing is returned by LoadCatalogFromCache when no cached
	// descriptor exists for the requested path.
	ErrCacheMissing = errors.New("no local cache for catalog")

	// ErrCatalogNotFound is returned when the origin does not know the
	// requested catalog path.
	ErrCatalogNotFound = errors.New("catalog not found at origin")

	// ErrCatalogNotRegistered is returned by content operations that
	// reference a catalog the gateway has not loaded.
	ErrCatalogNotRegistered = errors.New("catalog not registered in gateway")

	// ErrHashMismatch is returned when downloaded content bytes do not
	// match the hash declared by the catalog descriptor.
	ErrHashMismatch = errors.New("content hash mismatch")

	// ErrUnauthorized is returned when the origin rejects the configured
	// bearer token.
	ErrUnauthorized = errors.New("origin rejected credentials")

	// ErrBadRequest is returned when the origin rejects the request shape.
	ErrBadRequest = errors.New("origin rejected request")

	// ErrOriginUnavailable is returned for origin-side 5xx failures.
	ErrOriginUnavailable = errors.New("origin unavailable")
)
