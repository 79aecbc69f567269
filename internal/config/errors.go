package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidOriginConfigs indicates invalid origin settings
	// (for example, a missing or unparsable base URL).
	ErrInvalidOriginConfigs = errors.New("invalid origin configuration")
	// ErrInvalidCacheConfigs indicates invalid local cache settings
	// (for example, an empty cache directory).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidSyncConfigs indicates invalid coordinator settings
	// (for example, a negative interval or timeout).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
