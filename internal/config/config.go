package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// content-sync daemon. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Origin holds connection settings for the remote content origin.
	Origin Origin `envPrefix:"ORIGIN_"`

	// Cache holds local cache directory and index database settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Server holds network settings for the HTTP control API.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds coordinator and background worker settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Origin holds settings for the remote content origin the transfer gateway
// talks to.
type Origin struct {
	// BaseURL is the root URL of the content origin, e.g.
	// "https://cdn.example.com".
	// Env: ORIGIN_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AuthToken is an optional bearer token attached to every origin
	// request. When it is a JWT, the gateway inspects its expiry and warns
	// before it lapses.
	// Env: ORIGIN_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// HashKey is the optional HMAC key used for payload integrity hashes on
	// origin POST requests.
	// Env: ORIGIN_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// RequestTimeout is the per-request timeout for origin calls.
	// Env: ORIGIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds local cache settings.
type Cache struct {
	// Dir is the root directory of the local cache. Catalog descriptors are
	// kept under Dir/catalogs, content under Dir/content.
	// Env: CACHE_DIR
	Dir string `env:"DIR"`

	// IndexDSN is the SQLite DSN of the catalog cache index database.
	// Env: CACHE_INDEX_DSN
	IndexDSN string `env:"INDEX_DSN"`
}

// Server holds network settings for the HTTP control API.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds handling of a single control API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds coordinator and background worker settings.
type Sync struct {
	// ProgressInterval is the sampling interval of the content download
	// progress loop.
	// Env: SYNC_PROGRESS_INTERVAL
	ProgressInterval time.Duration `env:"PROGRESS_INTERVAL"`

	// UpdateCheckInterval defines how often the background update worker
	// asks the origin for stale catalogs. Zero disables the worker.
	// Env: SYNC_UPDATE_CHECK_INTERVAL
	UpdateCheckInterval time.Duration `env:"UPDATE_CHECK_INTERVAL"`

	// AutoApplyUpdates makes the update worker download and commit stale
	// catalogs instead of only reporting them.
	// Env: SYNC_AUTO_APPLY_UPDATES
	AutoApplyUpdates bool `env:"AUTO_APPLY_UPDATES"`

	// OperationTimeout bounds every asynchronous coordinator operation.
	// Zero means unbounded.
	// Env: SYNC_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
}

// GetConfig builds the daemon configuration by merging environment variables,
// command-line flags, and an optional JSON file, then validating the result.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
