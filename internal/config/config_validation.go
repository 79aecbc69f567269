package config

import (
	"net/url"
	"strings"
	"time"
)

// Fallbacks applied after merging, before validation.
const (
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 15 * time.Second
	defaultProgressInterval = 500 * time.Millisecond
)

// applyDefaults fills zero-valued fields that have safe fallbacks. Required
// fields (origin URL, cache dir) are left untouched so validation can catch
// them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Origin.RequestTimeout <= 0 {
		cfg.Origin.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.ProgressInterval <= 0 {
		cfg.Sync.ProgressInterval = defaultProgressInterval
	}
	if cfg.Cache.IndexDSN == "" && cfg.Cache.Dir != "" {
		cfg.Cache.IndexDSN = strings.TrimRight(cfg.Cache.Dir, "/") + "/index.db"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Origin.BaseURL == "" {
		return ErrInvalidOriginConfigs
	}
	if u, err := url.Parse(cfg.Origin.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidOriginConfigs
	}

	if cfg.Cache.Dir == "" || cfg.Cache.IndexDSN == "" {
		return ErrInvalidCacheConfigs
	}

	if cfg.Sync.OperationTimeout < 0 || cfg.Sync.UpdateCheckInterval < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
