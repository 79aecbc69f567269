package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-origin content origin base URL
//	-origin-token origin bearer token
//	-cache-dir local cache directory
//	-index-dsn cache index SQLite DSN
//	-c/-config json file path with configs
//	-hash-key origin payload hash key
//	-request-timeout origin request timeout (e.g., "30s", "1m")
//	-progress-interval content progress sampling interval
//	-update-interval background update check interval (0 disables)
//	-auto-apply apply catalog updates automatically
//	-operation-timeout async operation timeout (0 = unbounded)
func ParseFlags() *StructuredConfig {
	var listenAddress string
	var originURL string
	var originToken string
	var cacheDir string
	var indexDSN string
	var jsonConfigPath string
	var hashKey string
	var requestTimeout time.Duration
	var progressInterval time.Duration
	var updateInterval time.Duration
	var autoApply bool
	var operationTimeout time.Duration

	flag.StringVar(&listenAddress, "a", "", "Net address host:port")
	flag.StringVar(&originURL, "origin", "", "Content origin base URL")
	flag.StringVar(&originToken, "origin-token", "", "Origin bearer token")
	flag.StringVar(&cacheDir, "cache-dir", "", "Local cache directory")
	flag.StringVar(&indexDSN, "index-dsn", "", "Cache index SQLite DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Origin payload hash key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Origin request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&progressInterval, "progress-interval", 0, "Progress sampling interval")
	flag.DurationVar(&updateInterval, "update-interval", 0, "Update check interval (0 disables)")
	flag.BoolVar(&autoApply, "auto-apply", false, "Apply catalog updates automatically")
	flag.DurationVar(&operationTimeout, "operation-timeout", 0, "Async operation timeout (0 = unbounded)")

	flag.Parse()

	return &StructuredConfig{
		Origin: Origin{
			BaseURL:        originURL,
			AuthToken:      originToken,
			HashKey:        hashKey,
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			Dir:      cacheDir,
			IndexDSN: indexDSN,
		},
		Server: Server{
			HTTPAddress: listenAddress,
		},
		Sync: Sync{
			ProgressInterval:    progressInterval,
			UpdateCheckInterval: updateInterval,
			AutoApplyUpdates:    autoApply,
			OperationTimeout:    operationTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
