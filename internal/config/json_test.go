package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"origin": {
			"base_url": "https://cdn.example.com",
			"auth_token": "token-456",
			"hash_key": "key",
			"request_timeout": "20s"
		},
		"cache": {
			"dir": "/tmp/cache",
			"index_dsn": "/tmp/cache/index.db"
		},
		"server": {
			"http_address": "0.0.0.0:9090",
			"request_timeout": "5s"
		},
		"sync": {
			"progress_interval": "100ms",
			"update_check_interval": "10m",
			"auto_apply_updates": true,
			"operation_timeout": "2m"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com", cfg.Origin.BaseURL)
	assert.Equal(t, "token-456", cfg.Origin.AuthToken)
	assert.Equal(t, 20*time.Second, cfg.Origin.RequestTimeout)
	assert.Equal(t, "/tmp/cache", cfg.Cache.Dir)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 100*time.Millisecond, cfg.Sync.ProgressInterval)
	assert.Equal(t, 10*time.Minute, cfg.Sync.UpdateCheckInterval)
	assert.True(t, cfg.Sync.AutoApplyUpdates)
	assert.Equal(t, 2*time.Minute, cfg.Sync.OperationTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also be raw nanosecond numbers.
	path := writeTempJSON(t, `{"origin": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Origin.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{"origin": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}
