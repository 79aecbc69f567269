package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields for the optional config file.
type StructuredJSONConfig struct {
	Origin struct {
		BaseURL        string   `json:"base_url"`
		AuthToken      string   `json:"auth_token"`
		HashKey        string   `json:"hash_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"origin,omitempty"`

	Cache struct {
		Dir      string `json:"dir"`
		IndexDSN string `json:"index_dsn"`
	} `json:"cache,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sync struct {
		ProgressInterval    Duration `json:"progress_interval"`
		UpdateCheckInterval Duration `json:"update_check_interval"`
		AutoApplyUpdates    bool     `json:"auto_apply_updates"`
		OperationTimeout    Duration `json:"operation_timeout"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Origin: Origin{
			BaseURL:        jsonCfg.Origin.BaseURL,
			AuthToken:      jsonCfg.Origin.AuthToken,
			HashKey:        jsonCfg.Origin.HashKey,
			RequestTimeout: time.Duration(jsonCfg.Origin.RequestTimeout),
		},
		Cache: Cache{
			Dir:      jsonCfg.Cache.Dir,
			IndexDSN: jsonCfg.Cache.IndexDSN,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			ProgressInterval:    time.Duration(jsonCfg.Sync.ProgressInterval),
			UpdateCheckInterval: time.Duration(jsonCfg.Sync.UpdateCheckInterval),
			AutoApplyUpdates:    jsonCfg.Sync.AutoApplyUpdates,
			OperationTimeout:    time.Duration(jsonCfg.Sync.OperationTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
