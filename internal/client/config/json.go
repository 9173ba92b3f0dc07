package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/stockdesk/internal/flagx"
	"github.com/dmitrijs2005/stockdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either "10s" style strings or integer nanoseconds. Zero values leave the
// corresponding Config field untouched.
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	ExpiryCheckInterval timex.Duration `json:"expiry_check_interval"`
	DataDir             string         `json:"data_dir"`
	DatabaseFile        string         `json:"database_file"`
	DefaultRoleID       int            `json:"default_role_id"`
	LogLevel            string         `json:"log_level"`
	LogBackend          string         `json:"log_backend"`
	PageSize            int            `json:"page_size"`
}

// parseJson overlays cfg with the file named by -c/-config or
// STOCKDESK_CONFIG. Without one it does nothing.
func parseJson(cfg *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc JsonConfig) apply(cfg *Config) {
	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DatabaseFile, jc.DatabaseFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ExpiryCheckInterval.Duration > 0 {
		cfg.ExpiryCheckInterval = jc.ExpiryCheckInterval.Duration
	}
	if jc.DefaultRoleID > 0 {
		cfg.DefaultRoleID = jc.DefaultRoleID
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
