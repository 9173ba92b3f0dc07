package config

import "time"

// Config holds runtime settings for the stockdesk CLI.
//
// Durations are time.Duration values; the flags take whole seconds.
type Config struct {
	ServerBaseURL       string
	RequestTimeout      time.Duration
	ExpiryCheckInterval time.Duration
	DataDir             string
	DatabaseFile        string
	DefaultRoleID       int
	LogLevel            string
	LogBackend          string
	PageSize            int
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.ExpiryCheckInterval = 30 * time.Second
	c.DataDir = ".stockdesk"
	c.DatabaseFile = "stockdesk.db"
	c.DefaultRoleID = 2
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.PageSize = 20
}

// LoadConfig applies defaults, then the JSON file (if any), then flags.
// Later sources win.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
