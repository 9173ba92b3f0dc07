package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("STOCKDESK_CONFIG", "")

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"server_base_url":       "https://api.example.com",
		"request_timeout":       "15s",
		"expiry_check_interval": 60_000_000_000,
		"data_dir":              "/var/lib/stockdesk",
		"database_file":         "inv.db",
		"default_role_id":       3,
		"log_level":             "debug",
		"log_backend":           "logrus",
		"page_size":             50,
	})

	t.Run("loads every field", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		var cfg Config
		require.NoError(t, parseJson(&cfg))

		assert.Equal(t, Config{
			ServerBaseURL: "https://api.example.com", RequestTimeout: 15 * time.Second,
			ExpiryCheckInterval: time.Minute, DataDir: "/var/lib/stockdesk", DatabaseFile: "inv.db",
			DefaultRoleID: 3, LogLevel: "debug", LogBackend: "logrus", PageSize: 50,
		}, cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"page_size": 5})
		os.Args = []string{"testbin", "-c", partial}

		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseJson(&cfg))

		assert.Equal(t, 5, cfg.PageSize)
		assert.Equal(t, "http://localhost:3000", cfg.ServerBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("environment variable", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("STOCKDESK_CONFIG", full)

		var cfg Config
		require.NoError(t, parseJson(&cfg))
		assert.Equal(t, "inv.db", cfg.DatabaseFile)
	})

	t.Run("no file leaves config alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := Config{ServerBaseURL: "http://keep"}
		require.NoError(t, parseJson(&cfg))
		assert.Equal(t, "http://keep", cfg.ServerBaseURL)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Error(t, parseJson(&Config{}))
	})

	t.Run("missing file", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Error(t, parseJson(&Config{}))
	})
}
