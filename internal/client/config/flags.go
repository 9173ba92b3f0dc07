package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-i", "-d", "-l"}

// parseFlags overlays cfg with the command-line flags:
//
//	-a string   base URL of the inventory API
//	-t int      request timeout (seconds)
//	-i int      session expiry check interval (seconds)
//	-d string   local data directory
//	-l string   log level
//
// Other arguments are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flagx.NewFlagSet("main")

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "inventory API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.ExpiryCheckInterval.Seconds()), "session expiry check interval (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// Durations are only overwritten by flags that were set.
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			err = errors.Join(err, setSeconds(&cfg.RequestTimeout, *timeout))
		case "i":
			err = errors.Join(err, setSeconds(&cfg.ExpiryCheckInterval, *interval))
		}
	})
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func setSeconds(dst *time.Duration, n int) error {
	if n <= 0 {
		return errors.New("intervals must be positive")
	}
	*dst = time.Duration(n) * time.Second
	return nil
}
