// Package config loads runtime configuration for the stockdesk CLI.
//
// Values are applied in three steps, later ones overriding earlier ones:
//
//  1. Built-in defaults ((*Config).LoadDefaults).
//  2. A JSON file given with -c / -config, or via STOCKDESK_CONFIG.
//  3. Command-line flags -a, -t, -i, -d and -l.
//
// Example file:
//
//	{
//	  "server_base_url": "https://api.example.com",
//	  "request_timeout": "15s",
//	  "expiry_check_interval": "1m",
//	  "log_backend": "logrus",
//	  "page_size": 10
//	}
package config
