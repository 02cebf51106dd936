// Package config loads runtime configuration for the SealNotes client.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// JSON example:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "zap",
//	  "download_dir": "download"
//	}
package config
