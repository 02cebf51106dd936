package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/dmitrijs2005/sealnotes/internal/flagx"
	"github.com/dmitrijs2005/sealnotes/internal/timex"
)

// fileConfig mirrors Config for JSON decoding. Durations accept "3s" or
// integer nanoseconds. Absent keys leave the current value in place.
type fileConfig struct {
	ServerURL           string          `json:"server_url"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	LogLevel            string          `json:"log_level"`
	LogFormat           string          `json:"log_format"`
	DownloadDir         string          `json:"download_dir"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.ServerURL != "" {
		cfg.ServerURL = strings.TrimRight(fc.ServerURL, "/")
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.DownloadDir != "" {
		cfg.DownloadDir = fc.DownloadDir
	}
	return nil
}
