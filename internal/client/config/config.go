package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the SealNotes terminal client.
type Config struct {
	// ServerURL is the base URL of the notes service, without trailing slash.
	ServerURL string
	// OnlineCheckInterval is how often the client probes GET / for reachability.
	OnlineCheckInterval time.Duration
	// RequestTimeout bounds every HTTP call to the service.
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	// DownloadDir receives drawings saved by the note viewer.
	DownloadDir string
}

// LoadDefaults populates c with defaults matching a locally running service.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.DownloadDir = "download"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// command-line flags. Later sources take precedence. args excludes the
// program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
