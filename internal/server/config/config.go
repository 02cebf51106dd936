// Package config handles configuration for the notes service,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Drawing store backends.
const (
	DrawingStoreInline = "inline"
	DrawingStoreS3     = "s3"
)

// Config holds runtime settings for the notes service.
//
// Fields:
//   - ListenAddr: bind address for the HTTP API.
//   - DatabaseDSN: postgres:// selects PostgreSQL (pgx), anything else SQLite.
//   - SecretKey / Issuer / TokenTTL: HS256 access token settings.
//   - KeyDir: directory holding the field encryption and signing keys.
//   - DrawingStore: where sealed drawings live, "inline" or "s3".
//   - S3*: object storage settings used when DrawingStore is "s3".
//   - LoginRate / LoginBurst: per-client login attempts per second and burst.
//   - PurgeNotes: delete every note and exit.
type Config struct {
	ListenAddr     string
	DatabaseDSN    string
	SecretKey      string
	Issuer         string
	TokenTTL       time.Duration
	KeyDir         string
	DrawingStore   string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	LoginRate      float64
	LoginBurst     int
	LogLevel       string
	LogFormat      string
	PurgeNotes     bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside local development.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8000"
	c.DatabaseDSN = "sealnotes.db"
	c.SecretKey = "your-secret-key-change-this"
	c.Issuer = "notes-app"
	c.TokenTTL = time.Hour
	c.KeyDir = "keys"
	c.DrawingStore = DrawingStoreInline
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "sealnotes"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.LoginRate = 1
	c.LoginBurst = 5
	c.LogLevel = "info"
	c.LogFormat = "zap"
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DrawingStore {
	case DrawingStoreInline, DrawingStoreS3:
	default:
		return fmt.Errorf("unknown drawing store %q", c.DrawingStore)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
// args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
