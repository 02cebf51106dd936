package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sealnotes/internal/flagx"
	"github.com/dmitrijs2005/sealnotes/internal/timex"
)

// fileConfig mirrors Config for JSON decoding. token_ttl accepts "1h" or
// integer nanoseconds. Absent keys leave the current value in place.
type fileConfig struct {
	ListenAddr     string          `json:"listen_addr"`
	DatabaseDSN    string          `json:"database_dsn"`
	SecretKey      string          `json:"secret_key"`
	Issuer         string          `json:"issuer"`
	TokenTTL       *timex.Duration `json:"token_ttl"`
	KeyDir         string          `json:"key_dir"`
	DrawingStore   string          `json:"drawing_store"`
	S3AccessKey    string          `json:"s3_access_key"`
	S3SecretKey    string          `json:"s3_secret_key"`
	S3Bucket       string          `json:"s3_bucket"`
	S3Region       string          `json:"s3_region"`
	S3BaseEndpoint string          `json:"s3_base_endpoint"`
	LoginRate      *float64        `json:"login_rate"`
	LoginBurst     *int            `json:"login_burst"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
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

	setString(&cfg.ListenAddr, fc.ListenAddr)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	setString(&cfg.Issuer, fc.Issuer)
	setString(&cfg.KeyDir, fc.KeyDir)
	setString(&cfg.DrawingStore, fc.DrawingStore)
	setString(&cfg.S3AccessKey, fc.S3AccessKey)
	setString(&cfg.S3SecretKey, fc.S3SecretKey)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)

	if fc.TokenTTL != nil {
		cfg.TokenTTL = fc.TokenTTL.Duration
	}
	if fc.LoginRate != nil {
		cfg.LoginRate = *fc.LoginRate
	}
	if fc.LoginBurst != nil {
		cfg.LoginBurst = *fc.LoginBurst
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
