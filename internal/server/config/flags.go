package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/flagx"
)

var ownedFlags = flagx.Owned{
	Value: []string{"-a", "-d", "-s", "-t", "-k", "-w", "-u", "-p", "-b", "-g", "-e", "-r", "-n", "-l", "-f"},
	Bool:  []string{"-purge-notes"},
}

// parseFlags overlays cfg with the service flags:
//
//	-a string    HTTP bind address (e.g. ":8000")
//	-d string    database DSN
//	-s string    JWT HMAC secret key
//	-t int       access token validity, minutes
//	-k string    key directory
//	-w string    drawing store: inline or s3
//	-u string    S3 access key
//	-p string    S3 secret key
//	-b string    S3 bucket
//	-g string    S3 region
//	-e string    S3 base endpoint
//	-r float     login attempts per second per client
//	-n int       login burst per client
//	-l string    log level
//	-f string    log format: text, json or zap
//	-purge-notes delete all notes and exit
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&cfg.KeyDir, "k", cfg.KeyDir, "directory with encryption and signing keys")
	fs.StringVar(&cfg.DrawingStore, "w", cfg.DrawingStore, "drawing store: inline or s3")

	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "p", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	fs.Float64Var(&cfg.LoginRate, "r", cfg.LoginRate, "login attempts per second per client")
	fs.IntVar(&cfg.LoginBurst, "n", cfg.LoginBurst, "login burst per client")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text, json or zap")
	fs.BoolVar(&cfg.PurgeNotes, "purge-notes", cfg.PurgeNotes, "delete all notes and exit")

	if err := fs.Parse(ownedFlags.Filter(args)); err != nil {
		return err
	}

	cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	return nil
}
