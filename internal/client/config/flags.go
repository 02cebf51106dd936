package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/flagx"
)

var ownedFlags = flagx.Owned{Value: []string{"-a", "-i", "-t", "-l", "-f", "-o"}}

// parseFlags overlays cfg with the client's flags:
//
//	-a string   notes service base URL
//	-i int      online check interval (seconds)
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, zap)
//	-o string   directory for downloaded drawings
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "notes service base URL")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text, json or zap")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "directory for downloaded drawings")

	if err := fs.Parse(ownedFlags.Filter(args)); err != nil {
		return err
	}

	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
