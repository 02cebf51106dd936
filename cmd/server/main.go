package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sealnotes/internal/buildinfo"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
	"github.com/dmitrijs2005/sealnotes/internal/server"
	"github.com/dmitrijs2005/sealnotes/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return
	}
	defer app.Close()

	if cfg.PurgeNotes {
		n, err := app.PurgeNotes(ctx)
		if err != nil {
			logger.Error(ctx, "purge failed", "error", err)
			return
		}
		log.Printf("Deleted %d notes", n)
		return
	}

	app.Run(ctx)
}
