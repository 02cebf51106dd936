package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sealnotes/internal/buildinfo"
	"github.com/dmitrijs2005/sealnotes/internal/client/cli"
	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/config"
	"github.com/dmitrijs2005/sealnotes/internal/client/services"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nb := services.NewNotebook(client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout), logger)
	app := cli.NewApp(cfg, nb, logger, os.Stdin, os.Stdout)
	app.Run(ctx)
}
