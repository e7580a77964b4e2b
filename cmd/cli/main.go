package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sleepcoach/internal/buildinfo"
	"github.com/dmitrijs2005/sleepcoach/internal/client/cli"
	"github.com/dmitrijs2005/sleepcoach/internal/client/config"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
