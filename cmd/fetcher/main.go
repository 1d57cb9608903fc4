package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/public-api-fetcher/internal/adapter"
	"github.com/MKhiriev/public-api-fetcher/internal/client"
	"github.com/MKhiriev/public-api-fetcher/internal/config"
	"github.com/MKhiriev/public-api-fetcher/internal/console"
	"github.com/MKhiriev/public-api-fetcher/internal/logger"
	"github.com/MKhiriev/public-api-fetcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("public-api-fetcher", cfg.Log.Level, cfg.Log.File)
	log.Info().
		Object("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).
		Msg("starting")
	log.Debug().Any("config", cfg).Msg("received configs")

	fetcher := adapter.NewHTTPRecordFetcher(cfg.Adapter, log)

	var app client.Client
	app, err = client.NewApp(cfg, fetcher, console.New(os.Stdout), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating fetcher: %v\n", err)
		log.Fatal().Err(err).Msg("init fetcher app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("fetcher run error")
	}
}
