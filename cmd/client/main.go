package main

import (
	"context"

	"github.com/MKhiriev/fresh-alert/internal/client"
	"github.com/MKhiriev/fresh-alert/internal/config"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		// the log file location is unknown yet
		logger.NewLogger("fresh-alert").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("fresh-alert", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	app, err := client.NewApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	err = app.Run(ctx)
	if closeErr := app.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("close local storage")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
