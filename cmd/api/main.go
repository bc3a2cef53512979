package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/gurohotvedt/cab230serverside/internal/api"
	"github.com/gurohotvedt/cab230serverside/internal/pkg/config"
	"github.com/gurohotvedt/cab230serverside/internal/pkg/logger"
)

const (
	serviceName    = "stocks-api"
	serviceVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().Str("version", serviceVersion).Msg("Starting stocks API server")

	if err := api.Serve(context.Background(), cfg, serviceVersion); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
}
