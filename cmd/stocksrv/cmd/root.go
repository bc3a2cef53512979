// Package cmd - stocksrv CLI commands
package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gurohotvedt/cab230serverside/internal/pkg/config"
	"github.com/gurohotvedt/cab230serverside/internal/pkg/logger"
)

const (
	serviceName    = "stocks-api"
	serviceVersion = "1.0.0"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "stocksrv",
	Short: "Stock query service",
	Long: `Stock query service

Commands:
    serve       start the HTTP API server
    migrate     apply database schema migrations
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		return logger.Init(logger.Config{
			Level:          cfg.Logging.Level,
			Format:         cfg.Logging.Format,
			ServiceName:    serviceName,
			ServiceVersion: serviceVersion,
		})
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
