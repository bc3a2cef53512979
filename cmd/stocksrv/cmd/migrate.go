package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gurohotvedt/cab230serverside/internal/infra/database/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := postgres.RunMigrations(cmd.Context(), cfg.Database.URL); err != nil {
			return err
		}
		log.Info().Msg("Migrations applied")
		return nil
	},
}
