package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gurohotvedt/cab230serverside/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.Serve(cmd.Context(), cfg, serviceVersion)
	},
}
