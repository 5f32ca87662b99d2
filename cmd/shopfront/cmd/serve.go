package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nfrund/shopfront/internal/config"
	"github.com/nfrund/shopfront/internal/logging"
	"github.com/nfrund/shopfront/internal/server"
	"github.com/nfrund/shopfront/internal/shopapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		logging.New()
		cfg := config.New()

		api := shopapi.NewClient(cfg.GetAPIBaseURL())
		s := server.New(cfg, api)
		s.RegisterRoutes()
		s.Start(cfg.GetAddr())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
