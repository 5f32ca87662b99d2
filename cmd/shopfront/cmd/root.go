package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "Browser surface of the multi-tenant shop platform",
	Long: `Shopfront serves the browser-facing views of the shop platform:
tenant storefront pages, the owner dashboard and the registration flow.
All account and shop data lives in the remote shop API; shopfront only
orchestrates calls against it.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
