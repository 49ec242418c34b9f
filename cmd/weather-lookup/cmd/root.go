package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weather-lookup",
	Short: "Weather lookup service with landmark resolution and saved queries",
	Long: `weather-lookup answers weather questions for free-form locations.

It classifies the input (city, postal code, coordinates or landmark), fetches a
5-day forecast or a past date range from the configured provider, and keeps a
history of saved lookups that can be listed, refreshed and exported.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(landmarksCmd)
	rootCmd.AddCommand(validateCmd)
}
