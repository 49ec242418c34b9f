package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-lookup/internal/location"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Classify a location string without calling any provider",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := location.Classify(strings.Join(args, " "))
		if !res.Valid {
			return fmt.Errorf("invalid location: %s", res.Error)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Kind.Description(), res.Normalized)
		return nil
	},
}
