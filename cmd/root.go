// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables children commands to read configuration from CLI
// flags or from environment variables prefixed with MAZEGEN, with dashes
// mapped to underscores (e.g. MAZEGEN_MIN_VALID_PATHS).
func NewRootCommand() *cobra.Command {
	viper.SetEnvPrefix("MAZEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return &cobra.Command{
		Use:   "mazegen",
		Short: "Generate, solve and export seeded mazes",
		Long: `Generate, solve and export seeded mazes.

mazegen carves a square maze with randomized frontier growth, validates
start-to-goal connectivity and route diversity with the configured search
strategy, and exports the result as an HTML document or a PNG image.`,
	}
}
