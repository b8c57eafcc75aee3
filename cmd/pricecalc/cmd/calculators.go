package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rezonia/price-engine/internal/config"
)

var calculatorsCmd = &cobra.Command{
	Use:   "calculators",
	Short: "Show the active calculators",
	Long: `Show the default calculator and the per-currency calculators loaded
from --config or PRICE_CALCULATORS_FILE.`,
	Args: cobra.NoArgs,
	RunE: runCalculators,
}

func init() {
	rootCmd.AddCommand(calculatorsCmd)
}

func runCalculators(cmd *cobra.Command, args []string) error {
	_, reg, _, err := setup(slog.LevelWarn)
	if err != nil {
		return err
	}
	return outputCalculators(cmd.OutOrStdout(), config.Describe(reg))
}
