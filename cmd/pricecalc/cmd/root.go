package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/price-engine/internal/config"
	"github.com/rezonia/price-engine/internal/price"
)

var (
	version = "1.0.0"

	// Global flags
	verbose         bool
	outputFormat    string
	calculatorsFile string
)

var rootCmd = &cobra.Command{
	Use:   "pricecalc",
	Short: "Calculate taxed prices",
	Long: `pricecalc builds prices from nett or gross amounts and a tax rate and
performs currency-safe arithmetic on them.

Prices given as arguments use the form NETT/GROSS/CURRENCY[/TAX]. Without
TAX the rate is derived from the two amounts.

Examples:
  # Price of 100 PLN nett at 23% tax
  pricecalc build --nett 100 --tax 23 --currency PLN

  # Sum of two prices
  pricecalc add 100/123/PLN/23 10/12.30/PLN/23

  # Split a price in three
  pricecalc divide 100/123/PLN/23 3 -f table

  # Per-currency rounding from a file
  pricecalc --config calculators.yaml build --nett 100.4 --currency JPY`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table, pretty)")
	rootCmd.PersistentFlags().StringVar(&calculatorsFile, "config", "", "Calculators file (env: PRICE_CALCULATORS_FILE)")
}

// newLogger writes JSON logs to stderr; debug level with --verbose
func newLogger(level slog.Level) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// setup loads configuration and the calculator registry. Flags override
// the environment.
func setup(level slog.Level) (*config.Config, *price.Registry, *slog.Logger, error) {
	logger := newLogger(level)

	cfg, err := config.Load(logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if calculatorsFile != "" {
		cfg.CalculatorsFile = calculatorsFile
	}

	reg, err := config.NewRegistry(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, reg, logger, nil
}
