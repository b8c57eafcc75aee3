package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rezonia/price-engine/internal/price"
)

var (
	buildNett     string
	buildGross    string
	buildTax      string
	buildCurrency string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a price from nett or gross",
	Long: `Build a price from a nett or gross amount and a tax rate.

With only --nett the gross amount is computed, and the other way round with
only --gross. With both, the amounts are kept and the rate is derived unless
--tax is given.

Examples:
  pricecalc build --nett 100 --tax 23 --currency PLN
  pricecalc build --gross 123 --tax 23 --currency PLN
  pricecalc build --nett 100 --gross 150 --currency EUR`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildNett, "nett", "", "Nett amount")
	buildCmd.Flags().StringVar(&buildGross, "gross", "", "Gross amount")
	buildCmd.Flags().StringVar(&buildTax, "tax", "", "Tax rate in percent")
	buildCmd.Flags().StringVar(&buildCurrency, "currency", "", "Currency symbol, e.g. PLN")
}

func runBuild(cmd *cobra.Command, args []string) error {
	_, reg, logger, err := setup(slog.LevelWarn)
	if err != nil {
		return err
	}

	if buildNett == "" && buildGross == "" {
		return fmt.Errorf("one of --nett or --gross is required")
	}

	rate := 0
	if buildTax != "" {
		rate, err = parseRate(buildTax)
		if err != nil {
			return err
		}
	}

	var p price.Price
	switch {
	case buildNett != "" && buildGross != "":
		nett, err := parseAmount("nett", buildNett)
		if err != nil {
			return err
		}
		gross, err := parseAmount("gross", buildGross)
		if err != nil {
			return err
		}
		opts := []price.Option{price.WithCurrency(buildCurrency)}
		if buildTax != "" {
			opts = append(opts, price.WithTaxRate(rate))
		}
		p, err = reg.New(nett, gross, opts...)
		if err != nil {
			return err
		}

	case buildNett != "":
		nett, err := parseAmount("nett", buildNett)
		if err != nil {
			return err
		}
		p, err = reg.BuildByNett(nett, rate, buildCurrency)
		if err != nil {
			return err
		}

	default:
		gross, err := parseAmount("gross", buildGross)
		if err != nil {
			return err
		}
		p, err = reg.BuildByGross(gross, rate, buildCurrency)
		if err != nil {
			return err
		}
	}

	logger.Debug("price built",
		slog.String("price", p.String()),
		slog.Int("tax_rate", p.TaxRate()),
	)
	return outputPrice(cmd.OutOrStdout(), p)
}
