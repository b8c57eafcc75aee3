package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rezonia/price-engine/internal/price"
)

var addCmd = &cobra.Command{
	Use:   "add PRICE PRICE",
	Short: "Add two prices",
	Long: `Add two prices of the same currency.

The result keeps the tax rate when both operands share it, otherwise the
rate is derived from the summed amounts.

Examples:
  pricecalc add 100/123/PLN/23 10/12.30/PLN/23
  pricecalc add 100/123/PLN/23 100/108/PLN/8 -f table`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBinary(cmd, args, "add", price.Price.Add)
	},
}

var subtractCmd = &cobra.Command{
	Use:   "subtract PRICE PRICE",
	Short: "Subtract the second price from the first",
	Long: `Subtract the second price from the first.

Subtracting a larger price yields a zero price in the same currency.

Examples:
  pricecalc subtract 100/123/PLN/23 40/49.20/PLN/23`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBinary(cmd, args, "subtract", price.Price.Subtract)
	},
}

var multiplyCmd = &cobra.Command{
	Use:   "multiply PRICE FACTOR",
	Short: "Multiply a price by a non-negative factor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScale(cmd, args, "multiply", price.Price.Multiply)
	},
}

var divideCmd = &cobra.Command{
	Use:   "divide PRICE FACTOR",
	Short: "Divide a price by a positive factor",
	Long: `Divide a price by a positive factor.

The nett amount is divided and gross is recomputed from the tax rate.

Examples:
  pricecalc divide 233.29/286.95/PLN/23 3.69`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScale(cmd, args, "divide", price.Price.Divide)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare PRICE PRICE",
	Short: "Compare two prices",
	Long: `Compare two prices and print "equal", "greater" or "lower".

Prices are equal when currency, nett and gross match at display precision.
Ordering uses the gross amounts.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subtractCmd)
	rootCmd.AddCommand(multiplyCmd)
	rootCmd.AddCommand(divideCmd)
	rootCmd.AddCommand(compareCmd)
}

func runBinary(cmd *cobra.Command, args []string, name string, op func(price.Price, price.Price) (price.Price, error)) error {
	_, reg, logger, err := setup(slog.LevelWarn)
	if err != nil {
		return err
	}

	left, right, err := parsePair(reg, args)
	if err != nil {
		return err
	}

	result, err := op(left, right)
	if err != nil {
		return err
	}

	logger.Debug("operation done",
		slog.String("op", name),
		slog.String("left", left.String()),
		slog.String("right", right.String()),
		slog.String("result", result.String()),
	)
	return outputPrice(cmd.OutOrStdout(), result)
}

func runScale(cmd *cobra.Command, args []string, name string, op func(price.Price, decimal.Decimal) (price.Price, error)) error {
	_, reg, logger, err := setup(slog.LevelWarn)
	if err != nil {
		return err
	}

	p, err := parsePrice(reg, args[0])
	if err != nil {
		return err
	}
	factor, err := parseAmount("factor", args[1])
	if err != nil {
		return err
	}

	result, err := op(p, factor)
	if err != nil {
		return err
	}

	logger.Debug("operation done",
		slog.String("op", name),
		slog.String("price", p.String()),
		slog.String("factor", factor.String()),
		slog.String("result", result.String()),
	)
	return outputPrice(cmd.OutOrStdout(), result)
}

func runCompare(cmd *cobra.Command, args []string) error {
	_, reg, _, err := setup(slog.LevelWarn)
	if err != nil {
		return err
	}

	left, right, err := parsePair(reg, args)
	if err != nil {
		return err
	}

	var result string
	switch {
	case left.IsEqual(right):
		result = "equal"
	case left.IsGreaterThan(right):
		result = "greater"
	case left.IsLowerThan(right):
		result = "lower"
	default:
		// same gross, different nett or currency
		result = "different"
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

func parsePair(reg *price.Registry, args []string) (price.Price, price.Price, error) {
	left, err := parsePrice(reg, args[0])
	if err != nil {
		return price.Price{}, price.Price{}, err
	}
	right, err := parsePrice(reg, args[1])
	if err != nil {
		return price.Price{}, price.Price{}, err
	}
	return left, right, nil
}
