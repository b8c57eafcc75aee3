package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rezonia/price-engine/internal/config"
	"github.com/rezonia/price-engine/internal/price"
	"github.com/rezonia/price-engine/internal/server"
)

func outputPrice(w io.Writer, p price.Price) error {
	switch outputFormat {
	case "json":
		return outputJSON(w, server.NewPriceResponse(p))
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NETT\tGROSS\tTAX\tTAX DIFF\tCURRENCY\tPRICE")
		fmt.Fprintln(tw, "----\t-----\t---\t--------\t--------\t-----")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Nett().StringFixed(2),
			p.Gross().StringFixed(2),
			formatRate(p),
			p.TaxDiff().StringFixed(2),
			p.CurrencySymbol(),
			p.String(),
		)
		return tw.Flush()
	case "pretty":
		_, err := fmt.Fprintln(w, renderPrice(p))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputCalculators(w io.Writer, infos []config.CalculatorInfo) error {
	switch outputFormat {
	case "json":
		return outputJSON(w, infos)
	case "table", "pretty":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CURRENCY\tPRECISION\tSTAGES")
		fmt.Fprintln(tw, "--------\t---------\t------")
		for _, info := range infos {
			currency := info.Currency
			if currency == "" {
				currency = "(default)"
			}
			precision := "-"
			if info.Precision != nil {
				precision = fmt.Sprintf("%d", *info.Precision)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\n", currency, precision, info.Stages)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatRate marks derived rates with a tilde
func formatRate(p price.Price) string {
	if p.HasTaxRate() {
		return fmt.Sprintf("%d%%", p.TaxRate())
	}
	return fmt.Sprintf("~%d%%", p.TaxRate())
}
