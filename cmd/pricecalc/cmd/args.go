package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/price-engine/internal/decimal"
	"github.com/rezonia/price-engine/internal/price"
)

// parsePrice reads NETT/GROSS/CURRENCY[/TAX]
func parsePrice(reg *price.Registry, arg string) (price.Price, error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 3 && len(parts) != 4 {
		return price.Price{}, fmt.Errorf("invalid price %q: expected NETT/GROSS/CURRENCY[/TAX]", arg)
	}

	nett, err := parseAmount("nett", parts[0])
	if err != nil {
		return price.Price{}, err
	}
	gross, err := parseAmount("gross", parts[1])
	if err != nil {
		return price.Price{}, err
	}

	opts := []price.Option{price.WithCurrency(parts[2])}
	if len(parts) == 4 {
		rate, err := parseRate(parts[3])
		if err != nil {
			return price.Price{}, err
		}
		opts = append(opts, price.WithTaxRate(rate))
	}

	return reg.New(nett, gross, opts...)
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	d, err := dec.FromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}

func parseRate(raw string) (int, error) {
	rate, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if err != nil {
		return 0, fmt.Errorf("invalid tax rate %q", raw)
	}
	return rate, nil
}
