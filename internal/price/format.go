package price

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/price-engine/internal/decimal"
)

// DisplayPlaces is the number of decimals shown by Format
const DisplayPlaces = DefaultPrecision

// Format renders the gross amount, thousands grouped with spaces and '.'
// for decimals, followed by a space and the currency symbol. Currency-less
// prices keep the separator and render an empty symbol.
func Format(p Price) string {
	return FormatAmount(p.Gross()) + " " + p.CurrencySymbol()
}

// FormatAmount groups the integer digits of d rounded to DisplayPlaces.
// Grouping works on the exact integer part, so large amounts keep every digit.
func FormatAmount(d decimal.Decimal) string {
	fixed := dec.Round(d, DisplayPlaces).StringFixed(DisplayPlaces)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}

	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return fixed
	}
	grouped := strings.ReplaceAll(humanize.BigComma(n), ",", " ")
	if frac == "" {
		return sign + grouped
	}
	return sign + grouped + "." + frac
}
