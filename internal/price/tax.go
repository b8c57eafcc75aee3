package price

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/price-engine/internal/decimal"
)

// Tax is a whole percentage, e.g. 23 for 23%
type Tax struct {
	rate int
}

// NewTax fails with ErrInvalidArgument for negative rates
func NewTax(rate int) (Tax, error) {
	if rate < 0 {
		return Tax{}, invalidArgument("tax", "Tax percent must positive")
	}
	return Tax{rate: rate}, nil
}

// DeriveTax infers the rate from a nett/gross pair. The result is not
// authoritative; prices built from it are marked as mixed tax.
func DeriveTax(nett, gross decimal.Decimal) Tax {
	rate := dec.RateBetween(nett, gross)
	if rate < 0 {
		rate = 0
	}
	return Tax{rate: rate}
}

// Rate returns the percentage
func (t Tax) Rate() int {
	return t.rate
}

// GrossFromNett computes nett * (rate + 100) / 100, unrounded
func (t Tax) GrossFromNett(nett decimal.Decimal) decimal.Decimal {
	return dec.AddRate(nett, t.rate)
}

// NettFromGross computes gross * 100 / (rate + 100), unrounded
func (t Tax) NettFromGross(gross decimal.Decimal) decimal.Decimal {
	return dec.RemoveRate(gross, t.rate)
}

// Validate checks that nett and gross agree with the rate at display
// precision. Construction does not call it.
func (t Tax) Validate(nett, gross decimal.Decimal) error {
	want := dec.Round(t.GrossFromNett(nett), DefaultPrecision)
	if !dec.Round(gross, DefaultPrecision).Equal(want) {
		return invalidArgument("tax", "Invalid tax rate")
	}
	return nil
}
