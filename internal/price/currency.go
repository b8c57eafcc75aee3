package price

import (
	"regexp"
	"strings"
)

// DefaultPrecision is the number of fractional digits shown for every
// currency. A handful of ISO 4217 currencies use 0 or 3 digits; those are
// handled through per-currency calculators rather than here.
const DefaultPrecision = 2

var symbolPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is a three-letter ISO 4217 style code.
// The zero value means "no currency" and is only carried by empty prices.
type Currency struct {
	symbol string
}

// NewCurrency uppercases and validates the symbol
func NewCurrency(symbol string) (Currency, error) {
	normalized := strings.ToUpper(symbol)
	if !symbolPattern.MatchString(normalized) {
		return Currency{}, invalidArgument("currency", "Invalid currency symbol: %q", symbol)
	}
	return Currency{symbol: normalized}, nil
}

// MustCurrency is like NewCurrency but panics on an invalid symbol
func MustCurrency(symbol string) Currency {
	c, err := NewCurrency(symbol)
	if err != nil {
		panic(err)
	}
	return c
}

// Symbol returns the uppercase code, or "" for the zero Currency
func (c Currency) Symbol() string {
	return c.symbol
}

func (c Currency) String() string {
	return c.symbol
}

// IsZero reports whether c is the absent currency
func (c Currency) IsZero() bool {
	return c.symbol == ""
}

// Equal reports an exact symbol match
func (c Currency) Equal(other Currency) bool {
	return c.symbol == other.symbol
}

// Precision returns the number of fractional digits used for display
func (c Currency) Precision() int32 {
	return DefaultPrecision
}
