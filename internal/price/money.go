package price

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/price-engine/internal/decimal"
)

// Money is a non-negative decimal amount
type Money struct {
	value decimal.Decimal
}

// NewMoney fails with ErrInvalidArgument for negative values
func NewMoney(value decimal.Decimal) (Money, error) {
	if !dec.IsNonNegative(value) {
		return Money{}, invalidArgument("money", "Money value must be positive")
	}
	return Money{value: value}, nil
}

// Value returns the raw, unrounded amount
func (m Money) Value() decimal.Decimal {
	return m.value
}

// IsZero reports whether the amount is exactly zero
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsGreaterThan compares both amounts rounded to 6 fractional digits.
func (m Money) IsGreaterThan(other Money) bool {
	return dec.GreaterThan(m.value, other.value)
}

func (m Money) String() string {
	return m.value.String()
}
