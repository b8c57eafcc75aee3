package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// ComparePlaces is the number of fractional digits kept when amounts are
// compared for ordering. It absorbs noise left by float-sourced inputs.
const ComparePlaces = 6

// MaxRate caps inferred rates so they fit an int on every platform
const MaxRate = math.MaxInt32

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// Round rounds half away from zero, which is half-up for the
// non-negative amounts this module works with.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// GreaterThan reports whether a > b after both are rounded to ComparePlaces.
func GreaterThan(a, b decimal.Decimal) bool {
	return a.Round(ComparePlaces).GreaterThan(b.Round(ComparePlaces))
}

// AddRate computes: amount * (rate + 100) / 100
// No rounding is applied.
func AddRate(amount decimal.Decimal, ratePercent int) decimal.Decimal {
	factor := decimal.NewFromInt(int64(ratePercent) + 100)
	return amount.Mul(factor).Div(hundred)
}

// RemoveRate computes: amount * 100 / (rate + 100)
// No rounding is applied.
func RemoveRate(amount decimal.Decimal, ratePercent int) decimal.Decimal {
	factor := decimal.NewFromInt(int64(ratePercent) + 100)
	return amount.Mul(hundred).Div(factor)
}

// RateBetween infers the whole percentage that turns nett into gross:
// round(gross / nett * 100 - 100), capped at MaxRate. Returns 0 when nett is
// not positive.
func RateBetween(nett, gross decimal.Decimal) int {
	if !IsPositive(nett) {
		return 0
	}
	rate := gross.Div(nett).Mul(hundred).Sub(hundred).Round(0)
	if rate.GreaterThan(decimal.NewFromInt(MaxRate)) {
		return MaxRate
	}
	return int(rate.IntPart())
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
