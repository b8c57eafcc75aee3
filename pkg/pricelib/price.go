// Package pricelib provides a public API for taxed price arithmetic.
//
// Prices carry a nett amount, a gross amount, a tax rate and a currency.
// Arithmetic never mixes currencies and results are normalized by the
// calculator registered for their currency.
//
// Example usage:
//
//	p, err := pricelib.BuildByNett(decimal.NewFromInt(100), 23, "PLN")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	total, err := p.Multiply(decimal.NewFromInt(3))
//	fmt.Println(total) // 369.00 PLN
package pricelib

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/price-engine/internal/price"
)

// Re-export core types for public API
type (
	Price          = price.Price
	Value          = price.Value
	Currency       = price.Currency
	Money          = price.Money
	Tax            = price.Tax
	Calculator     = price.Calculator
	Registry       = price.Registry
	Decorator      = price.Decorator
	DecoratorFunc  = price.DecoratorFunc
	MoneyDecorator = price.MoneyDecorator
	RoundDecorator = price.RoundDecorator
	Option         = price.Option
)

// Re-export error types
type Error = price.Error

// Error kinds, matched with errors.Is
var (
	ErrInvalidArgument      = price.ErrInvalidArgument
	ErrIncompatibleCurrency = price.ErrIncompatibleCurrency
	ErrIllegalState         = price.ErrIllegalState
)

// DefaultPrecision is the number of fractional digits shown for amounts
const DefaultPrecision = price.DefaultPrecision

// WithCurrency sets the currency of New
func WithCurrency(symbol string) Option {
	return price.WithCurrency(symbol)
}

// WithTaxRate sets an authoritative tax rate for New
func WithTaxRate(rate int) Option {
	return price.WithTaxRate(rate)
}

// New builds a price from nett and gross with the default registry
func New(nett, gross decimal.Decimal, opts ...Option) (Price, error) {
	return price.New(nett, gross, opts...)
}

// Build creates an untaxed price
func Build(value decimal.Decimal, symbol string) (Price, error) {
	return price.Build(value, symbol)
}

// BuildByNett derives gross from nett and rate
func BuildByNett(nett decimal.Decimal, rate int, symbol string) (Price, error) {
	return price.BuildByNett(nett, rate, symbol)
}

// BuildByGross derives nett from gross and rate
func BuildByGross(gross decimal.Decimal, rate int, symbol string) (Price, error) {
	return price.BuildByGross(gross, rate, symbol)
}

// BuildEmpty creates a zero price
func BuildEmpty(symbol string, withTax bool) (Price, error) {
	return price.BuildEmpty(symbol, withTax)
}

// NewCurrency validates and normalizes a currency symbol
func NewCurrency(symbol string) (Currency, error) {
	return price.NewCurrency(symbol)
}

// NewCalculator creates a calculator applying decorators in order
func NewCalculator(decorators ...Decorator) *Calculator {
	return price.NewCalculator(decorators...)
}

// NewRoundDecorator rounds amounts half away from zero to precision digits
func NewRoundDecorator(precision int32) RoundDecorator {
	return price.NewRoundDecorator(precision)
}

// NewRegistry creates an isolated registry with the given fallback calculator
func NewRegistry(calc *Calculator) *Registry {
	return price.NewRegistry(calc)
}

// DefaultRegistry returns the process-wide registry used by New and the Build functions
func DefaultRegistry() *Registry {
	return price.Default()
}
