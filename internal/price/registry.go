package price

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// Registry maps currencies to the calculator configured for them and
// builds prices bound to that configuration. Registrations are meant to
// happen during startup; lookups are safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	calculators map[string]*Calculator
	fallback    *Calculator
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// NewRegistry creates a registry falling back to calc.
// A nil calc falls back to StandardCalculator.
func NewRegistry(calc *Calculator) *Registry {
	if calc == nil {
		calc = StandardCalculator()
	}
	return &Registry{
		calculators: make(map[string]*Calculator),
		fallback:    calc,
	}
}

// Default returns the process-wide registry, created on first use with a
// StandardCalculator fallback. The zero Price and the package-level
// constructors use it.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// SetCalculator registers calc for currency, overwriting any previous
// registration. The zero Currency replaces the fallback calculator; a nil
// calc removes the registration.
func (r *Registry) SetCalculator(currency Currency, calc *Calculator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if currency.IsZero() {
		if calc != nil {
			r.fallback = calc
		}
		return
	}
	if calc == nil {
		delete(r.calculators, currency.Symbol())
		return
	}
	r.calculators[currency.Symbol()] = calc
}

// Calculator returns the calculator registered for currency, or the
// fallback when there is none or currency is absent.
func (r *Registry) Calculator(currency Currency) *Calculator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if calc, ok := r.calculators[currency.Symbol()]; ok && !currency.IsZero() {
		return calc
	}
	return r.fallback
}

// DefaultCalculator returns the fallback calculator
func (r *Registry) DefaultCalculator() *Calculator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Currencies lists currencies with their own calculator, sorted by symbol
func (r *Registry) Currencies() []Currency {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currencies := make([]Currency, 0, len(r.calculators))
	for symbol := range r.calculators {
		currencies = append(currencies, Currency{symbol: symbol})
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].symbol < currencies[j].symbol
	})
	return currencies
}

// Option configures New
type Option func(*options)

type options struct {
	symbol string
	rate   *int
}

// WithCurrency sets the currency symbol (case-insensitive)
func WithCurrency(symbol string) Option {
	return func(o *options) {
		o.symbol = symbol
	}
}

// WithTaxRate supplies an authoritative tax rate. Without it the rate is
// derived from nett and gross and the price is marked as mixed tax.
func WithTaxRate(rate int) Option {
	return func(o *options) {
		o.rate = &rate
	}
}

// New builds a price from nett and gross. The currency may be omitted only
// when both amounts are zero.
func (r *Registry) New(nett, gross decimal.Decimal, opts ...Option) (Price, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var currency Currency
	if !(nett.IsZero() && gross.IsZero() && o.symbol == "") {
		c, err := NewCurrency(o.symbol)
		if err != nil {
			return Price{}, err
		}
		currency = c
	}

	return r.assemble(nett, gross, currency, o.rate)
}

// Build creates an untaxed price
func (r *Registry) Build(value decimal.Decimal, symbol string) (Price, error) {
	return r.BuildByNett(value, 0, symbol)
}

// BuildByNett derives gross from nett and rate
func (r *Registry) BuildByNett(nett decimal.Decimal, rate int, symbol string) (Price, error) {
	tax, err := NewTax(rate)
	if err != nil {
		return Price{}, err
	}
	return r.New(nett, tax.GrossFromNett(nett), WithCurrency(symbol), WithTaxRate(rate))
}

// BuildByGross derives nett from gross and rate
func (r *Registry) BuildByGross(gross decimal.Decimal, rate int, symbol string) (Price, error) {
	tax, err := NewTax(rate)
	if err != nil {
		return Price{}, err
	}
	return r.New(tax.NettFromGross(gross), gross, WithCurrency(symbol), WithTaxRate(rate))
}

// BuildEmpty creates the zero price, optionally tagged with a currency.
// withTax gives it an authoritative 0% rate.
func (r *Registry) BuildEmpty(symbol string, withTax bool) (Price, error) {
	opts := []Option{WithCurrency(symbol)}
	if withTax {
		opts = append(opts, WithTaxRate(0))
	}
	return r.New(decimal.Zero, decimal.Zero, opts...)
}

func (r *Registry) assemble(nett, gross decimal.Decimal, currency Currency, rate *int) (Price, error) {
	if rate == nil {
		return r.compose(nett, gross, currency, DeriveTax(nett, gross), true)
	}
	tax, err := NewTax(*rate)
	if err != nil {
		return Price{}, err
	}
	return r.compose(nett, gross, currency, tax, false)
}

// compose validates the amounts and normalizes them with the currency's
// calculator.
func (r *Registry) compose(nett, gross decimal.Decimal, currency Currency, tax Tax, mixed bool) (Price, error) {
	n, err := NewMoney(nett)
	if err != nil {
		return Price{}, err
	}
	g, err := NewMoney(gross)
	if err != nil {
		return Price{}, err
	}
	if n.IsGreaterThan(g) {
		return Price{}, invalidArgument("price", "Nett must not be greater than gross")
	}
	if currency.IsZero() && !(n.IsZero() && g.IsZero()) {
		return Price{}, invalidArgument("price", "Currency is required for a non-empty price")
	}

	v := NewValue(n, g, tax, mixed, currency)
	return Price{
		value: r.Calculator(currency).Decorate(v),
		reg:   r,
	}, nil
}

// Package-level constructors using the Default registry

// New builds a price with the Default registry
func New(nett, gross decimal.Decimal, opts ...Option) (Price, error) {
	return Default().New(nett, gross, opts...)
}

// Build creates an untaxed price with the Default registry
func Build(value decimal.Decimal, symbol string) (Price, error) {
	return Default().Build(value, symbol)
}

// BuildByNett derives gross from nett with the Default registry
func BuildByNett(nett decimal.Decimal, rate int, symbol string) (Price, error) {
	return Default().BuildByNett(nett, rate, symbol)
}

// BuildByGross derives nett from gross with the Default registry
func BuildByGross(gross decimal.Decimal, rate int, symbol string) (Price, error) {
	return Default().BuildByGross(gross, rate, symbol)
}

// BuildEmpty creates the zero price with the Default registry
func BuildEmpty(symbol string, withTax bool) (Price, error) {
	return Default().BuildEmpty(symbol, withTax)
}
