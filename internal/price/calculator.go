package price

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/price-engine/internal/decimal"
)

// Calculator implements price arithmetic. It owns the currency check and
// the tax merge policy, and runs every result through its decorators.
type Calculator struct {
	decorators []Decorator
}

// NewCalculator creates a calculator applying decorators in the given order
func NewCalculator(decorators ...Decorator) *Calculator {
	return &Calculator{
		decorators: append([]Decorator(nil), decorators...),
	}
}

// StandardCalculator rounds results to DefaultPrecision digits
func StandardCalculator() *Calculator {
	return NewCalculator(NewRoundDecorator(DefaultPrecision))
}

// Decorators returns a copy of the pipeline
func (c *Calculator) Decorators() []Decorator {
	return append([]Decorator(nil), c.decorators...)
}

// Precision returns the precision of the last rounding stage, if any
func (c *Calculator) Precision() (int32, bool) {
	for i := len(c.decorators) - 1; i >= 0; i-- {
		if r, ok := c.decorators[i].(RoundDecorator); ok {
			return r.Precision(), true
		}
	}
	return 0, false
}

// Decorate runs v through every decorator in order
func (c *Calculator) Decorate(v Value) Value {
	return Chain(v, c.decorators...)
}

// DecorateMoney runs m through the decorators that handle single amounts
func (c *Calculator) DecorateMoney(m Money) Money {
	for _, d := range c.decorators {
		if md, ok := d.(MoneyDecorator); ok {
			m = md.DecorateMoney(m)
		}
	}
	return m
}

// Add sums two prices. An empty operand yields the other one untouched.
func (c *Calculator) Add(left, right Price) (Price, error) {
	if left.IsEmpty() {
		return right, nil
	}
	if right.IsEmpty() {
		return left, nil
	}

	currency, err := commonCurrency("add", left, right)
	if err != nil {
		return Price{}, err
	}

	gross := left.Gross().Add(right.Gross())
	nett := left.Nett().Add(right.Nett())

	return c.build(left.registry(), nett, gross, currency, mergeTax(left, right))
}

// Subtract takes right from left. It never produces a negative price: a
// shortfall collapses to the empty price in left's currency, keeping a
// definite tax rate only if both operands agreed on one.
func (c *Calculator) Subtract(left, right Price) (Price, error) {
	if right.IsEmpty() || left.IsEmpty() {
		return left, nil
	}

	currency, err := commonCurrency("subtract", left, right)
	if err != nil {
		return Price{}, err
	}

	rate := mergeTax(left, right)
	reg := left.registry()

	if left.IsGreaterThan(right) {
		gross := left.Gross().Sub(right.Gross())
		nett := left.Nett().Sub(right.Nett())
		// nett can drop to zero or below when the operands were taxed differently
		if dec.IsPositive(nett) {
			return c.build(reg, nett, gross, currency, rate)
		}
	}

	empty, err := reg.BuildEmpty(currency.Symbol(), rate != nil)
	if err != nil {
		return Price{}, err
	}
	return c.decorate(empty), nil
}

// Multiply scales nett and gross. Tax rate and mixed-tax flag are kept.
func (c *Calculator) Multiply(left Price, factor decimal.Decimal) (Price, error) {
	if factor.IsNegative() {
		return Price{}, invalidArgument("multiply", "Multiply param must greater than 0")
	}

	nett := left.Nett().Mul(factor)
	gross := left.Gross().Mul(factor)

	return c.carry(left, nett, gross)
}

// Divide scales nett and re-derives gross from the tax rate, so the pair
// stays consistent under that rate.
func (c *Calculator) Divide(left Price, factor decimal.Decimal) (Price, error) {
	if !dec.IsPositive(factor) {
		return Price{}, invalidArgument("divide", "Divide factor must be positive and greater than zero")
	}

	nett := left.Nett().Div(factor)
	gross := left.value.tax.GrossFromNett(nett)

	return c.carry(left, nett, gross)
}

func (c *Calculator) build(reg *Registry, nett, gross decimal.Decimal, currency Currency, rate *int) (Price, error) {
	p, err := reg.assemble(nett, gross, currency, rate)
	if err != nil {
		return Price{}, err
	}
	return c.decorate(p), nil
}

func (c *Calculator) carry(left Price, nett, gross decimal.Decimal) (Price, error) {
	v := left.value
	p, err := left.registry().compose(nett, gross, v.currency, v.tax, v.mixedTax)
	if err != nil {
		return Price{}, err
	}
	return c.decorate(p), nil
}

func (c *Calculator) decorate(p Price) Price {
	p.value = c.Decorate(p.value)
	return p
}

// commonCurrency checks that two non-empty prices share a currency
func commonCurrency(op string, left, right Price) (Currency, error) {
	a, b := left.value.currency, right.value.currency
	if !a.Equal(b) {
		return Currency{}, ErrDifferentCurrencies(op, a, b)
	}
	return a, nil
}

// mergeTax returns the rate a combined price may claim, or nil when the
// result must be marked as mixed tax.
func mergeTax(left, right Price) *int {
	switch {
	case left.IsEmpty():
		rate := right.TaxRate()
		return &rate
	case right.IsEmpty():
		rate := left.TaxRate()
		return &rate
	case left.HasTaxRate() && right.HasTaxRate() && left.TaxRate() == right.TaxRate():
		rate := left.TaxRate()
		return &rate
	default:
		return nil
	}
}
