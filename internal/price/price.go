// Package price models amounts carrying nett and gross values, a tax rate
// and a currency, with arithmetic that keeps tax and currency semantics.
//
// Prices are immutable; every operation returns a new Price. Arithmetic is
// delegated to the Calculator registered for the price's currency in the
// Registry that built it:
//
//	reg := price.NewRegistry(price.StandardCalculator())
//	a, _ := reg.BuildByNett(decimal.NewFromInt(100), 23, "PLN")
//	b, _ := reg.BuildByGross(decimal.NewFromInt(246), 23, "PLN")
//	sum, err := a.Add(b)
//	fmt.Println(sum) // 369.00 PLN
//
// The zero Price is the empty price: zero amounts, no currency, bound to
// the Default registry. It is the identity for Add and Subtract.
package price

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/price-engine/internal/decimal"
)

// Price is an immutable nett/gross/tax/currency amount
type Price struct {
	value Value
	reg   *Registry
}

func (p Price) registry() *Registry {
	if p.reg == nil {
		return Default()
	}
	return p.reg
}

func (p Price) calculator() *Calculator {
	return p.registry().Calculator(p.value.currency)
}

// Value returns the underlying payload
func (p Price) Value() Value {
	return p.value
}

// Nett returns the pre-tax amount rounded to the currency precision.
// Currency-less prices return the raw value.
func (p Price) Nett() decimal.Decimal {
	return p.display(p.value.nett)
}

// Gross returns the post-tax amount rounded to the currency precision.
// Currency-less prices return the raw value.
func (p Price) Gross() decimal.Decimal {
	return p.display(p.value.gross)
}

func (p Price) display(m Money) decimal.Decimal {
	if !p.value.HasCurrency() {
		return m.Value()
	}
	return dec.Round(m.Value(), p.value.currency.Precision())
}

// TaxRate returns the tax percentage. For mixed-tax prices it is informational.
func (p Price) TaxRate() int {
	return p.value.tax.Rate()
}

// HasTaxRate reports whether the tax rate is authoritative
func (p Price) HasTaxRate() bool {
	return !p.value.mixedTax
}

// TaxDiff returns gross minus nett
func (p Price) TaxDiff() decimal.Decimal {
	return p.Gross().Sub(p.Nett())
}

// Currency returns the currency, failing with ErrIllegalState for
// currency-less empty prices.
func (p Price) Currency() (Currency, error) {
	if !p.value.HasCurrency() {
		return Currency{}, ErrUnknownCurrency("currency")
	}
	return p.value.currency, nil
}

// CurrencySymbol returns the symbol, or "" when there is no currency
func (p Price) CurrencySymbol() string {
	return p.value.currency.Symbol()
}

// IsEmpty reports whether both raw amounts are zero
func (p Price) IsEmpty() bool {
	return p.value.nett.IsZero() && p.value.gross.IsZero()
}

// IsEqual compares currencies and the rounded nett and gross amounts
func (p Price) IsEqual(other Price) bool {
	if !p.value.currency.Equal(other.value.currency) {
		return false
	}
	return p.Gross().Equal(other.Gross()) && p.Nett().Equal(other.Nett())
}

// IsGreaterThan compares rounded gross amounts
func (p Price) IsGreaterThan(other Price) bool {
	return p.Gross().GreaterThan(other.Gross())
}

// IsLowerThan compares rounded gross amounts
func (p Price) IsLowerThan(other Price) bool {
	return p.Gross().LessThan(other.Gross())
}

// IsCurrencyMergeable reports whether an amount in symbol can be combined
// with p. Prices without a currency accept any symbol.
func (p Price) IsCurrencyMergeable(symbol string) bool {
	if !p.value.HasCurrency() {
		return true
	}
	return p.value.currency.Symbol() == symbol
}

// Add returns p + other
func (p Price) Add(other Price) (Price, error) {
	return p.calculator().Add(p, other)
}

// Subtract returns p - other, clamped at the empty price
func (p Price) Subtract(other Price) (Price, error) {
	return p.calculator().Subtract(p, other)
}

// Multiply returns p * factor
func (p Price) Multiply(factor decimal.Decimal) (Price, error) {
	return p.calculator().Multiply(p, factor)
}

// Divide returns p / factor
func (p Price) Divide(factor decimal.Decimal) (Price, error) {
	return p.calculator().Divide(p, factor)
}

// AddGross adds to the gross amount without knowing the other amount's tax
// rate; nett is re-derived from p's rate. p must carry a currency. symbol,
// when given, must match it.
func (p Price) AddGross(value decimal.Decimal, symbol string) (Price, error) {
	if symbol != "" {
		if err := p.checkCurrency("add gross", symbol); err != nil {
			return Price{}, err
		}
	} else if _, err := p.Currency(); err != nil {
		return Price{}, err
	}

	m, err := NewMoney(value)
	if err != nil {
		return Price{}, err
	}
	m = p.calculator().DecorateMoney(m)

	gross := p.Gross().Add(m.Value())
	return p.rederive(p.value.tax.NettFromGross(gross), gross)
}

// SubtractGross takes value off the gross amount and re-derives nett.
// Taking more than the gross amount yields a zero price without a tax rate.
func (p Price) SubtractGross(value decimal.Decimal, symbol string) (Price, error) {
	m, err := p.scalar("subtract gross", value, symbol)
	if err != nil {
		return Price{}, err
	}
	if m.IsZero() {
		return p, nil
	}
	if m.Value().GreaterThan(p.Gross()) {
		return p.registry().New(decimal.Zero, decimal.Zero, WithCurrency(p.CurrencySymbol()))
	}

	gross := p.Gross().Sub(m.Value())
	return p.rederive(p.value.tax.NettFromGross(gross), gross)
}

// SubtractNett takes value off the nett amount and re-derives gross.
// Taking more than the nett amount yields a zero price without a tax rate.
func (p Price) SubtractNett(value decimal.Decimal, symbol string) (Price, error) {
	m, err := p.scalar("subtract nett", value, symbol)
	if err != nil {
		return Price{}, err
	}
	if m.IsZero() {
		return p, nil
	}
	if m.Value().GreaterThan(p.Nett()) {
		return p.registry().New(decimal.Zero, decimal.Zero, WithCurrency(p.CurrencySymbol()))
	}

	nett := p.Nett().Sub(m.Value())
	return p.rederive(nett, p.value.tax.GrossFromNett(nett))
}

func (p Price) scalar(op string, value decimal.Decimal, symbol string) (Money, error) {
	m, err := NewMoney(value)
	if err != nil {
		return Money{}, err
	}
	if err := p.checkCurrency(op, symbol); err != nil {
		return Money{}, err
	}
	return p.calculator().DecorateMoney(m), nil
}

func (p Price) checkCurrency(op, symbol string) error {
	own, err := p.Currency()
	if err != nil {
		return err
	}
	other, err := NewCurrency(symbol)
	if err != nil {
		return err
	}
	if !own.Equal(other) {
		return ErrDifferentCurrencies(op, own, other)
	}
	return nil
}

// rederive keeps p's currency and tax rate. The rate becomes authoritative.
func (p Price) rederive(nett, gross decimal.Decimal) (Price, error) {
	v := p.value
	return p.registry().compose(nett, gross, v.currency, v.tax, false)
}

// String returns the default representation, e.g. "12.30 PLN"
func (p Price) String() string {
	return Format(p)
}
