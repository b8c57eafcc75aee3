package price

// Value is the immutable payload of a Price
type Value struct {
	nett     Money
	gross    Money
	tax      Tax
	mixedTax bool
	currency Currency
}

// NewValue bundles already validated parts
func NewValue(nett, gross Money, tax Tax, mixedTax bool, currency Currency) Value {
	return Value{
		nett:     nett,
		gross:    gross,
		tax:      tax,
		mixedTax: mixedTax,
		currency: currency,
	}
}

func (v Value) Nett() Money {
	return v.nett
}

func (v Value) Gross() Money {
	return v.gross
}

func (v Value) Tax() Tax {
	return v.tax
}

// IsMixedTax reports whether the tax rate was inferred rather than supplied
func (v Value) IsMixedTax() bool {
	return v.mixedTax
}

func (v Value) Currency() Currency {
	return v.currency
}

func (v Value) HasCurrency() bool {
	return !v.currency.IsZero()
}

// WithAmounts returns a copy carrying new nett and gross
func (v Value) WithAmounts(nett, gross Money) Value {
	v.nett = nett
	v.gross = gross
	return v
}
