package price

import (
	dec "github.com/rezonia/price-engine/internal/decimal"
)

// Decorator transforms a freshly computed price value before it is
// handed back to the caller.
type Decorator interface {
	Decorate(v Value) Value
}

// DecoratorFunc adapts a plain function to Decorator
type DecoratorFunc func(v Value) Value

func (f DecoratorFunc) Decorate(v Value) Value {
	return f(v)
}

// MoneyDecorator transforms a single amount
type MoneyDecorator interface {
	DecorateMoney(m Money) Money
}

// Chain applies decorators left to right; each stage receives the
// previous stage's output.
func Chain(v Value, decorators ...Decorator) Value {
	for _, d := range decorators {
		v = d.Decorate(v)
	}
	return v
}

// RoundDecorator rounds nett and gross independently, half-up.
// Tax rate, mixed-tax flag and currency pass through.
type RoundDecorator struct {
	precision int32
}

// NewRoundDecorator creates a rounding stage for the given number of fractional digits
func NewRoundDecorator(precision int32) RoundDecorator {
	return RoundDecorator{precision: precision}
}

func (d RoundDecorator) Precision() int32 {
	return d.precision
}

func (d RoundDecorator) Decorate(v Value) Value {
	return v.WithAmounts(d.DecorateMoney(v.nett), d.DecorateMoney(v.gross))
}

func (d RoundDecorator) DecorateMoney(m Money) Money {
	return Money{value: dec.Round(m.value, d.precision)}
}
