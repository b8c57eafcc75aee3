package price

import (
	"errors"
	"fmt"
)

// Error kinds, matched with errors.Is
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrIncompatibleCurrency = errors.New("incompatible currency")
	ErrIllegalState         = errors.New("illegal state")
)

// Error represents a failed price operation
type Error struct {
	Kind    error
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError creates a new price error
func NewError(kind error, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
	}
}

func invalidArgument(op, format string, args ...interface{}) *Error {
	return NewError(ErrInvalidArgument, op, fmt.Sprintf(format, args...))
}

// ErrDifferentCurrencies returns error when two amounts carry different currencies
func ErrDifferentCurrencies(op string, a, b Currency) *Error {
	return NewError(ErrIncompatibleCurrency, op,
		fmt.Sprintf("Can not operate on different currencies (%q and %q)", a.Symbol(), b.Symbol()))
}

// ErrUnknownCurrency returns error when the currency of an empty price is read
func ErrUnknownCurrency(op string) *Error {
	return NewError(ErrIllegalState, op, "Currency is unknown")
}
