package money

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCurrency indicates an unknown currency code, or a pair of
	// currencies that must be distinct but are not.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidAmount indicates a malformed amount string, including an
	// empty string or a grouping that does not match the locale's pattern.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRatio indicates an empty allocation or one whose weights
	// are all zero.
	ErrInvalidRatio = errors.New("invalid ratio")

	// ErrDivisionByZero indicates division by an exactly zero scalar or
	// inversion of a zero exchange rate.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow indicates arithmetic exceeding the representable range,
	// either int64 minor units or the decimal coefficient.
	ErrOverflow = errors.New("overflow")

	// ErrPrecisionLoss indicates a strict conversion that encountered
	// fractional precision finer than the currency's exponent.
	ErrPrecisionLoss = errors.New("precision loss")
)

// CurrencyMismatchError reports a binary operation between two amounts
// denominated in different currencies.
type CurrencyMismatchError struct {
	Expected string // code of the left operand's currency
	Actual   string // code of the right operand's currency
}

func (e CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func mismatch(a, b Currency) error {
	return CurrencyMismatchError{Expected: currCode(a), Actual: currCode(b)}
}
