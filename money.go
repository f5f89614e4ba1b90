package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// Money represents an amount of a given currency.
//
// Money pairs a decimal value with a [Currency] reference. Every operation
// returns a new Money; values are never mutated, so Money is safe for
// concurrent use by multiple goroutines. Binary operations require both
// operands to be denominated in the same currency and report a
// [CurrencyMismatchError] otherwise; currencies are never coerced
// silently.
//
// The zero value carries a nil currency and renders with the [XXX]-style
// code "XXX"; construct values with the From* constructors instead.
type Money struct {
	amount decimal.Decimal // monetary value
	curr   Currency        // denomination, held by reference
}

// int64Pow10 holds powers of ten up to 10^MaxExponent.
var int64Pow10 = [MaxExponent + 1]int64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

func pow10Decimal(exp int) (decimal.Decimal, bool) {
	if exp < 0 || exp > MaxExponent {
		return decimal.Decimal{}, false
	}
	return decimal.MustNew(int64Pow10[exp], 0), true
}

// FromMinor returns an amount equal to units / 10^exponent of the given
// currency, e.g. FromMinor(1000, USD) is $10.00. The conversion is exact.
//
// FromMinor returns an error if the currency's exponent exceeds the scale
// supported by the underlying decimal.
func FromMinor(units int64, curr Currency) (Money, error) {
	d, err := decimal.New(units, currExponent(curr))
	if err != nil {
		return Money{}, fmt.Errorf("converting minor units: %w", err)
	}
	return Money{amount: d, curr: curr}, nil
}

// MustFromMinor is like [FromMinor] but panics if the amount cannot be
// constructed. It simplifies safe initialization of global variables
// holding amounts.
func MustFromMinor(units int64, curr Currency) Money {
	m, err := FromMinor(units, curr)
	if err != nil {
		panic(fmt.Sprintf("FromMinor(%v, %v) failed: %v", units, currCode(curr), err))
	}
	return m
}

// FromMajor returns an amount equal to units whole units of the given
// currency, e.g. FromMajor(1000, USD) is $1,000.
func FromMajor(units int64, curr Currency) Money {
	return Money{amount: decimal.MustNew(units, 0), curr: curr}
}

// FromDecimal returns an amount with the given decimal value and currency.
// The value is stored as given: it may carry more fractional digits than
// the currency's exponent, and no implicit rounding takes place.
// Callers who need the value snapped to the currency's exponent call
// [Money.Round] or [Money.RoundToCurr] explicitly.
func FromDecimal(d decimal.Decimal, curr Currency) Money {
	return Money{amount: d, curr: curr}
}

// FromString parses a locale-formatted amount string in the currency's
// locale, e.g. "1,234.56" for USD or "1.234,56" for EUR.
//
// The parser is strict: digit groups are verified against the locale's
// grouping pattern from the least significant group outward, so
// "1,00.00" is rejected under a 3-3-3 locale. If no fractional part is
// given, it defaults to zeros padded to the currency's exponent.
//
// FromString returns [ErrInvalidAmount] on any malformed input,
// including an empty string.
func FromString(s string, curr Currency) (Money, error) {
	m, err := parseLocalized(s, curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return m, nil
}

// MustFromString is like [FromString] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// amounts.
func MustFromString(s string, curr Currency) Money {
	m, err := FromString(s, curr)
	if err != nil {
		panic(fmt.Sprintf("FromString(%q, %v) failed: %v", s, currCode(curr), err))
	}
	return m
}

func parseLocalized(s string, curr Currency) (Money, error) {
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	f := localeFormat(curr)

	parts := strings.Split(s, string(f.ExponentSeparator))
	if len(parts) > 2 {
		return Money{}, ErrInvalidAmount
	}

	groups := strings.Split(parts[0], string(f.DigitSeparator))
	joined := strings.Join(groups, "")

	// Verify group sizes against the pattern, least significant first.
	for _, n := range f.SeparatorPattern {
		if len(groups) <= 1 {
			break
		}
		last := groups[len(groups)-1]
		groups = groups[:len(groups)-1]
		if len(last) != n {
			return Money{}, ErrInvalidAmount
		}
	}

	var b strings.Builder
	b.WriteString(joined)
	if len(parts) == 2 {
		if !isDigits(parts[1]) {
			return Money{}, ErrInvalidAmount
		}
		b.WriteByte('.')
		b.WriteString(parts[1])
	} else if exp := currExponent(curr); exp > 0 {
		b.WriteByte('.')
		for i := 0; i < exp; i++ {
			b.WriteByte('0')
		}
	}

	d, err := decimal.Parse(b.String())
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: d, curr: curr}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func localeFormat(c Currency) LocalFormat {
	if c == nil {
		return EnUS.Format()
	}
	return c.Locale().Format()
}

// Amount returns the decimal value of the amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() Currency {
	return m.curr
}

// IsZero reports whether the amount is zero.
// Negative zero is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.Sign() > 0
}

// IsNegative reports whether the amount is strictly less than zero.
// Negative zero is not negative.
func (m Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), curr: m.curr}
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), curr: m.curr}
}

// MinorUnits returns the amount scaled by 10^exponent and truncated
// toward zero to an int64, e.g. 12300 cents for $123.00.
//
// This is a documented-lossy convenience: precision finer than the
// currency's exponent is dropped, and 0 is returned if the scaled value
// does not fit an int64.
func (m Money) MinorUnits() int64 {
	p, ok := pow10Decimal(currExponent(m.curr))
	if !ok {
		return 0
	}
	d, err := m.amount.Mul(p)
	if err != nil {
		return 0
	}
	units, _, ok := d.Trunc(0).Int64(0)
	if !ok {
		return 0
	}
	return units
}

// Float64Lossy returns the nearest binary floating-point number, or NaN
// if the conversion fails.
//
// The name is the warning: float64 carries ~15-17 significant decimal
// digits, so this bridge is for display and interop only, never for
// further monetary computation.
func (m Money) Float64Lossy() float64 {
	f, ok := m.amount.Float64()
	if !ok {
		return math.NaN()
	}
	return f
}

// Add returns the sum of amounts m and b.
//
// Add returns an error if:
//   - the amounts are denominated in different currencies;
//   - the result exceeds the representable decimal range.
func (m Money) Add(b Money) (Money, error) {
	if !sameCurr(m.curr, b.curr) {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, mismatch(m.curr, b.curr))
	}
	d, err := m.amount.Add(b.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrOverflow)
	}
	return Money{amount: d, curr: m.curr}, nil
}

// Sub returns the difference between amounts m and b.
//
// Sub returns an error if:
//   - the amounts are denominated in different currencies;
//   - the result exceeds the representable decimal range.
func (m Money) Sub(b Money) (Money, error) {
	if !sameCurr(m.curr, b.curr) {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, mismatch(m.curr, b.curr))
	}
	d, err := m.amount.Sub(b.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrOverflow)
	}
	return Money{amount: d, curr: m.curr}, nil
}

// Mul returns the product of amount m and factor e.
//
// Mul returns [ErrOverflow] if the product exceeds the representable
// decimal range.
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	d, err := m.amount.Mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, ErrOverflow)
	}
	return Money{amount: d, curr: m.curr}, nil
}

// Div returns the quotient of amount m and divisor e.
//
// Div returns [ErrDivisionByZero] if the divisor is exactly zero, and
// [ErrOverflow] if the quotient exceeds the representable decimal range.
func (m Money) Div(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, ErrDivisionByZero)
	}
	d, err := m.amount.Quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, ErrOverflow)
	}
	return Money{amount: d, curr: m.curr}, nil
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the amounts are denominated in different
// currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !sameCurr(m.curr, b.curr) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, mismatch(m.curr, b.curr))
	}
	return m.amount.Cmp(b.amount), nil
}

// Equal reports whether the amounts are numerically equal.
// It returns an error if the amounts are denominated in different currencies.
func (m Money) Equal(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c == 0, err
}

// GreaterThan reports whether m > b.
// It returns an error if the amounts are denominated in different currencies.
func (m Money) GreaterThan(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c > 0, err
}

// GreaterThanOrEqual reports whether m >= b.
// It returns an error if the amounts are denominated in different currencies.
func (m Money) GreaterThanOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c >= 0, err
}

// LessThan reports whether m < b.
// It returns an error if the amounts are denominated in different currencies.
func (m Money) LessThan(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c < 0, err
}

// LessThanOrEqual reports whether m <= b.
// It returns an error if the amounts are denominated in different currencies.
func (m Money) LessThanOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c <= 0, err
}

// RoundingMode selects how [Money.Round] resolves values that fall
// exactly midway between two representable results. Values that are not
// exact midpoints always round to the nearer result regardless of mode.
type RoundingMode uint8

const (
	// HalfEven rounds ties to the nearest even digit (banker's rounding):
	// 2.5 rounds to 2, 3.5 rounds to 4. It is the default and the mode
	// used when formatting for display.
	HalfEven RoundingMode = iota
	// HalfUp rounds ties away from zero: 2.5 rounds to 3, -2.5 to -3.
	HalfUp
	// HalfDown rounds ties toward zero: 2.5 rounds to 2, -2.5 to -2.
	HalfDown
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r RoundingMode) String() string {
	switch r {
	case HalfUp:
		return "half-up"
	case HalfDown:
		return "half-down"
	default:
		return "half-even"
	}
}

// Round returns the amount rounded to the given number of fractional
// digits using the given mode.
//
// Rounding is idempotent: if the amount already carries no more than
// scale fractional digits, it is returned unchanged.
func (m Money) Round(scale int, mode RoundingMode) Money {
	if scale < 0 {
		scale = 0
	}
	d := m.amount
	if scale >= d.Scale() {
		return m
	}
	switch mode {
	case HalfUp:
		d = roundTies(d, scale, false)
	case HalfDown:
		d = roundTies(d, scale, true)
	default:
		d = d.Round(scale)
	}
	return Money{amount: d, curr: m.curr}
}

// RoundToCurr returns the amount rounded to the exponent of its currency.
func (m Money) RoundToCurr(mode RoundingMode) Money {
	return m.Round(currExponent(m.curr), mode)
}

// roundTies rounds to the given scale, sending exact midpoints toward
// zero or away from zero. Non-midpoints are delegated to the decimal's
// nearest-value rounding.
func roundTies(d decimal.Decimal, scale int, towardZero bool) decimal.Decimal {
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		return d.Round(scale)
	}
	half := decimal.MustNew(5, scale+1)
	if r.CmpAbs(half) != 0 {
		return d.Round(scale)
	}
	if towardZero {
		return t
	}
	step := decimal.MustNew(1, scale).CopySign(d)
	u, err := t.Add(step)
	if err != nil {
		return t
	}
	return u
}

// Allocate splits the amount into len(weights) new amounts proportional
// to the given non-negative integer weights, such that the sum of the
// parts equals the whole exactly: no currency unit is created or
// destroyed.
//
// The split is a largest-remainder allocation in minor units: each part
// starts at floor(total * weight / weightSum) minor units, and the
// leftover units are handed out one at a time to parts in list order, so
// earlier parts receive any extra unit first.
//
// Allocate returns [ErrInvalidRatio] if weights is empty, contains a
// negative weight, or sums to zero.
func (m Money) Allocate(weights ...int) ([]Money, error) {
	r, err := m.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v among %v: %w", m, weights, err)
	}
	return r, nil
}

func (m Money) allocate(weights []int) ([]Money, error) {
	if len(weights) == 0 {
		return nil, ErrInvalidRatio
	}
	var weightSum int64
	for _, w := range weights {
		if w < 0 {
			return nil, ErrInvalidRatio
		}
		weightSum += int64(w)
	}
	if weightSum == 0 {
		return nil, ErrInvalidRatio
	}

	exp := currExponent(m.curr)
	p, ok := pow10Decimal(exp)
	if !ok {
		return nil, ErrOverflow
	}
	totalMinor, err := m.amount.Mul(p)
	if err != nil {
		return nil, ErrOverflow
	}
	totalMinor = totalMinor.Floor(0)

	weightTotal := decimal.MustNew(weightSum, 0)
	shares := make([]decimal.Decimal, 0, len(weights))
	allocated := decimal.MustNew(0, 0)
	for _, w := range weights {
		prod, err := totalMinor.Mul(decimal.MustNew(int64(w), 0))
		if err != nil {
			return nil, ErrOverflow
		}
		q, err := prod.Quo(weightTotal)
		if err != nil {
			return nil, ErrOverflow
		}
		q = q.Floor(0)
		shares = append(shares, q)
		if allocated, err = allocated.Add(q); err != nil {
			return nil, ErrOverflow
		}
	}

	// Flooring guarantees a non-negative remainder for any amount sign.
	rem, err := totalMinor.Sub(allocated)
	if err != nil {
		return nil, ErrOverflow
	}
	one := decimal.MustNew(1, 0)
	for i := 0; rem.IsPos(); i++ {
		if shares[i], err = shares[i].Add(one); err != nil {
			return nil, ErrOverflow
		}
		if rem, err = rem.Sub(one); err != nil {
			return nil, ErrOverflow
		}
	}

	back := decimal.MustNew(1, exp)
	res := make([]Money, len(shares))
	for i, s := range shares {
		d, err := s.Mul(back)
		if err != nil {
			return nil, ErrOverflow
		}
		res[i] = Money{amount: d, curr: m.curr}
	}
	return res, nil
}

// Split divides the amount into n parts that are as equal as possible,
// distributing any indivisible remainder to the first parts.
// It is shorthand for [Money.Allocate] with n equal weights.
//
// Split returns [ErrInvalidRatio] if n is not positive.
func (m Money) Split(n int) ([]Money, error) {
	if n <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, n, ErrInvalidRatio)
	}
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	return m.Allocate(weights...)
}

// ExchangeTo converts the amount to the target currency using a rate
// registered in x. It is shorthand for looking up the rate and calling
// [ExchangeRate.Convert].
//
// ExchangeTo returns [ErrInvalidCurrency] if x holds no rate for the
// currency pair.
func (m Money) ExchangeTo(target Currency, x *Exchange) (Money, error) {
	r, ok := x.Rate(m.curr, target)
	if !ok {
		return Money{}, fmt.Errorf("exchanging %v to %v: no rate registered: %w", m, currCode(target), ErrInvalidCurrency)
	}
	return r.Convert(m)
}

// String implements the [fmt.Stringer] interface and renders the amount
// in its currency's locale, rounded half-even to the currency's
// exponent, with the symbol placed per the currency's convention:
// "-$100,000.00", "€1.000,00".
// See also function [Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	c := m.curr
	f := localeFormat(c)
	p := Params{
		DigitSeparator:    f.DigitSeparator,
		ExponentSeparator: f.ExponentSeparator,
		SeparatorPattern:  f.SeparatorPattern,
		Rounding:          currExponent(c),
	}
	symbolFirst := true
	if c != nil {
		p.Symbol = c.Symbol()
		p.Code = c.Code()
		symbolFirst = c.SymbolFirst()
	}
	if symbolFirst {
		p.Positions = []Position{PositionSign, PositionSymbol, PositionAmount}
	} else {
		p.Positions = []Position{PositionSign, PositionAmount, PositionSymbol}
	}
	return Format(m, p)
}
