package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// FastMoney is a fixed-precision amount: an int64 count of the
// currency's minor units. It trades the dynamic scale of [Money] for
// raw integer arithmetic, which makes it suitable for hot paths that
// add, subtract, and compare amounts at high volume.
//
// A FastMoney always carries exactly the currency's exponent worth of
// fractional digits. Conversions from [Money] that would drop finer
// precision fail with [ErrPrecisionLoss] unless done through
// [FromMoneyLossy]. All arithmetic is overflow-checked and reports
// [ErrOverflow] instead of wrapping around.
type FastMoney struct {
	minorUnits int64
	curr       Currency
}

// FastFromMinor returns an amount holding the given number of minor
// units of the currency, e.g. FastFromMinor(1000, USD) is $10.00.
func FastFromMinor(units int64, curr Currency) FastMoney {
	return FastMoney{minorUnits: units, curr: curr}
}

// FastFromMajor returns an amount equal to units whole units of the
// given currency.
//
// FastFromMajor returns [ErrOverflow] if the minor-unit count does not
// fit an int64.
func FastFromMajor(units int64, curr Currency) (FastMoney, error) {
	exp := currExponent(curr)
	if exp < 0 || exp > MaxExponent {
		return FastMoney{}, fmt.Errorf("converting %v major units of %v: %w", units, currCode(curr), ErrOverflow)
	}
	minor, ok := mulInt64(units, int64Pow10[exp])
	if !ok {
		return FastMoney{}, fmt.Errorf("converting %v major units of %v: %w", units, currCode(curr), ErrOverflow)
	}
	return FastMoney{minorUnits: minor, curr: curr}, nil
}

// FromMoney converts a [Money] to its fixed-precision representation.
// The conversion is exact or it fails: an amount carrying fractional
// digits beyond the currency's exponent returns [ErrPrecisionLoss], and
// an amount whose minor-unit count does not fit an int64 returns
// [ErrOverflow]. See [FromMoneyLossy] for the truncating variant.
func FromMoney(m Money) (FastMoney, error) {
	f, err := fromMoney(m, true)
	if err != nil {
		return FastMoney{}, fmt.Errorf("converting %v: %w", m, err)
	}
	return f, nil
}

// FromMoneyLossy is like [FromMoney] but silently truncates fractional
// digits beyond the currency's exponent toward zero, e.g. $10.005
// becomes 1000 cents. Overflow is still an error.
func FromMoneyLossy(m Money) (FastMoney, error) {
	f, err := fromMoney(m, false)
	if err != nil {
		return FastMoney{}, fmt.Errorf("converting %v: %w", m, err)
	}
	return f, nil
}

func fromMoney(m Money, exact bool) (FastMoney, error) {
	p, ok := pow10Decimal(currExponent(m.curr))
	if !ok {
		return FastMoney{}, ErrOverflow
	}
	scaled, err := m.amount.Mul(p)
	if err != nil {
		return FastMoney{}, ErrOverflow
	}
	trunc := scaled.Trunc(0)
	if exact && scaled.Cmp(trunc) != 0 {
		return FastMoney{}, ErrPrecisionLoss
	}
	units, _, ok := trunc.Int64(0)
	if !ok {
		return FastMoney{}, ErrOverflow
	}
	return FastMoney{minorUnits: units, curr: m.curr}, nil
}

// ToMoney converts the amount back to a [Money].
// The conversion is always exact.
func (f FastMoney) ToMoney() Money {
	// Exponents are capped at MaxExponent, within the decimal's scale range.
	d, err := decimal.New(f.minorUnits, currExponent(f.curr))
	if err != nil {
		d = decimal.MustNew(f.minorUnits, 0)
	}
	return Money{amount: d, curr: f.curr}
}

// MinorUnits returns the amount as a count of the currency's minor units.
func (f FastMoney) MinorUnits() int64 {
	return f.minorUnits
}

// Currency returns the currency of the amount.
func (f FastMoney) Currency() Currency {
	return f.curr
}

// IsZero reports whether the amount is zero.
func (f FastMoney) IsZero() bool {
	return f.minorUnits == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (f FastMoney) IsPositive() bool {
	return f.minorUnits > 0
}

// IsNegative reports whether the amount is strictly less than zero.
func (f FastMoney) IsNegative() bool {
	return f.minorUnits < 0
}

// Neg returns an amount with the opposite sign.
func (f FastMoney) Neg() FastMoney {
	return FastMoney{minorUnits: -f.minorUnits, curr: f.curr}
}

// Abs returns the absolute value of the amount.
func (f FastMoney) Abs() FastMoney {
	if f.minorUnits < 0 {
		return f.Neg()
	}
	return f
}

// Add returns the sum of amounts f and b.
//
// Add returns an error if:
//   - the amounts are denominated in different currencies;
//   - the result does not fit an int64.
func (f FastMoney) Add(b FastMoney) (FastMoney, error) {
	if !sameCurr(f.curr, b.curr) {
		return FastMoney{}, fmt.Errorf("computing [%v + %v]: %w", f, b, mismatch(f.curr, b.curr))
	}
	units, ok := addInt64(f.minorUnits, b.minorUnits)
	if !ok {
		return FastMoney{}, fmt.Errorf("computing [%v + %v]: %w", f, b, ErrOverflow)
	}
	return FastMoney{minorUnits: units, curr: f.curr}, nil
}

// Sub returns the difference between amounts f and b.
//
// Sub returns an error if:
//   - the amounts are denominated in different currencies;
//   - the result does not fit an int64.
func (f FastMoney) Sub(b FastMoney) (FastMoney, error) {
	if !sameCurr(f.curr, b.curr) {
		return FastMoney{}, fmt.Errorf("computing [%v - %v]: %w", f, b, mismatch(f.curr, b.curr))
	}
	units, ok := subInt64(f.minorUnits, b.minorUnits)
	if !ok {
		return FastMoney{}, fmt.Errorf("computing [%v - %v]: %w", f, b, ErrOverflow)
	}
	return FastMoney{minorUnits: units, curr: f.curr}, nil
}

// Mul returns the amount multiplied by an integer factor.
//
// Mul returns [ErrOverflow] if the result does not fit an int64.
func (f FastMoney) Mul(e int64) (FastMoney, error) {
	units, ok := mulInt64(f.minorUnits, e)
	if !ok {
		return FastMoney{}, fmt.Errorf("computing [%v * %v]: %w", f, e, ErrOverflow)
	}
	return FastMoney{minorUnits: units, curr: f.curr}, nil
}

// Div returns the amount divided by an integer divisor, truncated
// toward zero to whole minor units.
//
// Div returns [ErrDivisionByZero] if the divisor is zero, and
// [ErrOverflow] for the single non-representable quotient
// math.MinInt64 / -1.
func (f FastMoney) Div(e int64) (FastMoney, error) {
	if e == 0 {
		return FastMoney{}, fmt.Errorf("computing [%v / %v]: %w", f, e, ErrDivisionByZero)
	}
	if f.minorUnits == math.MinInt64 && e == -1 {
		return FastMoney{}, fmt.Errorf("computing [%v / %v]: %w", f, e, ErrOverflow)
	}
	return FastMoney{minorUnits: f.minorUnits / e, curr: f.curr}, nil
}

// Cmp compares amounts and returns:
//
//	-1 if f < b
//	 0 if f = b
//	+1 if f > b
//
// Cmp returns an error if the amounts are denominated in different
// currencies.
func (f FastMoney) Cmp(b FastMoney) (int, error) {
	if !sameCurr(f.curr, b.curr) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", f, b, mismatch(f.curr, b.curr))
	}
	switch {
	case f.minorUnits < b.minorUnits:
		return -1, nil
	case f.minorUnits > b.minorUnits:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether the amounts are equal.
// It returns an error if the amounts are denominated in different currencies.
func (f FastMoney) Equal(b FastMoney) (bool, error) {
	c, err := f.Cmp(b)
	return c == 0, err
}

// String implements the [fmt.Stringer] interface and renders the amount
// the same way [Money.String] does.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f FastMoney) String() string {
	return f.ToMoney().String()
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func subInt64(a, b int64) (int64, bool) {
	if b == math.MinInt64 {
		if a >= 0 {
			return 0, false
		}
		return a - b, true
	}
	return addInt64(a, -b)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
