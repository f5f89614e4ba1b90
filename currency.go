package money

import (
	"fmt"
)

// Currency describes a monetary unit: its code, the number of fractional
// digits it conventionally uses, the locale that governs its formatting,
// and its display symbol.
//
// Currency values are constructed once, at process start or by an explicit
// [NewSet] call, and are immutable thereafter. [Money], [FastMoney], and
// [ExchangeRate] hold them by reference and never copy or mutate them, so
// they are safe for concurrent use by multiple goroutines.
//
// Two Currency values denote the same currency if and only if their codes
// are equal; code identity, not structural equality, governs arithmetic
// compatibility.
type Currency interface {
	// Code returns the short unique identifier of the currency, e.g. "USD".
	Code() string
	// Exponent returns the number of fractional digits of the currency,
	// e.g. 2 for USD, 0 for JPY, 3 for BHD.
	Exponent() int
	// Locale returns the locale tag selecting the currency's formatting.
	Locale() Locale
	// Symbol returns the display symbol, e.g. "$".
	Symbol() string
	// SymbolFirst reports whether the symbol precedes the amount.
	SymbolFirst() bool
}

// Def is a plain record describing a single currency.
// A table of Defs is turned into an immutable [Set] by [NewSet].
type Def struct {
	Code              string
	NumericCode       string // optional, e.g. "840" for USD
	Name              string
	Exponent          int
	Locale            Locale
	Symbol            string
	SymbolFirst       bool
	MinorDenomination int64 // smallest minor-unit increment in circulation
}

// Unit is a currency built from a [Def]. It implements [Currency].
type Unit struct {
	def Def
}

// Code returns the alphabetic code of the currency.
func (u *Unit) Code() string { return u.def.Code }

// Num returns the numeric code of the currency, or an empty string if
// the currency does not have one.
func (u *Unit) Num() string { return u.def.NumericCode }

// Name returns the full name of the currency.
func (u *Unit) Name() string { return u.def.Name }

// Exponent returns the number of fractional digits of the currency.
func (u *Unit) Exponent() int { return u.def.Exponent }

// Locale returns the locale tag of the currency.
func (u *Unit) Locale() Locale { return u.def.Locale }

// Symbol returns the display symbol of the currency.
func (u *Unit) Symbol() string { return u.def.Symbol }

// SymbolFirst reports whether the symbol precedes the amount.
func (u *Unit) SymbolFirst() bool { return u.def.SymbolFirst }

// MinorDenomination returns the smallest minor-unit increment in
// circulation, e.g. 5 for currencies whose smallest coin is worth five
// minor units. It is informational and does not affect arithmetic.
func (u *Unit) MinorDenomination() int64 { return u.def.MinorDenomination }

// String implements the [fmt.Stringer] interface and returns the
// alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u *Unit) String() string { return u.def.Code }

// MaxExponent is the largest currency exponent a [Set] accepts.
// It is bounded by the number of decimal digits that fit an int64
// minor-unit representation.
const MaxExponent = 18

// Set is a named, immutable collection of currencies with O(1) lookup
// by alphabetic or numeric code.
//
// A Set is constructed once and never mutated, so it is safe for
// concurrent use by multiple goroutines. Pass it explicitly to the
// components that resolve currency codes ([DecodeMoney], callers of
// [Set.Find]) instead of relying on process-wide state.
type Set struct {
	name   string
	byCode map[string]*Unit
	byNum  map[string]*Unit
}

// NewSet builds an immutable currency set from a table of records.
//
// NewSet returns an error if:
//   - a record has an empty code;
//   - two records share a code or a numeric code;
//   - a record's exponent is negative or greater than [MaxExponent].
func NewSet(name string, defs ...Def) (*Set, error) {
	s := &Set{
		name:   name,
		byCode: make(map[string]*Unit, len(defs)),
		byNum:  make(map[string]*Unit, len(defs)),
	}
	for _, def := range defs {
		if def.Code == "" {
			return nil, fmt.Errorf("building set %q: empty code: %w", name, ErrInvalidCurrency)
		}
		if def.Exponent < 0 || def.Exponent > MaxExponent {
			return nil, fmt.Errorf("building set %q: %s: exponent %d out of range [0, %d]: %w", name, def.Code, def.Exponent, MaxExponent, ErrInvalidCurrency)
		}
		if _, ok := s.byCode[def.Code]; ok {
			return nil, fmt.Errorf("building set %q: duplicate code %s: %w", name, def.Code, ErrInvalidCurrency)
		}
		u := &Unit{def: def}
		s.byCode[def.Code] = u
		if def.NumericCode != "" {
			if _, ok := s.byNum[def.NumericCode]; ok {
				return nil, fmt.Errorf("building set %q: duplicate numeric code %s: %w", name, def.NumericCode, ErrInvalidCurrency)
			}
			s.byNum[def.NumericCode] = u
		}
	}
	return s, nil
}

// MustNewSet is like [NewSet] but panics if the set cannot be built.
// It simplifies safe initialization of global variables holding sets.
func MustNewSet(name string, defs ...Def) *Set {
	s, err := NewSet(name, defs...)
	if err != nil {
		panic(fmt.Sprintf("NewSet(%q) failed: %v", name, err))
	}
	return s
}

// Name returns the name of the set.
func (s *Set) Name() string { return s.name }

// Len returns the number of currencies in the set.
func (s *Set) Len() int { return len(s.byCode) }

// Find returns the currency with the given alphabetic or numeric code.
//
// Find returns [ErrInvalidCurrency] if the set contains no such currency.
func (s *Set) Find(code string) (Currency, error) {
	if u, ok := s.byCode[code]; ok {
		return u, nil
	}
	if u, ok := s.byNum[code]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("finding %q in set %q: %w", code, s.name, ErrInvalidCurrency)
}

// MustFind is like [Set.Find] but panics if the currency is not in the set.
// It simplifies safe initialization of global variables holding currencies.
func (s *Set) MustFind(code string) Currency {
	c, err := s.Find(code)
	if err != nil {
		panic(fmt.Sprintf("Find(%q) failed: %v", code, err))
	}
	return c
}

// currCode tolerates the nil currency carried by zero-value amounts.
func currCode(c Currency) string {
	if c == nil {
		return "XXX"
	}
	return c.Code()
}

func currExponent(c Currency) int {
	if c == nil {
		return 0
	}
	return c.Exponent()
}

func sameCurr(a, b Currency) bool {
	return currCode(a) == currCode(b)
}
