package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two
// currencies: one unit of the base currency buys Rate units of the
// quote currency.
//
// The rate may be zero or negative; only conversion math constrains it,
// and inverting a zero rate is rejected by [Exchange.SetRateAndInverse].
type ExchangeRate struct {
	from Currency // base currency
	to   Currency // quote currency
	rate decimal.Decimal
}

// NewExchangeRate returns a rate between two distinct currencies.
//
// NewExchangeRate returns [ErrInvalidCurrency] if both currencies are
// the same: a self-rate other than 1 is meaningless, and 1 is implicit.
func NewExchangeRate(from, to Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if sameCurr(from, to) {
		return ExchangeRate{}, fmt.Errorf("rate %v/%v: currencies must differ: %w", currCode(from), currCode(to), ErrInvalidCurrency)
	}
	return ExchangeRate{from: from, to: to, rate: rate}, nil
}

// MustNewExchangeRate is like [NewExchangeRate] but panics if the rate
// cannot be constructed. It simplifies safe initialization of global
// variables holding rates.
func MustNewExchangeRate(from, to Currency, rate decimal.Decimal) ExchangeRate {
	r, err := NewExchangeRate(from, to, rate)
	if err != nil {
		panic(fmt.Sprintf("NewExchangeRate(%v, %v, %v) failed: %v", currCode(from), currCode(to), rate, err))
	}
	return r
}

// From returns the base currency of the rate.
func (r ExchangeRate) From() Currency { return r.from }

// To returns the quote currency of the rate.
func (r ExchangeRate) To() Currency { return r.to }

// Rate returns the decimal value of the rate.
func (r ExchangeRate) Rate() decimal.Decimal { return r.rate }

// Convert returns the amount of m re-denominated in the quote currency.
// The product keeps full precision; round it explicitly if the target
// currency's exponent matters.
//
// Convert returns an error if:
//   - m is not denominated in the base currency of the rate;
//   - the product exceeds the representable decimal range.
func (r ExchangeRate) Convert(m Money) (Money, error) {
	if !sameCurr(m.curr, r.from) {
		return Money{}, fmt.Errorf("converting %v with rate %v: %w", m, r, mismatch(r.from, m.curr))
	}
	d, err := m.amount.Mul(r.rate)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v with rate %v: %w", m, r, ErrOverflow)
	}
	return Money{amount: d, curr: r.to}, nil
}

// String implements the [fmt.Stringer] interface, e.g. "USD/EUR 0.85".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return fmt.Sprintf("%v/%v %v", currCode(r.from), currCode(r.to), r.rate)
}

// Exchange is a registry of exchange rates keyed by ordered currency
// pair. Each direction is a distinct entry: storing USD/EUR says
// nothing about EUR/USD unless [Exchange.SetRateAndInverse] is used.
//
// Exchange is not synchronized; callers that mutate it concurrently
// with lookups must provide their own locking.
type Exchange struct {
	rates map[string]ExchangeRate
}

// NewExchange returns an empty rate registry.
func NewExchange() *Exchange {
	return &Exchange{rates: make(map[string]ExchangeRate)}
}

func rateKey(from, to Currency) string {
	return currCode(from) + "/" + currCode(to)
}

// SetRate stores the rate, replacing any previous rate for the same
// ordered pair.
func (x *Exchange) SetRate(r ExchangeRate) {
	x.rates[rateKey(r.from, r.to)] = r
}

// SetRateAndInverse stores the rate together with its reciprocal for
// the opposite direction, replacing any previous rates for either pair.
//
// SetRateAndInverse returns [ErrDivisionByZero] if the rate is zero;
// neither direction is stored in that case.
func (x *Exchange) SetRateAndInverse(r ExchangeRate) error {
	if r.rate.IsZero() {
		return fmt.Errorf("inverting rate %v: %w", r, ErrDivisionByZero)
	}
	inv, err := r.rate.One().Quo(r.rate)
	if err != nil {
		return fmt.Errorf("inverting rate %v: %w", r, ErrOverflow)
	}
	x.SetRate(r)
	x.SetRate(ExchangeRate{from: r.to, to: r.from, rate: inv})
	return nil
}

// Rate returns the stored rate for the ordered pair and reports whether
// one is present.
func (x *Exchange) Rate(from, to Currency) (ExchangeRate, bool) {
	r, ok := x.rates[rateKey(from, to)]
	return r, ok
}

// Len returns the number of stored rates, counting each direction
// separately.
func (x *Exchange) Len() int {
	return len(x.rates)
}
