package money

import (
	"encoding/json"
	"fmt"

	"github.com/govalues/decimal"
)

// MarshalJSON implements the [json.Marshaler] interface and encodes the
// amount as an object with the decimal value as a string, e.g.
// {"amount":"123.45","currency":"USD"}. The string form keeps the value
// exact; JSON numbers would be read back as float64 by most decoders.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 40)
	text = append(text, `{"amount":"`...)
	text = append(text, m.amount.String()...)
	text = append(text, `","currency":"`...)
	text = append(text, currCode(m.curr)...)
	text = append(text, `"}`...)
	return text, nil
}

// MarshalJSON implements the [json.Marshaler] interface using the same
// encoding as [Money.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f FastMoney) MarshalJSON() ([]byte, error) {
	return f.ToMoney().MarshalJSON()
}

type moneyRecord struct {
	Amount   *string `json:"amount"`
	Currency *string `json:"currency"`
}

// DecodeMoney decodes an amount from its JSON encoding, resolving the
// currency code against the given set. Both fields are required.
//
// Decoding takes the set explicitly because Money cannot implement
// [json.Unmarshaler] without reaching for process-wide currency state.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func DecodeMoney(data []byte, set *Set) (Money, error) {
	var rec moneyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Money{}, fmt.Errorf("decoding amount: %w", err)
	}
	if rec.Amount == nil {
		return Money{}, fmt.Errorf("decoding amount: missing field %q: %w", "amount", ErrInvalidAmount)
	}
	if rec.Currency == nil {
		return Money{}, fmt.Errorf("decoding amount: missing field %q: %w", "currency", ErrInvalidCurrency)
	}
	c, err := set.Find(*rec.Currency)
	if err != nil {
		return Money{}, fmt.Errorf("decoding amount: %w", err)
	}
	d, err := decimal.Parse(*rec.Amount)
	if err != nil {
		return Money{}, fmt.Errorf("decoding amount %q: %w", *rec.Amount, ErrInvalidAmount)
	}
	return Money{amount: d, curr: c}, nil
}

// DecodeFastMoney is like [DecodeMoney] but returns a fixed-precision
// amount. The decoded value must fit the currency's exponent exactly;
// finer precision is reported as [ErrPrecisionLoss].
func DecodeFastMoney(data []byte, set *Set) (FastMoney, error) {
	m, err := DecodeMoney(data, set)
	if err != nil {
		return FastMoney{}, err
	}
	return FromMoney(m)
}
