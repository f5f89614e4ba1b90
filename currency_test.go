package money

import (
	"errors"
	"testing"
)

func TestNewSet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := NewSet("test",
			Def{Code: "AAA", NumericCode: "001", Exponent: 2, Symbol: "a"},
			Def{Code: "BBB", Exponent: 0, Symbol: "b"},
		)
		if err != nil {
			t.Fatalf("NewSet(%q) failed: %v", "test", err)
		}
		if got := s.Name(); got != "test" {
			t.Errorf("Name() = %q, want %q", got, "test")
		}
		if got := s.Len(); got != 2 {
			t.Errorf("Len() = %v, want %v", got, 2)
		}
		byCode, err := s.Find("AAA")
		if err != nil {
			t.Fatalf("Find(%q) failed: %v", "AAA", err)
		}
		byNum, err := s.Find("001")
		if err != nil {
			t.Fatalf("Find(%q) failed: %v", "001", err)
		}
		if byCode != byNum {
			t.Errorf("Find(%q) = %v, Find(%q) = %v, want same currency", "AAA", byCode, "001", byNum)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]Def{
			"empty code": {
				{Code: "", Exponent: 2},
			},
			"duplicate code": {
				{Code: "AAA", Exponent: 2},
				{Code: "AAA", Exponent: 0},
			},
			"duplicate numeric code": {
				{Code: "AAA", NumericCode: "001", Exponent: 2},
				{Code: "BBB", NumericCode: "001", Exponent: 2},
			},
			"negative exponent": {
				{Code: "AAA", Exponent: -1},
			},
			"oversized exponent": {
				{Code: "AAA", Exponent: MaxExponent + 1},
			},
		}
		for name, defs := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewSet("test", defs...)
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("NewSet(%q, %v) = %v, want %v", "test", defs, err, ErrInvalidCurrency)
				}
			})
		}
	})
}

func TestMustNewSet(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewSet with an empty code did not panic")
			}
		}()
		MustNewSet("test", Def{Code: ""})
	})
}

func TestSet_Find(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		_, err := ISO.Find("WTF")
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("ISO.Find(%q) = %v, want %v", "WTF", err, ErrInvalidCurrency)
		}
	})
}

func TestSet_MustFind(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("ISO.MustFind(%q) did not panic", "WTF")
			}
		}()
		ISO.MustFind("WTF")
	})
}

func TestISO(t *testing.T) {
	tests := []struct {
		code     string
		exponent int
		locale   Locale
		symbol   string
		first    bool
	}{
		{"USD", 2, EnUS, "$", true},
		{"EUR", 2, EnEU, "€", true},
		{"JPY", 0, EnUS, "¥", true},
		{"OMR", 3, EnUS, "ر.ع.", true},
		{"INR", 2, EnIN, "₹", true},
		{"BYN", 2, EnBY, "Br", false},
		{"AED", 2, EnUS, "د.إ", false},
	}
	for _, tt := range tests {
		c, err := ISO.Find(tt.code)
		if err != nil {
			t.Errorf("ISO.Find(%q) failed: %v", tt.code, err)
			continue
		}
		if got := c.Exponent(); got != tt.exponent {
			t.Errorf("%v.Exponent() = %v, want %v", tt.code, got, tt.exponent)
		}
		if got := c.Locale(); got != tt.locale {
			t.Errorf("%v.Locale() = %v, want %v", tt.code, got, tt.locale)
		}
		if got := c.Symbol(); got != tt.symbol {
			t.Errorf("%v.Symbol() = %q, want %q", tt.code, got, tt.symbol)
		}
		if got := c.SymbolFirst(); got != tt.first {
			t.Errorf("%v.SymbolFirst() = %v, want %v", tt.code, got, tt.first)
		}
	}

	// Numeric codes resolve to the same descriptor as alphabetic ones.
	if byNum := ISO.MustFind("840"); byNum != usd {
		t.Errorf("ISO.MustFind(%q) = %v, want %v", "840", byNum, usd)
	}
}

func TestCrypto(t *testing.T) {
	if got := Crypto.MustFind("BTC").Exponent(); got != 8 {
		t.Errorf("BTC.Exponent() = %v, want %v", got, 8)
	}
	if got := Crypto.MustFind("ETH").Exponent(); got != 18 {
		t.Errorf("ETH.Exponent() = %v, want %v", got, 18)
	}
}

func TestUnit(t *testing.T) {
	u := ISO.MustFind("USD").(*Unit)
	if got := u.String(); got != "USD" {
		t.Errorf("USD.String() = %q, want %q", got, "USD")
	}
	if got := u.Num(); got != "840" {
		t.Errorf("USD.Num() = %q, want %q", got, "840")
	}
	if got := u.Name(); got != "United States Dollar" {
		t.Errorf("USD.Name() = %q, want %q", got, "United States Dollar")
	}
	if got := u.MinorDenomination(); got != 1 {
		t.Errorf("USD.MinorDenomination() = %v, want %v", got, 1)
	}
}
