package money

import (
	"errors"
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestFastFromMinor(t *testing.T) {
	f := FastFromMinor(1000, usd)
	if got := f.MinorUnits(); got != 1000 {
		t.Errorf("FastFromMinor(1000).MinorUnits() = %v, want %v", got, 1000)
	}
	if got := currCode(f.Currency()); got != "USD" {
		t.Errorf("FastFromMinor(1000).Currency() = %v, want USD", got)
	}
}

func TestFastFromMajor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units int64
			curr  Currency
			want  int64
		}{
			{10, usd, 1000},
			{10, jpy, 10},
			{-3, omr, -3000},
			{0, usd, 0},
		}
		for _, tt := range tests {
			got, err := FastFromMajor(tt.units, tt.curr)
			if err != nil {
				t.Errorf("FastFromMajor(%v, %v) failed: %v", tt.units, tt.curr, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("FastFromMajor(%v, %v) = %v, want %v", tt.units, tt.curr, got.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := FastFromMajor(math.MaxInt64, usd)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("FastFromMajor(MaxInt64, USD) = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestFromMoney(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount string
			curr   Currency
			want   int64
		}{
			{"10.00", usd, 1000},
			{"10", usd, 1000},
			{"-0.01", usd, -1},
			{"100", jpy, 100},
			{"1.234", omr, 1234},
		}
		for _, tt := range tests {
			m := FromDecimal(decimal.MustParse(tt.amount), tt.curr)
			got, err := FromMoney(m)
			if err != nil {
				t.Errorf("FromMoney(%q) failed: %v", tt.amount, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("FromMoney(%q) = %v, want %v", tt.amount, got.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("precision loss", func(t *testing.T) {
		m := FromDecimal(decimal.MustParse("10.005"), usd)
		_, err := FromMoney(m)
		if !errors.Is(err, ErrPrecisionLoss) {
			t.Errorf("FromMoney(%v) = %v, want %v", m.Amount(), err, ErrPrecisionLoss)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		m := FromDecimal(decimal.MustParse("9999999999999999999"), usd)
		_, err := FromMoney(m)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("FromMoney(%v) = %v, want %v", m.Amount(), err, ErrOverflow)
		}
	})
}

func TestFromMoneyLossy(t *testing.T) {
	m := FromDecimal(decimal.MustParse("10.005"), usd)
	got, err := FromMoneyLossy(m)
	if err != nil {
		t.Fatalf("FromMoneyLossy(%v) failed: %v", m.Amount(), err)
	}
	if got.MinorUnits() != 1000 {
		t.Errorf("FromMoneyLossy(%v) = %v, want %v", m.Amount(), got.MinorUnits(), 1000)
	}

	neg := FromDecimal(decimal.MustParse("-10.005"), usd)
	got, err = FromMoneyLossy(neg)
	if err != nil {
		t.Fatalf("FromMoneyLossy(%v) failed: %v", neg.Amount(), err)
	}
	if got.MinorUnits() != -1000 {
		t.Errorf("FromMoneyLossy(%v) = %v, want %v", neg.Amount(), got.MinorUnits(), -1000)
	}
}

func TestFastMoney_ToMoney(t *testing.T) {
	tests := []struct {
		units int64
		curr  Currency
		want  string
	}{
		{1234, usd, "$12.34"},
		{1234, jpy, "¥1,234"},
		{-1, usd, "-$0.01"},
	}
	for _, tt := range tests {
		f := FastFromMinor(tt.units, tt.curr)
		if got := f.ToMoney().String(); got != tt.want {
			t.Errorf("FastFromMinor(%v, %v).ToMoney() = %q, want %q", tt.units, tt.curr, got, tt.want)
		}
	}

	// Round trip is exact.
	f := FastFromMinor(999999, usd)
	back, err := FromMoney(f.ToMoney())
	if err != nil {
		t.Fatalf("FromMoney(ToMoney()) failed: %v", err)
	}
	if back.MinorUnits() != 999999 {
		t.Errorf("FromMoney(ToMoney()) = %v, want %v", back.MinorUnits(), 999999)
	}
}

func TestFastMoney_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := FastFromMinor(500, usd).Add(FastFromMinor(700, usd))
		if err != nil {
			t.Fatalf("500.Add(700) failed: %v", err)
		}
		if got.MinorUnits() != 1200 {
			t.Errorf("500.Add(700) = %v, want %v", got.MinorUnits(), 1200)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := FastFromMinor(1, usd).Add(FastFromMinor(1, eur))
		var mErr CurrencyMismatchError
		if !errors.As(err, &mErr) {
			t.Errorf("USD.Add(EUR) = %v, want CurrencyMismatchError", err)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := FastFromMinor(math.MaxInt64, usd).Add(FastFromMinor(1, usd))
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("MaxInt64.Add(1) = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestFastMoney_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := FastFromMinor(500, usd).Sub(FastFromMinor(700, usd))
		if err != nil {
			t.Fatalf("500.Sub(700) failed: %v", err)
		}
		if got.MinorUnits() != -200 {
			t.Errorf("500.Sub(700) = %v, want %v", got.MinorUnits(), -200)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := FastFromMinor(math.MinInt64, usd).Sub(FastFromMinor(1, usd))
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("MinInt64.Sub(1) = %v, want %v", err, ErrOverflow)
		}
		_, err = FastFromMinor(0, usd).Sub(FastFromMinor(math.MinInt64, usd))
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("0.Sub(MinInt64) = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestFastMoney_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := FastFromMinor(500, usd).Mul(3)
		if err != nil {
			t.Fatalf("500.Mul(3) failed: %v", err)
		}
		if got.MinorUnits() != 1500 {
			t.Errorf("500.Mul(3) = %v, want %v", got.MinorUnits(), 1500)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := map[string]struct {
			units int64
			e     int64
		}{
			"large product":  {math.MaxInt64, 2},
			"negated minimum": {math.MinInt64, -1},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := FastFromMinor(tt.units, usd).Mul(tt.e)
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("%v.Mul(%v) = %v, want %v", tt.units, tt.e, err, ErrOverflow)
				}
			})
		}
	})
}

func TestFastMoney_Div(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units int64
			e     int64
			want  int64
		}{
			{1001, 2, 500},
			{-1001, 2, -500},
			{999, 1000, 0},
		}
		for _, tt := range tests {
			got, err := FastFromMinor(tt.units, usd).Div(tt.e)
			if err != nil {
				t.Errorf("%v.Div(%v) failed: %v", tt.units, tt.e, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("%v.Div(%v) = %v, want %v", tt.units, tt.e, got.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := FastFromMinor(100, usd).Div(0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("100.Div(0) = %v, want %v", err, ErrDivisionByZero)
		}
		_, err = FastFromMinor(math.MinInt64, usd).Div(-1)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("MinInt64.Div(-1) = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestFastMoney_Cmp(t *testing.T) {
	a := FastFromMinor(100, usd)
	b := FastFromMinor(200, usd)
	if got, err := a.Cmp(b); err != nil || got != -1 {
		t.Errorf("100.Cmp(200) = %v, %v, want -1, nil", got, err)
	}
	if got, err := b.Cmp(a); err != nil || got != 1 {
		t.Errorf("200.Cmp(100) = %v, %v, want 1, nil", got, err)
	}
	if got, err := a.Equal(a); err != nil || !got {
		t.Errorf("100.Equal(100) = %v, %v, want true, nil", got, err)
	}
	if _, err := a.Cmp(FastFromMinor(100, eur)); err == nil {
		t.Errorf("USD.Cmp(EUR) did not fail")
	}
}

func TestFastMoney_NegAbs(t *testing.T) {
	f := FastFromMinor(-100, usd)
	if got := f.Neg().MinorUnits(); got != 100 {
		t.Errorf("(-100).Neg() = %v, want %v", got, 100)
	}
	if got := f.Abs().MinorUnits(); got != 100 {
		t.Errorf("(-100).Abs() = %v, want %v", got, 100)
	}
	if got := f.Neg().Abs().MinorUnits(); got != 100 {
		t.Errorf("(-100).Neg().Abs() = %v, want %v", got, 100)
	}
}

func TestFastMoney_Signs(t *testing.T) {
	if !FastFromMinor(0, usd).IsZero() {
		t.Errorf("0.IsZero() = false, want true")
	}
	if !FastFromMinor(1, usd).IsPositive() {
		t.Errorf("1.IsPositive() = false, want true")
	}
	if !FastFromMinor(-1, usd).IsNegative() {
		t.Errorf("-1.IsNegative() = false, want true")
	}
}

func TestFastMoney_String(t *testing.T) {
	if got := FastFromMinor(123456, usd).String(); got != "$1,234.56" {
		t.Errorf("FastFromMinor(123456, USD) = %q, want %q", got, "$1,234.56")
	}
}
