package money

import "strings"

// Position is a building block of a formatted amount. A format is an
// ordered list of positions; [Format] renders each in turn.
type Position uint8

const (
	// PositionSign renders "-" if the amount is negative, nothing otherwise.
	// The sign is taken from the amount before any rounding.
	PositionSign Position = iota
	// PositionSymbol renders the currency symbol, e.g. "$".
	PositionSymbol
	// PositionCode renders the currency code, e.g. "USD".
	PositionCode
	// PositionAmount renders the unsigned digits with separators applied.
	PositionAmount
	// PositionSpace renders a single space.
	PositionSpace
)

// NoRounding disables rounding in [Params].
const NoRounding = -1

// Params controls how [Format] renders an amount.
// The zero value renders bare unseparated digits; start from
// [DefaultParams] for a conventional en-US layout.
type Params struct {
	DigitSeparator    rune       // inserted between digit groups
	ExponentSeparator rune       // separates integer and fractional digits
	SeparatorPattern  []int      // group sizes, least significant group first
	Positions         []Position // rendering order
	Rounding          int        // fractional digits to keep, or NoRounding
	Symbol            string     // rendered by PositionSymbol
	Code              string     // rendered by PositionCode
}

// DefaultParams returns parameters for the conventional en-US layout:
// sign, then symbol, then the amount grouped by thousands, without
// rounding.
func DefaultParams() Params {
	return Params{
		DigitSeparator:    ',',
		ExponentSeparator: '.',
		SeparatorPattern:  []int{3, 3, 3},
		Positions:         []Position{PositionSign, PositionSymbol, PositionAmount},
		Rounding:          NoRounding,
	}
}

// Format renders the amount according to the given parameters.
//
// If p.Rounding is non-negative, the rendered digits are rounded
// half-even to that many fractional places; the sign position still
// reflects the amount before rounding, so a small negative amount that
// rounds to zero keeps its minus sign.
func Format(m Money, p Params) string {
	d := m.Amount()
	if p.Rounding >= 0 {
		d = m.Round(p.Rounding, HalfEven).Amount().Pad(p.Rounding)
	}
	amount := formatDigits(d.String(), p)

	var b strings.Builder
	for _, pos := range p.Positions {
		switch pos {
		case PositionSign:
			if m.IsNegative() {
				b.WriteByte('-')
			}
		case PositionSymbol:
			b.WriteString(p.Symbol)
		case PositionCode:
			b.WriteString(p.Code)
		case PositionAmount:
			b.WriteString(amount)
		case PositionSpace:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// formatDigits strips the sign, splits off the fractional digits, and
// applies the digit separators to the integer part.
func formatDigits(raw string, p Params) string {
	intPart, fracPart, hasFrac := strings.Cut(raw, ".")
	intPart = strings.TrimPrefix(intPart, "-")
	digits := insertSeparators(intPart, p.DigitSeparator, p.SeparatorPattern)
	if hasFrac {
		return digits + string(p.ExponentSeparator) + fracPart
	}
	return digits
}

// insertSeparators walks the pattern from the least significant group
// outward, inserting a separator after each group boundary that falls
// inside the digit string. Boundaries are cumulative and count
// previously inserted separators, matching the grouping of nested
// patterns such as [3, 2, 2].
func insertSeparators(digits string, sep rune, pattern []int) string {
	out := []rune(digits)
	position := 0
	for _, n := range pattern {
		position += n
		if len(out) > position {
			i := len(out) - position
			out = append(out[:i], append([]rune{sep}, out[i:]...)...)
			position++
		}
	}
	return string(out)
}
