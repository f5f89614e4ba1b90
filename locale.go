package money

// Locale identifies a region with its own convention for grouping digits
// and separating the fractional part of an amount.
// Each Locale maps 1:1 to a [LocalFormat].
type Locale uint8

const (
	EnUS Locale = iota // 1,000,000.00
	EnIN               // 1,00,00,000.00
	EnEU               // 1.000.000,00
	EnBY               // 1 000 000,00
)

// LocalFormat stores the formatting punctuation of a region.
// The digit separator and the exponent separator always differ;
// a format where they coincide would be ambiguous to parse.
type LocalFormat struct {
	Name              string
	DigitSeparator    rune  // inserted between digit groups
	ExponentSeparator rune  // separates integer and fractional digits
	SeparatorPattern  []int // group sizes, least significant group first
}

var pattern333 = []int{3, 3, 3}
var pattern322 = []int{3, 2, 2}

var localFormats = [...]LocalFormat{
	EnUS: {Name: "en-us", DigitSeparator: ',', ExponentSeparator: '.', SeparatorPattern: pattern333},
	EnIN: {Name: "en-in", DigitSeparator: ',', ExponentSeparator: '.', SeparatorPattern: pattern322},
	EnEU: {Name: "en-eu", DigitSeparator: '.', ExponentSeparator: ',', SeparatorPattern: pattern333},
	EnBY: {Name: "en-by", DigitSeparator: ' ', ExponentSeparator: ',', SeparatorPattern: pattern333},
}

// Format returns the formatting punctuation of the locale.
// Unknown locales fall back to [EnUS].
func (l Locale) Format() LocalFormat {
	if int(l) >= len(localFormats) {
		return localFormats[EnUS]
	}
	return localFormats[l]
}

// String implements the [fmt.Stringer] interface and returns the
// IETF-style tag of the locale.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (l Locale) String() string {
	return l.Format().Name
}
