package money

// ISO is the built-in set of ISO 4217 currencies.
//
// The table is constructed once at package initialization and is
// immutable; applications that only need a subset, or that need
// additional descriptors, build their own set with [NewSet].
var ISO = MustNewSet("iso",
	Def{Code: "AED", NumericCode: "784", Name: "United Arab Emirates Dirham", Exponent: 2, Locale: EnUS, Symbol: "د.إ", SymbolFirst: false, MinorDenomination: 25},
	Def{Code: "AFN", NumericCode: "971", Name: "Afghan Afghani", Exponent: 2, Locale: EnUS, Symbol: "؋", SymbolFirst: false, MinorDenomination: 100},
	Def{Code: "AMD", NumericCode: "051", Name: "Armenian Dram", Exponent: 2, Locale: EnUS, Symbol: "դր.", SymbolFirst: false, MinorDenomination: 10},
	Def{Code: "ANG", NumericCode: "532", Name: "Netherlands Antillean Gulden", Exponent: 2, Locale: EnUS, Symbol: "ƒ", SymbolFirst: false, MinorDenomination: 1},
	Def{Code: "AOA", NumericCode: "973", Name: "Angolan Kwanza", Exponent: 2, Locale: EnUS, Symbol: "Kz", SymbolFirst: false, MinorDenomination: 10},
	Def{Code: "ARS", NumericCode: "032", Name: "Argentine Peso", Exponent: 2, Locale: EnEU, Symbol: "$", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "AUD", NumericCode: "036", Name: "Australian Dollar", Exponent: 2, Locale: EnUS, Symbol: "$", SymbolFirst: true, MinorDenomination: 5},
	Def{Code: "BHD", NumericCode: "048", Name: "Bahraini Dinar", Exponent: 3, Locale: EnUS, Symbol: "ب.د", SymbolFirst: true, MinorDenomination: 5},
	Def{Code: "BRL", NumericCode: "986", Name: "Brazilian Real", Exponent: 2, Locale: EnEU, Symbol: "R$", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "BYN", NumericCode: "933", Name: "Belarusian Ruble", Exponent: 2, Locale: EnBY, Symbol: "Br", SymbolFirst: false, MinorDenomination: 1},
	Def{Code: "CAD", NumericCode: "124", Name: "Canadian Dollar", Exponent: 2, Locale: EnUS, Symbol: "$", SymbolFirst: true, MinorDenomination: 5},
	Def{Code: "CHF", NumericCode: "756", Name: "Swiss Franc", Exponent: 2, Locale: EnUS, Symbol: "CHF", SymbolFirst: true, MinorDenomination: 5},
	Def{Code: "CLF", NumericCode: "990", Name: "Unidad de Fomento", Exponent: 4, Locale: EnEU, Symbol: "UF", SymbolFirst: false, MinorDenomination: 1},
	Def{Code: "CNY", NumericCode: "156", Name: "Chinese Renminbi Yuan", Exponent: 2, Locale: EnUS, Symbol: "¥", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "DKK", NumericCode: "208", Name: "Danish Krone", Exponent: 2, Locale: EnEU, Symbol: "kr.", SymbolFirst: false, MinorDenomination: 50},
	Def{Code: "EUR", NumericCode: "978", Name: "Euro", Exponent: 2, Locale: EnEU, Symbol: "€", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "GBP", NumericCode: "826", Name: "British Pound", Exponent: 2, Locale: EnUS, Symbol: "£", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "HKD", NumericCode: "344", Name: "Hong Kong Dollar", Exponent: 2, Locale: EnUS, Symbol: "$", SymbolFirst: true, MinorDenomination: 10},
	Def{Code: "INR", NumericCode: "356", Name: "Indian Rupee", Exponent: 2, Locale: EnIN, Symbol: "₹", SymbolFirst: true, MinorDenomination: 50},
	Def{Code: "JPY", NumericCode: "392", Name: "Japanese Yen", Exponent: 0, Locale: EnUS, Symbol: "¥", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "KRW", NumericCode: "410", Name: "South Korean Won", Exponent: 0, Locale: EnUS, Symbol: "₩", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "KWD", NumericCode: "414", Name: "Kuwaiti Dinar", Exponent: 3, Locale: EnUS, Symbol: "د.ك", SymbolFirst: true, MinorDenomination: 5},
	Def{Code: "MXN", NumericCode: "484", Name: "Mexican Peso", Exponent: 2, Locale: EnUS, Symbol: "$", SymbolFirst: true, MinorDenomination: 5},
	Def{Code: "NOK", NumericCode: "578", Name: "Norwegian Krone", Exponent: 2, Locale: EnBY, Symbol: "kr", SymbolFirst: false, MinorDenomination: 100},
	Def{Code: "OMR", NumericCode: "512", Name: "Omani Rial", Exponent: 3, Locale: EnUS, Symbol: "ر.ع.", SymbolFirst: true, MinorDenomination: 5},
	Def{Code: "RUB", NumericCode: "643", Name: "Russian Ruble", Exponent: 2, Locale: EnBY, Symbol: "₽", SymbolFirst: false, MinorDenomination: 1},
	Def{Code: "SEK", NumericCode: "752", Name: "Swedish Krona", Exponent: 2, Locale: EnBY, Symbol: "kr", SymbolFirst: false, MinorDenomination: 100},
	Def{Code: "SGD", NumericCode: "702", Name: "Singapore Dollar", Exponent: 2, Locale: EnUS, Symbol: "$", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "TRY", NumericCode: "949", Name: "Turkish Lira", Exponent: 2, Locale: EnEU, Symbol: "₺", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "USD", NumericCode: "840", Name: "United States Dollar", Exponent: 2, Locale: EnUS, Symbol: "$", SymbolFirst: true, MinorDenomination: 1},
	Def{Code: "ZAR", NumericCode: "710", Name: "South African Rand", Exponent: 2, Locale: EnBY, Symbol: "R", SymbolFirst: true, MinorDenomination: 10},
)
