package money

// Crypto is the built-in set of cryptocurrencies.
var Crypto = MustNewSet("crypto",
	Def{Code: "BTC", Name: "Bitcoin", Exponent: 8, Locale: EnUS, Symbol: "₿", SymbolFirst: true, MinorDenomination: 100_000_000},
	Def{Code: "ETH", Name: "Ethereum", Exponent: 18, Locale: EnUS, Symbol: "ETH", SymbolFirst: false, MinorDenomination: 1_000_000_000_000_000_000},
)
