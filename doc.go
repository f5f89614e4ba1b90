/*
Package money provides types and functions for working with monetary
amounts in multiple currencies.

# Amounts

[Money] pairs an arbitrary-precision decimal value with a [Currency].
Arithmetic never mutates its operands, never coerces currencies, and
reports overflow and division by zero as errors instead of panicking.
[FastMoney] is the fixed-precision counterpart: an int64 count of minor
units with overflow-checked integer arithmetic for hot paths.

# Currencies

Currencies live in immutable [Set] registries built from plain [Def]
records. The package ships [ISO] and [Crypto]; applications define
custom units by building their own set with [NewSet]. There is no
process-wide mutable currency state: components that resolve codes,
such as [DecodeMoney], take the set as an argument.

# Formatting

[Money.String] renders an amount in its currency's locale.
[Format] with [Params] gives full control over separators, symbol and
code placement, and rounding, and [FromString] parses locale-formatted
strings strictly, rejecting misplaced digit separators.

# Conversion

[Exchange] stores directional [ExchangeRate] values keyed by currency
pair; [Money.ExchangeTo] and [ExchangeRate.Convert] re-denominate
amounts with full precision.
*/
package money
