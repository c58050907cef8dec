/*
Package money implements exact monetary amounts bound to a currency.
It pairs an arbitrary-precision decimal value, provided by the
[shopspring/decimal] package, with a [Currency] identity resolved against
an ISO 4217 registry, and rejects any arithmetic or comparison between
amounts of different currencies.

# Representation

The package consists of two main types: Amount and Currency.
An Amount is an immutable value holding a Currency and a decimal value
(sign, unscaled integer magnitude, and a non-negative scale).
The Currency type is an integer index into an in-memory registry holding
the code, name, and minor-unit scale of each currency, so currency
identity checks never compare strings.

The registry is seeded with an ISO 4217 snapshot at startup and can be
extended with custom currencies via [RegisterCurr] before first use.
Lookups read an immutable snapshot, so concurrent readers never block.

# Exactness

Values constructed from decimal literals, strings, or integers are exact,
and their scale is preserved even when it exceeds the minor unit of the
currency. Addition and subtraction align scales losslessly and never
round. Multiplication by a decimal factor is exact, with the result scale
being the sum of the operand scales.

Binary floating-point input is the one documented lossy boundary:
constructing an amount from a float, or multiplying by a float factor,
always rounds the result to the scale of the currency using rounding
half to even (banker's rounding). The rounding step removes the residual
error that binary floats carry for most decimal fractions, such as 0.1.

# Errors

All errors are synchronous and reported to the caller:
[ErrInvalidLiteral] for malformed decimal strings, [ErrUnknownCurrency]
for codes absent from the registry, and [ErrCurrencyMismatch] for
operations between amounts of different currencies.
Mismatched currencies are never coerced or converted.

[shopspring/decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package money
