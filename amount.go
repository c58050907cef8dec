package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch indicates that an arithmetic or comparison operation
// was attempted between amounts denominated in different currencies.
// Amounts are never coerced or converted to make an operation succeed.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown
// currency. Amount is immutable and safe for concurrent use by multiple
// goroutines.
//
// The currency of an amount is fixed at construction and never changes.
// The scale of the value is always at least the scale of the currency;
// it may be greater when the amount was constructed from an exact source
// such as a decimal literal.
type Amount struct {
	curr  Currency        // currency identity
	value decimal.Decimal // exact decimal value
}

// newAmount binds a decimal value to a currency, zero-padding the value
// up to the scale of the currency. Padding is lossless.
func newAmount(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: padDecimal(d, c.Scale())}
}

// NewAmount returns an amount equal to coef / 10^scale.
// If the scale is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// NewAmount returns an error if the currency code is not valid or
// the scale is negative.
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	if scale < 0 {
		return Amount{}, fmt.Errorf("converting coefficient: negative scale %v", scale)
	}
	return newAmount(c, decimal.New(coef, int32(-scale))), nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be
// constructed. It simplifies safe initialization of global variables
// holding amounts.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromInt64 converts an integer to an exact amount with the scale
// of the currency.
//
// NewAmountFromInt64 returns an error if the currency code is not valid.
func NewAmountFromInt64(curr string, n int64) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return newAmount(c, decimal.New(n, 0)), nil
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if the currency code is not valid.
func NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return newAmount(c, decimal.New(units, int32(-c.Scale()))), nil
}

// NewAmountFromDecimal returns an amount with the specified currency and
// value. The conversion is exact: the scale of the value is preserved as
// given and may exceed the scale of the currency.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the currency is not present in
// the registry.
func NewAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	if !curr.valid() {
		return Amount{}, fmt.Errorf("binding value: %w", ErrUnknownCurrency)
	}
	return newAmount(curr, d), nil
}

// NewAmountFromFloat64 converts a binary floating-point value to an amount,
// rounding the result to the scale of the currency using rounding half to
// even (banker's rounding). This conversion is deliberately lossy: binary
// floats cannot represent most decimal fractions exactly, and the rounding
// step removes the residual error before it can compound. The result is
// never promoted to a higher precision.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if the currency code is not valid
// or the float is a special value (NaN or Inf).
func NewAmountFromFloat64(curr string, f float64) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimalFromFloat64(f, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return newAmount(c, d), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// The amount string must match the exact-decimal grammar: an optional sign,
// integer digits, and an optional decimal point followed by fractional
// digits. The conversion is exact; the scale of the result equals the
// number of fractional digits in the string, zero-padded to the scale of
// the currency if below it.
//
// ParseAmount returns [ErrUnknownCurrency] if the currency code is not
// valid and [ErrInvalidLiteral] if the amount string is malformed.
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := parseDecimal(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmount(c, d), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings
// cannot be parsed. It simplifies safe initialization of global variables
// holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return decimalScale(a.value)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNegative()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value.IsPositive()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmount(a.curr, a.value.Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmount(a.curr, a.value.Neg())
}

// CopySign returns an amount with the same sign as amount b.
// The currency of amount b is ignored.
// CopySign treats 0 as positive.
// See also method [Amount.Sign].
func (a Amount) CopySign(b Amount) Amount {
	if b.IsNeg() {
		return newAmount(a.curr, a.value.Abs().Neg())
	}
	return a.Abs()
}

// One returns an amount with a value of 1, having the same currency and
// scale as amount a.
// See also methods [Amount.Zero], [Amount.ULP].
func (a Amount) One() Amount {
	return newAmount(a.curr, padDecimal(decimal.New(1, 0), a.Scale()))
}

// Zero returns an amount with a value of 0, having the same currency and
// scale as amount a.
// See also methods [Amount.One], [Amount.ULP].
func (a Amount) Zero() Amount {
	return newAmount(a.curr, decimal.New(0, int32(-a.Scale())))
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two amounts with the same scale as amount a.
// See also methods [Amount.Zero], [Amount.One].
func (a Amount) ULP() Amount {
	return newAmount(a.curr, decimal.New(1, int32(-a.Scale())))
}

// MinorUnits returns the amount in minor units of its currency
// (e.g. cents, pennies, fens), rounded to the scale of the currency using
// rounding half to even (banker's rounding).
// See also constructor [NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	s := a.curr.Scale()
	u := a.value.RoundBank(int32(s)).Shift(int32(s)).BigInt()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// Float64 returns the nearest binary floating-point number and a boolean
// indicating whether the conversion was exact.
// This conversion may lose data, as float64 has a smaller precision than
// the decimal type.
// See also constructor [NewAmountFromFloat64].
func (a Amount) Float64() (f float64, exact bool) {
	return a.value.Float64()
}

// Add returns the sum of amounts a and b.
// The sum is exact: operand scales are aligned losslessly to the larger of
// the two, and the result is never rounded.
//
// Add returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmount(a.curr, a.value.Add(b.value)), nil
}

// Sub returns the difference between amounts a and b.
// The difference is exact: operand scales are aligned losslessly to the
// larger of the two, and the result is never rounded.
//
// Sub returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return newAmount(a.curr, a.value.Sub(b.value)), nil
}

// Mul returns the product of amount a and decimal factor e.
// The product is exact: the scale of the result is the sum of the scales
// of the operands, and the result is never rounded.
// See also method [Amount.MulFloat64].
func (a Amount) Mul(e decimal.Decimal) Amount {
	return newAmount(a.curr, a.value.Mul(e))
}

// MulFloat64 returns the product of amount a and binary floating-point
// factor f, rounded to the scale of the currency using rounding half to
// even (banker's rounding). The product is computed exactly at full
// precision internally and rounded once at the end; multiplying by an
// inexact factor always produces a rounded result, mirroring
// [NewAmountFromFloat64].
//
// MulFloat64 returns an error if the factor is a special value (NaN or Inf).
func (a Amount) MulFloat64(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("computing [%v * %v]: special value %v", a, f, f)
	}
	d := a.value.Mul(decimal.NewFromFloat(f))
	return newAmount(a.curr, rescaleDecimal(d, a.curr.Scale())), nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified
// number of parts, the remainder is distributed, one unit in the last
// place at a time, among the first parts of the slice. The split is exact.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts < 1 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", a, parts)
	}
	scale := a.Scale()
	units := a.value.Shift(int32(scale)).BigInt()
	quo, rem := new(big.Int).QuoRem(units, big.NewInt(int64(parts)), new(big.Int))

	step := big.NewInt(int64(rem.Sign()))
	extra := new(big.Int).Abs(rem).Int64()

	res := make([]Amount, parts)
	for i := range res {
		u := new(big.Int).Set(quo)
		if int64(i) < extra {
			u.Add(u, step)
		}
		res[i] = newAmount(a.curr, decimal.NewFromBigInt(u, int32(-scale)))
	}
	return res, nil
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using rounding half to even (banker's rounding).
// If the specified scale is less than the scale of the currency, the
// result is padded back to the scale of the currency after rounding.
// If the specified scale is greater than the current scale, the amount is
// returned unchanged.
// See also methods [Amount.Rescale], [Amount.RoundToCurr].
func (a Amount) Round(scale int) Amount {
	if scale < 0 {
		scale = 0
	}
	if scale >= a.Scale() {
		return a
	}
	return newAmount(a.curr, a.value.RoundBank(int32(scale)))
}

// RoundToCurr returns an amount rounded to the scale of its currency
// using rounding half to even (banker's rounding).
// See also methods [Amount.Round], [Amount.SameScaleAsCurr].
func (a Amount) RoundToCurr() Amount {
	return a.Round(a.curr.Scale())
}

// Trunc returns an amount truncated to the specified number of digits
// after the decimal point using rounding toward zero.
// See also method [Amount.TruncToCurr].
func (a Amount) Trunc(scale int) Amount {
	if scale < 0 {
		scale = 0
	}
	return newAmount(a.curr, a.value.Truncate(int32(scale)))
}

// TruncToCurr returns an amount truncated to the scale of its currency
// using rounding toward zero.
// See also method [Amount.Trunc].
func (a Amount) TruncToCurr() Amount {
	return a.Trunc(a.curr.Scale())
}

// Ceil returns an amount rounded up to the specified number of digits
// after the decimal point using rounding toward positive infinity.
// See also methods [Amount.CeilToCurr], [Amount.Floor].
func (a Amount) Ceil(scale int) Amount {
	if scale < 0 {
		scale = 0
	}
	return newAmount(a.curr, a.value.RoundCeil(int32(scale)))
}

// CeilToCurr returns an amount rounded up to the scale of its currency
// using rounding toward positive infinity.
func (a Amount) CeilToCurr() Amount {
	return a.Ceil(a.curr.Scale())
}

// Floor returns an amount rounded down to the specified number of digits
// after the decimal point using rounding toward negative infinity.
// See also methods [Amount.FloorToCurr], [Amount.Ceil].
func (a Amount) Floor(scale int) Amount {
	if scale < 0 {
		scale = 0
	}
	return newAmount(a.curr, a.value.RoundFloor(int32(scale)))
}

// FloorToCurr returns an amount rounded down to the scale of its currency
// using rounding toward negative infinity.
func (a Amount) FloorToCurr() Amount {
	return a.Floor(a.curr.Scale())
}

// Rescale returns an amount with exactly the specified number of digits
// after the decimal point, rounding half to even when the scale is
// narrowed and zero-padding when it is widened. The result is never
// narrower than the scale of the currency.
// See also method [Amount.Round].
func (a Amount) Rescale(scale int) Amount {
	if scale < 0 {
		scale = 0
	}
	return newAmount(a.curr, rescaleDecimal(a.value, scale))
}

// Quantize returns an amount rescaled to the same scale as amount b.
// The currency and the sign of amount b are ignored.
// See also methods [Amount.Scale], [Amount.SameScale], [Amount.Rescale].
func (a Amount) Quantize(b Amount) Amount {
	return a.Rescale(b.Scale())
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// SameScale returns true if amounts have the same scale.
// See also methods [Amount.Scale], [Amount.Quantize].
func (a Amount) SameScale(b Amount) bool {
	return a.Scale() == b.Scale()
}

// SameScaleAsCurr returns true if the scale of the amount is equal to the
// scale of its currency.
// See also methods [Amount.Scale], [Currency.Scale].
func (a Amount) SameScaleAsCurr() bool {
	return a.Scale() == a.curr.Scale()
}

// Cmp numerically compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Amounts with different scales compare by numeric value, so 1.5 and 1.50
// are equal. See also method [Amount.CmpTotal].
//
// Cmp returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// CmpTotal compares the representation of amounts and returns:
//
//	-1 if a < b
//	-1 if a = b and a.scale > b.scale
//	 0 if a = b and a.scale = b.scale
//	+1 if a = b and a.scale < b.scale
//	+1 if a > b
//
// See also method [Amount.Cmp].
//
// CmpTotal returns an error if the amounts are denominated in different
// currencies.
func (a Amount) CmpTotal(b Amount) (int, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return 0, err
	}
	switch {
	case c != 0:
		return c, nil
	case a.Scale() > b.Scale():
		return -1, nil
	case a.Scale() < b.Scale():
		return 1, nil
	}
	return 0, nil
}

// Equal reports whether amounts a and b are numerically equal, regardless
// of their internal scales.
//
// Equal returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Equal(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Less reports whether amount a is numerically less than amount b.
//
// Less returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Less(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessOrEqual reports whether amount a is numerically less than or equal
// to amount b.
//
// LessOrEqual returns an error if the amounts are denominated in different
// currencies.
func (a Amount) LessOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater reports whether amount a is numerically greater than amount b.
//
// Greater returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Greater(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterOrEqual reports whether amount a is numerically greater than or
// equal to amount b.
//
// GreaterOrEqual returns an error if the amounts are denominated in
// different currencies.
func (a Amount) GreaterOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// Min returns the smaller amount.
// See also method [Amount.CmpTotal].
//
// Min returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.CmpTotal(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
// See also method [Amount.CmpTotal].
//
// Max returns an error if the amounts are denominated in different
// currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.CmpTotal(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount, e.g. "USD 12.50". The full stored scale
// is always rendered, including trailing zeros.
//
// String is intended for diagnostics and error messages; localized display
// formatting belongs to external collaborators consuming the [Price]
// interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.StringFixed(int32(a.Scale()))
}
