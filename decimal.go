package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidLiteral indicates that a string does not match the exact-decimal
// grammar accepted by this package: an optional sign, one or more integer
// digits, and an optional decimal point followed by one or more fractional
// digits. Exponent notation, grouping separators, whitespace, and currency
// symbols are all rejected.
var ErrInvalidLiteral = errors.New("invalid decimal literal")

// validLiteral reports whether s matches the exact-decimal grammar.
func validLiteral(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	i := 0
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
	}
	if i == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	j := i + 1
	for ; j < len(s) && '0' <= s[j] && s[j] <= '9'; j++ {
	}
	return j > i+1 && j == len(s)
}

// parseDecimal converts an exact decimal literal to a decimal value.
// The scale of the result equals the number of fractional digits in the
// literal, so "1.50" and "1.5" parse to distinct representations of the
// same number.
func parseDecimal(s string) (decimal.Decimal, error) {
	if !validLiteral(s) {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidLiteral)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidLiteral)
	}
	return d, nil
}

// decimalFromFloat64 converts a binary floating-point value to a decimal
// with exactly the given scale. The conversion takes the shortest decimal
// expansion of the float and rounds it half to even, removing the residual
// error of the binary representation instead of letting it compound.
func decimalFromFloat64(f float64, scale int) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("special value %v", f)
	}
	return rescaleDecimal(decimal.NewFromFloat(f), scale), nil
}

// decimalScale returns the number of digits after the decimal point.
func decimalScale(d decimal.Decimal) int {
	if d.Exponent() > 0 {
		return 0
	}
	return int(-d.Exponent())
}

// padDecimal zero-pads d on the right to the given scale.
// It never rounds; a value that is already at least that wide is
// returned unchanged.
func padDecimal(d decimal.Decimal, scale int) decimal.Decimal {
	if decimalScale(d) >= scale {
		return d
	}
	return d.Add(decimal.New(0, int32(-scale)))
}

// rescaleDecimal returns d with exactly the given scale, rounding half
// to even when the scale is narrowed and zero-padding when it is widened.
func rescaleDecimal(d decimal.Decimal, scale int) decimal.Decimal {
	if decimalScale(d) > scale {
		d = d.RoundBank(int32(scale))
	}
	return padDecimal(d, scale)
}
