package ratio

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/govalues/decimal"
)

var ErrInvalidNumeric = errors.New("invalid numeric data")

// numericPattern is the textual contract for numeric input: one or more
// integer digits, optionally followed by a point and fractional digits.
var numericPattern = regexp.MustCompile(`^(\d+)(?:\.(\d*))?$`)

// ParseRatio converts a decimal string to an exact ratio.
// The input string must be in one of the following formats:
//
//	1
//	1.
//	1.25
//	0.000001
//
// The numerator is formed by the integer and fractional digits, and the
// denominator is 10 raised to the number of fractional digits, so "1.25"
// becomes 125/100.
// The numerator is of brand numBrand, the denominator is of brand denBrand.
// Pass the same brand twice to get a single-brand ratio.
//
// ParseRatio returns an error if:
//   - the string does not match the format above, for example it has a sign,
//     an exponent, or no integer digits;
//   - any of the brands is not valid.
func ParseRatio(s string, numBrand, denBrand Brand) (Ratio, error) {
	m := numericPattern.FindStringSubmatch(s)
	if m == nil {
		return Ratio{}, fmt.Errorf("parsing ratio %q: %w", s, ErrInvalidNumeric)
	}
	whole, frac := m[1], m[2]
	num, err := ParseNat(whole + frac)
	if err != nil {
		return Ratio{}, fmt.Errorf("parsing ratio %q: %w", s, err)
	}
	r, err := NewRatio(num, numBrand, Pow10(len(frac)), denBrand)
	if err != nil {
		return Ratio{}, fmt.Errorf("parsing ratio %q: %w", s, err)
	}
	return r, nil
}

// MustParseRatio is like [ParseRatio] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding ratios.
func MustParseRatio(s string, numBrand, denBrand Brand) Ratio {
	r, err := ParseRatio(s, numBrand, denBrand)
	if err != nil {
		panic(fmt.Sprintf("ParseRatio(%q, %v, %v) failed: %v", s, numBrand, denBrand, err))
	}
	return r
}

// ValidateNumeric returns an error if the string is not accepted by
// [ParseRatio].
func ValidateNumeric(s string) error {
	if !numericPattern.MatchString(s) {
		return fmt.Errorf("validating %q: %w", s, ErrInvalidNumeric)
	}
	return nil
}

// NewRatioFromDecimal converts a decimal to an exact ratio.
// The scale of the decimal is preserved, so 1.50 becomes 150/100.
// See also [ParseRatio].
//
// NewRatioFromDecimal returns an error if:
//   - the decimal is negative;
//   - any of the brands is not valid.
func NewRatioFromDecimal(d decimal.Decimal, numBrand, denBrand Brand) (Ratio, error) {
	if d.IsNeg() {
		return Ratio{}, fmt.Errorf("converting decimal %v: %w", d, ErrInvalidNumeric)
	}
	r, err := ParseRatio(d.String(), numBrand, denBrand)
	if err != nil {
		return Ratio{}, fmt.Errorf("converting decimal: %w", err)
	}
	return r, nil
}

// NewRatioFromFloat64 converts a float to a ratio using the shortest decimal
// representation of the float, so 0.1 becomes 1/10.
// Floats are accepted as input for convenience only, exact values should be
// passed as strings.
// See also [ParseRatio].
//
// NewRatioFromFloat64 returns an error if:
//   - the float is negative or a special value (NaN or Inf);
//   - any of the brands is not valid.
func NewRatioFromFloat64(f float64, numBrand, denBrand Brand) (Ratio, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Ratio{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidNumeric)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	r, err := ParseRatio(s, numBrand, denBrand)
	if err != nil {
		return Ratio{}, fmt.Errorf("converting float: %w", err)
	}
	return r, nil
}
