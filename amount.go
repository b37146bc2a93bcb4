package ratio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

var ErrBrandMismatch = errors.New("brand mismatch")

// Amount type represents a quantity of one brand: a natural number of
// indivisible units tagged with a [Brand].
// The zero value has no brand and cannot be used with ratios.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	brand Brand // kind of quantity
	value Nat   // number of units
}

// newAmountUnsafe creates a new amount without checking the brand.
// Use it only if you are absolutely sure that the brand is valid.
func newAmountUnsafe(b Brand, v Nat) Amount {
	return Amount{brand: b, value: v}
}

// NewAmount returns an amount of v units of brand b.
//
// NewAmount returns an error if the brand is not valid.
func NewAmount(b Brand, v Nat) (Amount, error) {
	if !b.IsValid() {
		return Amount{}, fmt.Errorf("creating amount %v: %w", v, ErrInvalidBrand)
	}
	return newAmountUnsafe(b, v), nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(b Brand, v Nat) Amount {
	a, err := NewAmount(b, v)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", b, v, err))
	}
	return a
}

// Brand returns the brand of the amount.
func (a Amount) Brand() Brand {
	return a.brand
}

// Value returns the number of units.
func (a Amount) Value() Nat {
	return a.value
}

// IsZero returns:
//
//	true  if a == 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Coerce returns a unchanged if it is a well-formed amount of brand b.
//
// Coerce returns an error if:
//   - the brand b or the brand of a is not valid;
//   - the amount is of a different brand.
func (a Amount) Coerce(b Brand) (Amount, error) {
	switch {
	case !b.IsValid():
		return Amount{}, fmt.Errorf("coercing %v: %w", a, ErrInvalidBrand)
	case !a.brand.IsValid():
		return Amount{}, fmt.Errorf("coercing %v: %w", a, ErrInvalidBrand)
	case a.brand != b:
		return Amount{}, fmt.Errorf("coercing %v: amount brand %v must match %v: %w", a, a.brand, b, ErrBrandMismatch)
	}
	return a, nil
}

// SameBrand returns true if amounts are of the same brand.
func (a Amount) SameBrand(b Amount) bool {
	return a.brand == b.brand
}

// Equal returns true if amounts have the same brand and the same value.
func (a Amount) Equal(b Amount) bool {
	return a.SameBrand(b) && a.value.Equal(b.value)
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if amounts are of different brands.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameBrand(b) {
		return Amount{}, ErrBrandMismatch
	}
	return newAmountUnsafe(a.brand, a.value.Add(b.value)), nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are of different brands;
//   - b is greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameBrand(b) {
		return Amount{}, ErrBrandMismatch
	}
	v, err := a.value.Sub(b.value)
	if err != nil {
		return Amount{}, ErrUnderflow
	}
	return newAmountUnsafe(a.brand, v), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are of different brands.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameBrand(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrBrandMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// GTE returns true if a >= b.
//
// GTE returns an error if amounts are of different brands.
func (a Amount) GTE(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are of different brands.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are of different brands.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// Decimal returns the amount in display units, that is the value divided by
// 10^[Brand.DecimalPlaces].
// For example, 1250000 units of a brand with 6 decimal places are 1.250000.
// The result is meant for display and must not be fed back into exact
// computations.
//
// Decimal returns an error if the result has more than [decimal.MaxPrec] digits.
func (a Amount) Decimal() (decimal.Decimal, error) {
	s := shiftPoint(a.value.String(), a.brand.DecimalPlaces())
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, err)
	}
	return d, nil
}

// shiftPoint inserts a decimal point into a string of digits, so that
// the result has exactly scale digits after the point.
func shiftPoint(digits string, scale int) string {
	if scale == 0 {
		return digits
	}
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	return digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of an amount, the brand name followed by the number of units.
// See also methods [Brand.String], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.brand.Name() + " " + a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example       | Description            |
//	| ------ | ------------- | ---------------------- |
//	| %s, %v | IST 1250000   | Brand and units        |
//	| %q     | "IST 1250000" | Quoted brand and units |
//	| %f     | 1.250000      | Display units          |
//	| %d     | 1250000       | Units                  |
//	| %c     | IST           | Brand                  |
//
// The '-' format flag can be used with all verbs.
// The %f verb falls back to units if the value cannot be represented as a
// decimal, see [Amount.Decimal].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = a.String()
	case 'q', 'Q':
		text = `"` + a.String() + `"`
	case 'd', 'D':
		text = a.value.String()
	case 'f', 'F':
		text = a.value.String()
		if d, err := a.Decimal(); err == nil {
			text = d.String()
		}
	case 'c', 'C':
		text = a.brand.Name()
	default:
		text = "%!" + string(verb) + "(ratio.Amount=" + a.String() + ")"
	}
	writePadded(state, text)
}

// writePadded writes text honoring the width and the '-' flag of the state.
func writePadded(state fmt.State, text string) {
	pad := ""
	if w, ok := state.Width(); ok && w > len(text) {
		pad = strings.Repeat(" ", w-len(text))
	}
	//nolint:errcheck
	if state.Flag('-') {
		state.Write([]byte(text + pad))
	} else {
		state.Write([]byte(pad + text))
	}
}
