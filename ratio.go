package ratio

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

var (
	ErrInvalidRatio      = errors.New("invalid ratio")
	ErrZeroDenominator   = errors.New("zero denominator")
	ErrNoCancelableBrand = errors.New("no cancelable brand")
	ErrRange             = errors.New("ratio out of range")
)

// percent is the default denominator of [NewPercent].
var percent = NewNat(100)

// Ratio represents an exact fraction of two amounts.
// The numerator and the denominator may be of different brands, in which case
// the ratio is an exchange rate: it converts amounts of the denominator brand
// into amounts of the numerator brand.
// A ratio whose numerator and denominator share a brand is a plain multiplier
// for amounts of that brand.
//
// Operations producing amounts end with an integer division, which requires
// a rounding mode.
// Since ratios only work with natural numbers, three modes suffice:
//   - Floor* functions round down;
//   - Ceil* functions round up;
//   - functions without a prefix round half to even.
//
// The zero value is not a valid ratio.
// Ratio is designed to be safe for concurrent use by multiple goroutines.
type Ratio struct {
	num Amount // numerator
	den Amount // denominator, always positive
}

// NewRatio returns a ratio num/den, where num is an amount of numBrand and
// den is an amount of denBrand.
// See also [NewPercent] and [NewRatioFromAmounts].
//
// NewRatio returns an error if:
//   - the denominator is 0;
//   - any of the brands is not valid.
func NewRatio(num Nat, numBrand Brand, den Nat, denBrand Brand) (Ratio, error) {
	if den.IsZero() {
		return Ratio{}, fmt.Errorf("creating ratio %v/%v: no infinite ratios: %w", num, den, ErrZeroDenominator)
	}
	n, err := NewAmount(numBrand, num)
	if err != nil {
		return Ratio{}, fmt.Errorf("creating ratio numerator: %w", err)
	}
	d, err := NewAmount(denBrand, den)
	if err != nil {
		return Ratio{}, fmt.Errorf("creating ratio denominator: %w", err)
	}
	return Ratio{num: n, den: d}, nil
}

// MustNewRatio is like [NewRatio] but panics if the ratio cannot be constructed.
// It simplifies safe initialization of global variables holding ratios.
func MustNewRatio(num Nat, numBrand Brand, den Nat, denBrand Brand) Ratio {
	r, err := NewRatio(num, numBrand, den, denBrand)
	if err != nil {
		panic(fmt.Sprintf("NewRatio(%v, %v, %v, %v) failed: %v", num, numBrand, den, denBrand, err))
	}
	return r
}

// NewPercent returns a ratio num/100 with both amounts of brand b.
//
// NewPercent returns an error if the brand is not valid.
func NewPercent(num Nat, b Brand) (Ratio, error) {
	return NewRatio(num, b, percent, b)
}

// NewRatioFromAmounts returns a ratio of two amounts.
//
// NewRatioFromAmounts returns an error if:
//   - any of the amounts is not well formed;
//   - the denominator is 0.
func NewRatioFromAmounts(num, den Amount) (Ratio, error) {
	n, err := num.Coerce(num.Brand())
	if err != nil {
		return Ratio{}, fmt.Errorf("creating ratio numerator: %w", err)
	}
	d, err := den.Coerce(den.Brand())
	if err != nil {
		return Ratio{}, fmt.Errorf("creating ratio denominator: %w", err)
	}
	return NewRatio(n.Value(), n.Brand(), d.Value(), d.Brand())
}

// Numerator returns the numerator of the ratio.
func (r Ratio) Numerator() Amount {
	return r.num
}

// Denominator returns the denominator of the ratio.
func (r Ratio) Denominator() Amount {
	return r.den
}

// IsSingleBrand returns true if the numerator and the denominator are of the
// same brand.
func (r Ratio) IsSingleBrand() bool {
	return r.num.SameBrand(r.den)
}

// Validate returns an error unless r has well-formed numerator and denominator
// amounts and a positive denominator.
// All operations validate their ratio arguments, so Validate is only needed
// for ratios that cross an API boundary.
func (r Ratio) Validate() error {
	switch {
	case !r.num.Brand().IsValid():
		return fmt.Errorf("ratio %v: numerator brand: %w", r, ErrInvalidRatio)
	case !r.den.Brand().IsValid():
		return fmt.Errorf("ratio %v: denominator brand: %w", r, ErrInvalidRatio)
	case r.den.IsZero():
		return fmt.Errorf("ratio %v: denominator must be positive: %w", r, ErrInvalidRatio)
	}
	return nil
}

type quoFunc func(n, m Nat) (Nat, error)

func quoFloor(n, m Nat) (Nat, error)    { return n.QuoFloor(m) }
func quoCeil(n, m Nat) (Nat, error)     { return n.QuoCeil(m) }
func quoHalfEven(n, m Nat) (Nat, error) { return n.QuoHalfEven(m) }

// FloorMultiplyBy returns a * r rounded down.
// The amount must be of the denominator brand of the ratio, the result is of
// the numerator brand.
// See also [CeilMultiplyBy], [MultiplyBy].
//
// FloorMultiplyBy returns an error if:
//   - the ratio is not valid;
//   - the amount is not of the denominator brand.
func FloorMultiplyBy(a Amount, r Ratio) (Amount, error) {
	b, err := multiplyBy(a, r, quoFloor)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [floor(%v * %v)]: %w", a, r, err)
	}
	return b, nil
}

// CeilMultiplyBy returns a * r rounded up.
// The amount must be of the denominator brand of the ratio, the result is of
// the numerator brand.
// See also [FloorMultiplyBy], [MultiplyBy].
//
// CeilMultiplyBy returns an error if:
//   - the ratio is not valid;
//   - the amount is not of the denominator brand.
func CeilMultiplyBy(a Amount, r Ratio) (Amount, error) {
	b, err := multiplyBy(a, r, quoCeil)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [ceil(%v * %v)]: %w", a, r, err)
	}
	return b, nil
}

// MultiplyBy returns a * r rounded half to even.
// The amount must be of the denominator brand of the ratio, the result is of
// the numerator brand.
// See also [FloorMultiplyBy], [CeilMultiplyBy].
//
// MultiplyBy returns an error if:
//   - the ratio is not valid;
//   - the amount is not of the denominator brand.
func MultiplyBy(a Amount, r Ratio) (Amount, error) {
	b, err := multiplyBy(a, r, quoHalfEven)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [round(%v * %v)]: %w", a, r, err)
	}
	return b, nil
}

func multiplyBy(a Amount, r Ratio, quo quoFunc) (Amount, error) {
	if _, err := a.Coerce(a.Brand()); err != nil {
		return Amount{}, err
	}
	if err := r.Validate(); err != nil {
		return Amount{}, err
	}
	if a.Brand() != r.den.Brand() {
		return Amount{}, fmt.Errorf("amount brand %v must match ratio denominator brand %v: %w", a.Brand(), r.den.Brand(), ErrBrandMismatch)
	}
	v, err := quo(a.Value().Mul(r.num.Value()), r.den.Value())
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(r.num.Brand(), v), nil
}

// FloorDivideBy returns a / r rounded down.
// The amount must be of the numerator brand of the ratio, the result is of
// the denominator brand.
// See also [CeilDivideBy], [DivideBy].
//
// FloorDivideBy returns an error if:
//   - the ratio is not valid;
//   - the amount is not of the numerator brand;
//   - the numerator of the ratio is 0.
func FloorDivideBy(a Amount, r Ratio) (Amount, error) {
	b, err := divideBy(a, r, quoFloor)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [floor(%v / %v)]: %w", a, r, err)
	}
	return b, nil
}

// CeilDivideBy returns a / r rounded up.
// The amount must be of the numerator brand of the ratio, the result is of
// the denominator brand.
// See also [FloorDivideBy], [DivideBy].
//
// CeilDivideBy returns an error if:
//   - the ratio is not valid;
//   - the amount is not of the numerator brand;
//   - the numerator of the ratio is 0.
func CeilDivideBy(a Amount, r Ratio) (Amount, error) {
	b, err := divideBy(a, r, quoCeil)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [ceil(%v / %v)]: %w", a, r, err)
	}
	return b, nil
}

// DivideBy returns a / r rounded half to even.
// The amount must be of the numerator brand of the ratio, the result is of
// the denominator brand.
// See also [FloorDivideBy], [CeilDivideBy].
//
// DivideBy returns an error if:
//   - the ratio is not valid;
//   - the amount is not of the numerator brand;
//   - the numerator of the ratio is 0.
func DivideBy(a Amount, r Ratio) (Amount, error) {
	b, err := divideBy(a, r, quoHalfEven)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [round(%v / %v)]: %w", a, r, err)
	}
	return b, nil
}

func divideBy(a Amount, r Ratio, quo quoFunc) (Amount, error) {
	if _, err := a.Coerce(a.Brand()); err != nil {
		return Amount{}, err
	}
	if err := r.Validate(); err != nil {
		return Amount{}, err
	}
	if a.Brand() != r.num.Brand() {
		return Amount{}, fmt.Errorf("amount brand %v must match ratio numerator brand %v: %w", a.Brand(), r.num.Brand(), ErrBrandMismatch)
	}
	v, err := quo(a.Value().Mul(r.den.Value()), r.num.Value())
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(r.den.Brand(), v), nil
}

// Inv returns the inverse of the ratio.
// Brands travel with their amounts: the inverse of an exchange rate A/B is
// an exchange rate B/A.
//
// Inv returns an error if:
//   - the ratio is not valid;
//   - the numerator is 0.
func (r Ratio) Inv() (Ratio, error) {
	if err := r.Validate(); err != nil {
		return Ratio{}, fmt.Errorf("inverting: %w", err)
	}
	q, err := NewRatio(r.den.Value(), r.den.Brand(), r.num.Value(), r.num.Brand())
	if err != nil {
		return Ratio{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return q, nil
}

// sameBrands returns an error unless ratios have matching numerator brands
// and matching denominator brands.
func sameBrands(r, q Ratio) error {
	if r.num.Brand() != q.num.Brand() {
		return fmt.Errorf("numerator brands %v and %v must match: %w", r.num.Brand(), q.num.Brand(), ErrBrandMismatch)
	}
	if r.den.Brand() != q.den.Brand() {
		return fmt.Errorf("denominator brands %v and %v must match: %w", r.den.Brand(), q.den.Brand(), ErrBrandMismatch)
	}
	return nil
}

func validatePair(r, q Ratio) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return r.Validate()
}

// Add returns the sum of ratios r and q.
// The result is not reduced to lowest terms: its denominator is the product
// of the denominators.
//
// Add returns an error if:
//   - any of the ratios is not valid;
//   - the numerator brands or the denominator brands differ.
func (r Ratio) Add(q Ratio) (Ratio, error) {
	s, err := r.add(q)
	if err != nil {
		return Ratio{}, fmt.Errorf("computing [%v + %v]: %w", r, q, err)
	}
	return s, nil
}

func (r Ratio) add(q Ratio) (Ratio, error) {
	if err := validatePair(r, q); err != nil {
		return Ratio{}, err
	}
	if err := sameBrands(r, q); err != nil {
		return Ratio{}, err
	}
	num := r.num.Value().Mul(q.den.Value()).Add(r.den.Value().Mul(q.num.Value()))
	den := r.den.Value().Mul(q.den.Value())
	return NewRatio(num, r.num.Brand(), den, r.den.Brand())
}

// Sub returns the difference of ratios r and q.
// The result is not reduced to lowest terms: its denominator is the product
// of the denominators.
//
// Sub returns an error if:
//   - any of the ratios is not valid;
//   - the numerator brands or the denominator brands differ;
//   - q is greater than r.
func (r Ratio) Sub(q Ratio) (Ratio, error) {
	s, err := r.sub(q)
	if err != nil {
		return Ratio{}, fmt.Errorf("computing [%v - %v]: %w", r, q, err)
	}
	return s, nil
}

func (r Ratio) sub(q Ratio) (Ratio, error) {
	if err := validatePair(r, q); err != nil {
		return Ratio{}, err
	}
	if err := sameBrands(r, q); err != nil {
		return Ratio{}, err
	}
	num, err := r.num.Value().Mul(q.den.Value()).Sub(r.den.Value().Mul(q.num.Value()))
	if err != nil {
		return Ratio{}, err
	}
	den := r.den.Value().Mul(q.den.Value())
	return NewRatio(num, r.num.Brand(), den, r.den.Brand())
}

// Mul returns the product of ratios r and q.
// At least one brand must cancel out. Brands of the result are chosen in
// the following order, preferring the brands of r:
//
//  1. q is single-branded: brands of r;
//  2. q converts into the denominator brand of r: numerator brand of r over
//     denominator brand of q;
//  3. r converts into the denominator brand of q: numerator brand of q over
//     denominator brand of r;
//  4. r is single-branded: brands of q.
//
// Mul returns an error if:
//   - any of the ratios is not valid;
//   - no brand cancels out.
func (r Ratio) Mul(q Ratio) (Ratio, error) {
	p, err := r.mul(q)
	if err != nil {
		return Ratio{}, fmt.Errorf("computing [%v * %v]: %w", r, q, err)
	}
	return p, nil
}

func (r Ratio) mul(q Ratio) (Ratio, error) {
	if err := validatePair(r, q); err != nil {
		return Ratio{}, err
	}
	var numBrand, denBrand Brand
	switch {
	case q.num.Brand() == q.den.Brand():
		numBrand, denBrand = r.num.Brand(), r.den.Brand()
	case q.num.Brand() == r.den.Brand():
		numBrand, denBrand = r.num.Brand(), q.den.Brand()
	case r.num.Brand() == q.den.Brand():
		numBrand, denBrand = q.num.Brand(), r.den.Brand()
	case r.num.Brand() == r.den.Brand():
		numBrand, denBrand = q.num.Brand(), q.den.Brand()
	default:
		return Ratio{}, ErrNoCancelableBrand
	}
	num := r.num.Value().Mul(q.num.Value())
	den := r.den.Value().Mul(q.den.Value())
	return NewRatio(num, numBrand, den, denBrand)
}

// OneMinus returns 1 - r.
//
// OneMinus returns an error if:
//   - the ratio is not valid;
//   - the ratio is not single-branded;
//   - the ratio is greater than 1.
func (r Ratio) OneMinus() (Ratio, error) {
	if err := r.Validate(); err != nil {
		return Ratio{}, fmt.Errorf("computing [1 - %v]: %w", r, err)
	}
	if !r.IsSingleBrand() {
		return Ratio{}, fmt.Errorf("computing [1 - %v]: only single-brand ratios are supported, but %v does not match %v: %w", r, r.num.Brand(), r.den.Brand(), ErrBrandMismatch)
	}
	num, err := r.den.Value().Sub(r.num.Value())
	if err != nil {
		return Ratio{}, fmt.Errorf("computing [1 - %v]: ratio must be less than or equal to 1: %w", r, ErrRange)
	}
	return NewRatio(num, r.num.Brand(), r.den.Value(), r.num.Brand())
}

// OnePlus returns 1 + r.
//
// OnePlus returns an error if:
//   - the ratio is not valid;
//   - the ratio is not single-branded.
func (r Ratio) OnePlus() (Ratio, error) {
	if err := r.Validate(); err != nil {
		return Ratio{}, fmt.Errorf("computing [1 + %v]: %w", r, err)
	}
	if !r.IsSingleBrand() {
		return Ratio{}, fmt.Errorf("computing [1 + %v]: only single-brand ratios are supported, but %v does not match %v: %w", r, r.num.Brand(), r.den.Brand(), ErrBrandMismatch)
	}
	num := r.den.Value().Add(r.num.Value())
	return NewRatio(num, r.num.Brand(), r.den.Value(), r.num.Brand())
}

// GTE returns true if r >= q, comparing the values by cross-multiplication.
//
// GTE returns an error if:
//   - any of the ratios is not valid;
//   - numerator brands match, but denominator brands do not;
//   - r is single-branded and numerator brands differ, but q is not
//     single-branded.
func (r Ratio) GTE(q Ratio) (bool, error) {
	if err := validatePair(r, q); err != nil {
		return false, fmt.Errorf("comparing [%v] and [%v]: %w", r, q, err)
	}
	switch {
	case r.num.Brand() == q.num.Brand():
		if r.den.Brand() != q.den.Brand() {
			return false, fmt.Errorf("comparing [%v] and [%v]: numerator brands match, but denominator brands %v and %v do not: %w", r, q, r.den.Brand(), q.den.Brand(), ErrBrandMismatch)
		}
	case r.IsSingleBrand():
		if !q.IsSingleBrand() {
			return false, fmt.Errorf("comparing [%v] and [%v]: lefthand brands match, but righthand brands %v and %v do not: %w", r, q, q.num.Brand(), q.den.Brand(), ErrBrandMismatch)
		}
	}
	lhs := r.num.Value().Mul(q.den.Value())
	rhs := q.num.Value().Mul(r.den.Value())
	return lhs.GTE(rhs), nil
}

// Same returns true if ratios have equal numerators and equal denominators,
// including brands.
// Same compares representations, not values: 1/2 and 2/4 are not the same.
// Use [Ratio.GTE] in both directions to compare values.
func (r Ratio) Same(q Ratio) bool {
	return r.num.Equal(q.num) && r.den.Equal(q.den)
}

// Quantize returns a ratio equivalent to r, expressed with the denominator den.
// If den differs from the current denominator, the new numerator is rounded
// half to even.
//
// Quantize returns an error if:
//   - the ratio is not valid;
//   - den is 0.
func (r Ratio) Quantize(den Nat) (Ratio, error) {
	if err := r.Validate(); err != nil {
		return Ratio{}, fmt.Errorf("quantizing: %w", err)
	}
	num := r.num.Value()
	if !den.Equal(r.den.Value()) {
		var err error
		num, err = num.Mul(den).QuoHalfEven(r.den.Value())
		if err != nil {
			return Ratio{}, fmt.Errorf("quantizing %v to %v: %w", r, den, err)
		}
	}
	q, err := NewRatio(num, r.num.Brand(), den, r.den.Brand())
	if err != nil {
		return Ratio{}, fmt.Errorf("quantizing %v to %v: %w", r, den, err)
	}
	return q, nil
}

// Float64 returns the nearest binary floating-point number of the
// numerator and the denominator, divided.
// The result is an estimate for display only and must never be used to
// compute amounts.
func (r Ratio) Float64() float64 {
	n, _ := new(big.Float).SetInt(r.num.Value().big()).Float64()
	d, _ := new(big.Float).SetInt(r.den.Value().big()).Float64()
	return n / d
}

// Decimal returns the value of the ratio as a decimal with the given scale,
// rounded half to even.
// The result is meant for display and must not be fed back into exact
// computations.
//
// Decimal returns an error if:
//   - the ratio is not valid;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the result has more than [decimal.MaxPrec] digits.
func (r Ratio) Decimal(scale int) (decimal.Decimal, error) {
	if err := r.Validate(); err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting to decimal: %w", err)
	}
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: scale must be within [0, %v], got %v", r, decimal.MaxScale, scale)
	}
	q, err := r.Quantize(Pow10(scale))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting to decimal: %w", err)
	}
	d, err := decimal.Parse(shiftPoint(q.num.Value().String(), scale))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", r, err)
	}
	return d, nil
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the ratio, such as "3 IST/4 IST".
// The value is printed in units rather than display units.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio) String() string {
	return r.num.value.String() + " " + r.num.brand.Name() + "/" + r.den.value.String() + " " + r.den.brand.Name()
}
