package ratio

import (
	"errors"
	"fmt"
)

var ErrInvalidPrecision = errors.New("invalid precision")

// DefaultPrecision is the number of decimal digits kept by [Ratio.PowNewton]
// and [Ratio.PowBinary] when callers have no better choice.
const DefaultPrecision = 8

var natTwo = NewNat(2)

// RootNewton returns an approximation of the n-th root of v computed with
// Newton's method, starting from v and iterating while the estimate
// decreases.
// All divisions round half to even, so the result may exceed the floor root
// by one.
// See also [RootBinary].
//
// RootNewton returns an error if n is 0.
func RootNewton(v, n Nat) (Nat, error) {
	if n.IsZero() {
		return Nat{}, fmt.Errorf("computing [root(%v, %v)]: %w", v, n, ErrDivideByZero)
	}
	if v.IsZero() {
		return Nat{}, nil
	}
	nMinusOne, err := n.Sub(NewNat(1))
	if err != nil {
		return Nat{}, err
	}
	next := func(x Nat) (Nat, error) {
		t, err := v.QuoHalfEven(x.Pow(nMinusOne))
		if err != nil {
			return Nat{}, err
		}
		return nMinusOne.Mul(x).Add(t).QuoHalfEven(n)
	}
	prev := v
	x, err := next(prev)
	if err != nil {
		return Nat{}, fmt.Errorf("computing [root(%v, %v)]: %w", v, n, err)
	}
	for x.Cmp(prev) < 0 {
		prev = x
		x, err = next(prev)
		if err != nil {
			return Nat{}, fmt.Errorf("computing [root(%v, %v)]: %w", v, n, err)
		}
	}
	return prev, nil
}

// RootBinary returns the floor of the n-th root of v, that is the largest
// natural whose n-th power does not exceed v, found by binary search.
// See also [RootNewton].
//
// RootBinary returns an error if n is 0.
func RootBinary(v, n Nat) (Nat, error) {
	if n.IsZero() {
		return Nat{}, fmt.Errorf("computing [root(%v, %v)]: %w", v, n, ErrDivideByZero)
	}
	one := NewNat(1)
	low, high := one, v
	for high.GTE(low) {
		mid, err := low.Add(high).QuoHalfEven(natTwo)
		if err != nil {
			return Nat{}, err
		}
		switch mid.Pow(n).Cmp(v) {
		case 0:
			return mid, nil
		case -1:
			low = mid.Add(one)
		default:
			// mid >= 1 here, since low >= 1
			high, err = mid.Sub(one)
			if err != nil {
				return Nat{}, err
			}
		}
	}
	return low.Sub(one)
}

type rootFunc func(v, n Nat) (Nat, error)

// PowNewton returns r raised to the fractional power e, approximated with
// Newton's method and quantized to a denominator of 10^precision.
// Numerator and denominator are raised to the numerator of e and then reduced
// by the integer root of the denominator of e independently, so the result is
// exact only when both roots are exact.
// See also [Ratio.PowBinary], [DefaultPrecision].
//
// PowNewton returns an error if:
//   - any of the ratios is not valid;
//   - the precision is negative;
//   - the base is not single-branded and shares neither its numerator brand
//     nor its denominator brand with the exponent.
func (r Ratio) PowNewton(e Ratio, precision int) (Ratio, error) {
	p, err := r.pow(e, precision, RootNewton)
	if err != nil {
		return Ratio{}, fmt.Errorf("computing [%v ^ %v]: %w", r, e, err)
	}
	return p, nil
}

// PowBinary is like [Ratio.PowNewton] but extracts floor roots with binary
// search.
// Results of the two methods may differ by one unit in the extracted roots.
func (r Ratio) PowBinary(e Ratio, precision int) (Ratio, error) {
	p, err := r.pow(e, precision, RootBinary)
	if err != nil {
		return Ratio{}, fmt.Errorf("computing [%v ^ %v]: %w", r, e, err)
	}
	return p, nil
}

func (r Ratio) pow(e Ratio, precision int, root rootFunc) (Ratio, error) {
	if err := validatePair(r, e); err != nil {
		return Ratio{}, err
	}
	if precision < 0 {
		return Ratio{}, fmt.Errorf("precision must be a natural, got %v: %w", precision, ErrInvalidPrecision)
	}
	if !r.IsSingleBrand() &&
		r.num.Brand() != e.num.Brand() &&
		r.den.Brand() != e.den.Brand() {
		return Ratio{}, fmt.Errorf("base and exponent ratios must have the same brand: %w", ErrBrandMismatch)
	}

	en, ed := e.num.Value(), e.den.Value()
	num, err := root(r.num.Value().Pow(en), ed)
	if err != nil {
		return Ratio{}, err
	}
	den, err := root(r.den.Value().Pow(en), ed)
	if err != nil {
		return Ratio{}, err
	}
	p, err := NewRatio(num, r.num.Brand(), den, r.den.Brand())
	if err != nil {
		return Ratio{}, err
	}
	return p.Quantize(Pow10(precision))
}
