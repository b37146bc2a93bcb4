package ratio

import (
	"errors"
	"fmt"
	"math/big"
)

//go:generate go run scripts/pow10/codegen.go

var (
	ErrUnderflow    = errors.New("natural underflow")
	ErrDivideByZero = errors.New("division by zero")
	ErrNegative     = errors.New("negative natural")
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// Nat represents a non-negative integer of arbitrary precision.
// Its zero value corresponds to 0.
// Nat is immutable: every operation allocates a new result, so Nat is safe
// for concurrent use by multiple goroutines.
type Nat struct {
	v *big.Int // never mutated after construction, nil means 0
}

// newNatUnsafe wraps i without copying or checking the sign.
// Use it only if i is non-negative and not referenced anywhere else.
func newNatUnsafe(i *big.Int) Nat {
	return Nat{v: i}
}

// NewNat returns a natural number equal to u.
func NewNat(u uint64) Nat {
	return newNatUnsafe(new(big.Int).SetUint64(u))
}

// NewNatFromBigInt returns a natural number equal to i.
// The argument is copied, later changes to i do not affect the result.
//
// NewNatFromBigInt returns an error if i is nil or negative.
func NewNatFromBigInt(i *big.Int) (Nat, error) {
	if i == nil {
		return Nat{}, fmt.Errorf("converting nil %T", i)
	}
	if i.Sign() < 0 {
		return Nat{}, fmt.Errorf("converting %v: %w", i, ErrNegative)
	}
	return newNatUnsafe(new(big.Int).Set(i)), nil
}

// ParseNat converts a string of decimal digits to a natural number.
// Signs, spaces and separators are not accepted.
func ParseNat(s string) (Nat, error) {
	if s == "" {
		return Nat{}, fmt.Errorf("parsing natural: empty string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Nat{}, fmt.Errorf("parsing natural %q: invalid character %q", s, s[i])
		}
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Nat{}, fmt.Errorf("parsing natural %q: invalid syntax", s)
	}
	return newNatUnsafe(i), nil
}

// MustParseNat is like [ParseNat] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding naturals.
func MustParseNat(s string) Nat {
	n, err := ParseNat(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNat(%q) failed: %v", s, err))
	}
	return n
}

func (n Nat) big() *big.Int {
	if n.v == nil {
		return bigZero
	}
	return n.v
}

// BigInt returns a copy of the underlying integer.
func (n Nat) BigInt() *big.Int {
	return new(big.Int).Set(n.big())
}

// Uint64 returns the value of n and true if it fits into uint64.
func (n Nat) Uint64() (u uint64, ok bool) {
	b := n.big()
	if !b.IsUint64() {
		return 0, false
	}
	return b.Uint64(), true
}

// String implements the [fmt.Stringer] interface and returns the decimal
// digits of n.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Nat) String() string {
	return n.big().String()
}

// IsZero returns:
//
//	true  if n == 0
//	false otherwise
func (n Nat) IsZero() bool {
	return n.big().Sign() == 0
}

// IsOne returns:
//
//	true  if n == 1
//	false otherwise
func (n Nat) IsOne() bool {
	return n.big().Cmp(bigOne) == 0
}

// IsEven returns true if n is divisible by 2.
func (n Nat) IsEven() bool {
	return n.big().Bit(0) == 0
}

// Add returns the sum n + m.
func (n Nat) Add(m Nat) Nat {
	return newNatUnsafe(new(big.Int).Add(n.big(), m.big()))
}

// Sub returns the difference n - m.
//
// Sub returns an error if m is greater than n.
func (n Nat) Sub(m Nat) (Nat, error) {
	if n.Cmp(m) < 0 {
		return Nat{}, fmt.Errorf("computing [%v - %v]: %w", n, m, ErrUnderflow)
	}
	return newNatUnsafe(new(big.Int).Sub(n.big(), m.big())), nil
}

// Mul returns the product n * m.
func (n Nat) Mul(m Nat) Nat {
	return newNatUnsafe(new(big.Int).Mul(n.big(), m.big()))
}

// Pow returns n raised to the power of e.
// By convention 0^0 = 1.
func (n Nat) Pow(e Nat) Nat {
	return newNatUnsafe(new(big.Int).Exp(n.big(), e.big(), nil))
}

// QuoFloor returns the quotient n / m [rounded toward zero].
// For naturals this is the floor of the quotient.
// See also methods [Nat.QuoCeil], [Nat.QuoHalfEven].
//
// QuoFloor returns an error if m is 0.
//
// [rounded toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_down
func (n Nat) QuoFloor(m Nat) (Nat, error) {
	q, _, err := n.quoRem(m)
	if err != nil {
		return Nat{}, fmt.Errorf("computing [floor(%v / %v)]: %w", n, m, err)
	}
	return q, nil
}

// QuoCeil returns the quotient n / m [rounded toward positive infinity].
// See also methods [Nat.QuoFloor], [Nat.QuoHalfEven].
//
// QuoCeil returns an error if m is 0.
//
// [rounded toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (n Nat) QuoCeil(m Nat) (Nat, error) {
	q, r, err := n.quoRem(m)
	if err != nil {
		return Nat{}, fmt.Errorf("computing [ceil(%v / %v)]: %w", n, m, err)
	}
	if !r.IsZero() {
		q = q.Add(Nat{v: bigOne})
	}
	return q, nil
}

// QuoHalfEven returns the quotient n / m rounded to the nearest integer
// using [half-to-even] rounding, also known as banker's rounding.
// See also methods [Nat.QuoFloor], [Nat.QuoCeil].
//
// QuoHalfEven returns an error if m is 0.
//
// [half-to-even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (n Nat) QuoHalfEven(m Nat) (Nat, error) {
	q, err := n.quoHalfEven(m)
	if err != nil {
		return Nat{}, fmt.Errorf("computing [round(%v / %v)]: %w", n, m, err)
	}
	return q, nil
}

func (n Nat) quoHalfEven(m Nat) (Nat, error) {
	q, r, err := n.quoRem(m)
	if err != nil {
		return Nat{}, err
	}
	twice := new(big.Int).Mul(r.big(), bigTwo)
	switch twice.Cmp(m.big()) {
	case -1:
		return q, nil
	case 1:
		return q.Add(Nat{v: bigOne}), nil
	}
	// Exactly half
	if q.IsEven() {
		return q, nil
	}
	return q.Add(Nat{v: bigOne}), nil
}

// quoRem returns the floor quotient and the remainder of n / m.
func (n Nat) quoRem(m Nat) (q, r Nat, err error) {
	if m.IsZero() {
		return Nat{}, Nat{}, ErrDivideByZero
	}
	qi, ri := new(big.Int).QuoRem(n.big(), m.big(), new(big.Int))
	return newNatUnsafe(qi), newNatUnsafe(ri), nil
}

// Cmp compares naturals and returns:
//
//	-1 if n < m
//	 0 if n = m
//	+1 if n > m
func (n Nat) Cmp(m Nat) int {
	return n.big().Cmp(m.big())
}

// GTE returns true if n >= m.
func (n Nat) GTE(m Nat) bool {
	return n.Cmp(m) >= 0
}

// Equal returns true if n and m have the same value.
func (n Nat) Equal(m Nat) bool {
	return n.Cmp(m) == 0
}

// Pow10 returns 10^e.
// Small exponents are served from a precomputed table.
func Pow10(e int) Nat {
	if e < 0 {
		panic(fmt.Sprintf("Pow10(%v) failed: negative exponent", e))
	}
	if e < len(pow10Table) {
		return pow10Nats[e]
	}
	return pow10Nats[1].Pow(NewNat(uint64(e)))
}

var pow10Nats = func() []Nat {
	res := make([]Nat, len(pow10Table))
	for i, s := range pow10Table {
		res[i] = MustParseNat(s)
	}
	return res
}()
