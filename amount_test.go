package ratio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/govalues/decimal"
)

var (
	ist = MustNewBrand("IST", 6)
	bld = MustNewBrand("BLD", 6)
	atm = MustNewBrand("ATOM", 0)
)

func amt(b Brand, v uint64) Amount {
	return MustNewAmount(b, NewNat(v))
}

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	if !got.IsZero() {
		t.Errorf("Amount{}.IsZero() = false, want true")
	}
	if _, err := got.Coerce(ist); !errors.Is(err, ErrInvalidBrand) {
		t.Errorf("Amount{}.Coerce(%v) = %v, want %v", ist, err, ErrInvalidBrand)
	}
}

func TestNewAmount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := NewAmount(ist, NewNat(5))
		if err != nil {
			t.Fatalf("NewAmount(%v, 5) failed: %v", ist, err)
		}
		if got.Brand() != ist || !got.Value().Equal(NewNat(5)) {
			t.Errorf("NewAmount(%v, 5) = %v", ist, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewAmount(Brand{}, NewNat(5))
		if !errors.Is(err, ErrInvalidBrand) {
			t.Errorf("NewAmount(Brand{}, 5) = %v, want %v", err, ErrInvalidBrand)
		}
	})
}

func TestMustNewAmount(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNewAmount(Brand{}, 0) did not panic")
		}
	}()
	MustNewAmount(Brand{}, Nat{})
}

func TestAmount_Coerce(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := amt(ist, 10)
		got, err := a.Coerce(ist)
		if err != nil {
			t.Fatalf("%v.Coerce(%v) failed: %v", a, ist, err)
		}
		if !got.Equal(a) {
			t.Errorf("%v.Coerce(%v) = %v, want %v", a, ist, got, a)
		}
	})

	t.Run("error", func(t *testing.T) {
		a := amt(ist, 10)
		if _, err := a.Coerce(bld); !errors.Is(err, ErrBrandMismatch) {
			t.Errorf("%v.Coerce(%v) = %v, want %v", a, bld, err, ErrBrandMismatch)
		}
		// Same name, different brand
		other := MustNewBrand("IST", 6)
		if _, err := a.Coerce(other); !errors.Is(err, ErrBrandMismatch) {
			t.Errorf("%v.Coerce(%v) = %v, want %v", a, other, err, ErrBrandMismatch)
		}
		if _, err := a.Coerce(Brand{}); !errors.Is(err, ErrInvalidBrand) {
			t.Errorf("%v.Coerce(Brand{}) = %v, want %v", a, err, ErrInvalidBrand)
		}
	})
}

func TestAmount_Equal(t *testing.T) {
	tests := []struct {
		a, b Amount
		want bool
	}{
		{amt(ist, 1), amt(ist, 1), true},
		{amt(ist, 1), amt(ist, 2), false},
		{amt(ist, 1), amt(bld, 1), false},
		{amt(ist, 0), MustNewAmount(ist, Nat{}), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAmount_Add(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a, b := amt(ist, 2), amt(ist, 3)
		got, err := a.Add(b)
		if err != nil {
			t.Fatalf("%v.Add(%v) failed: %v", a, b, err)
		}
		if want := amt(ist, 5); !got.Equal(want) {
			t.Errorf("%v.Add(%v) = %v, want %v", a, b, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		a, b := amt(ist, 2), amt(bld, 3)
		if _, err := a.Add(b); !errors.Is(err, ErrBrandMismatch) {
			t.Errorf("%v.Add(%v) = %v, want %v", a, b, err, ErrBrandMismatch)
		}
	})
}

func TestAmount_Sub(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a, b := amt(ist, 5), amt(ist, 3)
		got, err := a.Sub(b)
		if err != nil {
			t.Fatalf("%v.Sub(%v) failed: %v", a, b, err)
		}
		if want := amt(ist, 2); !got.Equal(want) {
			t.Errorf("%v.Sub(%v) = %v, want %v", a, b, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b Amount
			want error
		}{
			"underflow": {amt(ist, 2), amt(ist, 3), ErrUnderflow},
			"brand":     {amt(ist, 5), amt(bld, 3), ErrBrandMismatch},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := tt.a.Sub(tt.b); !errors.Is(err, tt.want) {
					t.Errorf("%v.Sub(%v) = %v, want %v", tt.a, tt.b, err, tt.want)
				}
			})
		}
	})
}

func TestAmount_Cmp(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			a, b     uint64
			want     int
			min, max uint64
		}{
			{1, 2, -1, 1, 2},
			{2, 2, 0, 2, 2},
			{3, 2, 1, 2, 3},
		}
		for _, tt := range tests {
			a, b := amt(ist, tt.a), amt(ist, tt.b)
			got, err := a.Cmp(b)
			if err != nil {
				t.Errorf("%v.Cmp(%v) failed: %v", a, b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Cmp(%v) = %v, want %v", a, b, got, tt.want)
			}
			gte, err := a.GTE(b)
			if err != nil || gte != (tt.want >= 0) {
				t.Errorf("%v.GTE(%v) = [%v %v], want [%v <nil>]", a, b, gte, err, tt.want >= 0)
			}
			min, err := a.Min(b)
			if err != nil || !min.Equal(amt(ist, tt.min)) {
				t.Errorf("%v.Min(%v) = [%v %v], want [%v <nil>]", a, b, min, err, tt.min)
			}
			max, err := a.Max(b)
			if err != nil || !max.Equal(amt(ist, tt.max)) {
				t.Errorf("%v.Max(%v) = [%v %v], want [%v <nil>]", a, b, max, err, tt.max)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a, b := amt(ist, 1), amt(bld, 1)
		if _, err := a.Cmp(b); !errors.Is(err, ErrBrandMismatch) {
			t.Errorf("%v.Cmp(%v) = %v, want %v", a, b, err, ErrBrandMismatch)
		}
		if _, err := a.GTE(b); !errors.Is(err, ErrBrandMismatch) {
			t.Errorf("%v.GTE(%v) = %v, want %v", a, b, err, ErrBrandMismatch)
		}
		if _, err := a.Min(b); !errors.Is(err, ErrBrandMismatch) {
			t.Errorf("%v.Min(%v) = %v, want %v", a, b, err, ErrBrandMismatch)
		}
		if _, err := a.Max(b); !errors.Is(err, ErrBrandMismatch) {
			t.Errorf("%v.Max(%v) = %v, want %v", a, b, err, ErrBrandMismatch)
		}
	})
}

func TestAmount_Decimal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			a    Amount
			want string
		}{
			{amt(ist, 1250000), "1.250000"},
			{amt(ist, 5), "0.000005"},
			{amt(ist, 0), "0.000000"},
			{amt(atm, 42), "42"},
		}
		for _, tt := range tests {
			got, err := tt.a.Decimal()
			if err != nil {
				t.Errorf("%v.Decimal() failed: %v", tt.a, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if got != want {
				t.Errorf("%v.Decimal() = %v, want %v", tt.a, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustNewAmount(atm, MustParseNat("100000000000000000000000"))
		if _, err := a.Decimal(); err == nil {
			t.Errorf("%v.Decimal() did not fail", a)
		}
	})
}

func TestAmount_Format(t *testing.T) {
	a := amt(ist, 1250000)
	tests := []struct {
		format, want string
	}{
		{"%v", "IST 1250000"},
		{"%s", "IST 1250000"},
		{"%q", `"IST 1250000"`},
		{"%d", "1250000"},
		{"%f", "1.250000"},
		{"%c", "IST"},
		{"%13v", "  IST 1250000"},
		{"%-13v", "IST 1250000  "},
		{"%x", "%!x(ratio.Amount=IST 1250000)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, a)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, a, got, tt.want)
		}
	}
}
