package ratio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

var ErrInvalidBrand = errors.New("invalid brand")

// Brand type represents the identity of one kind of quantity, such as an
// asset issued on a ledger.
// The zero value is not a valid brand.
//
// Brands are compared by identity: a Brand is a handle to a record created
// by [NewBrand], and two handles are equal only if they were copied from the
// same call. Two brands with the same name remain distinct.
// Brand is safe for concurrent use by multiple goroutines.
type Brand struct {
	info *brandInfo
}

type brandInfo struct {
	id     uuid.UUID
	name   string // alleged name, for display only
	places int    // number of decimal places used for display
}

// NewBrand returns a new brand with the given alleged name.
// The decimal places only affect display, see [Amount.Decimal].
//
// NewBrand returns an error if:
//   - the name is empty;
//   - the decimal places are negative or greater than [decimal.MaxScale].
func NewBrand(name string, places int) (Brand, error) {
	if name == "" {
		return Brand{}, fmt.Errorf("creating brand: empty name: %w", ErrInvalidBrand)
	}
	if places < 0 || places > decimal.MaxScale {
		return Brand{}, fmt.Errorf("creating brand %q: decimal places must be within [0, %v], got %v: %w", name, decimal.MaxScale, places, ErrInvalidBrand)
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return Brand{}, fmt.Errorf("creating brand %q: %w", name, err)
	}
	return Brand{info: &brandInfo{id: id, name: name, places: places}}, nil
}

// MustNewBrand is like [NewBrand] but panics if the brand cannot be created.
// It simplifies safe initialization of global variables holding brands.
func MustNewBrand(name string, places int) Brand {
	b, err := NewBrand(name, places)
	if err != nil {
		panic(fmt.Sprintf("NewBrand(%q, %v) failed: %v", name, places, err))
	}
	return b
}

// IsValid returns true if the brand was created by [NewBrand].
func (b Brand) IsValid() bool {
	return b.info != nil
}

// Name returns the alleged name of the brand.
// Names are not unique and must not be used to compare brands.
func (b Brand) Name() string {
	if b.info == nil {
		return "<nil>"
	}
	return b.info.name
}

// ID returns the random identifier assigned to the brand at creation.
// It is meant for logs and diagnostics.
func (b Brand) ID() uuid.UUID {
	if b.info == nil {
		return uuid.Nil
	}
	return b.info.id
}

// DecimalPlaces returns the number of digits after the decimal point used
// when an amount of this brand is displayed.
func (b Brand) DecimalPlaces() int {
	if b.info == nil {
		return 0
	}
	return b.info.places
}

// String method implements the [fmt.Stringer] interface and returns
// the alleged name of the brand.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (b Brand) String() string {
	return b.Name()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                              | Description  |
//	| ------ | ------------------------------------ | ------------ |
//	| %s, %v | IST                                  | Alleged name |
//	| %q     | "IST"                                | Quoted name  |
//	| %x     | 6ba7b810-9dad-11d1-80b4-00c04fd430c8 | Identifier   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (b Brand) Format(state fmt.State, verb rune) {
	text := b.Name()
	if verb == 'x' || verb == 'X' {
		text = b.ID().String()
	}
	textlen := len(text)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + textlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for range tquote {
		buf[pos] = '"'
		pos--
	}

	// Name
	for i := range textlen {
		buf[pos] = text[textlen-i-1]
		pos--
	}

	// Opening quote
	for range lquote {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'x', 'X':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(ratio.Brand="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
