package octal

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/forestrie/go-octal/digits"
)

// New returns the canonical zero.
func New() Number {
	return Number{buf: digits.Make(1)}
}

// NewFilled returns a number of exactly n digits, each set to fill.
//
// The result is not canonical when fill is 0 and n > 1.
func NewFilled(n int, fill uint8) (Number, error) {
	b, err := digits.Filled(n, fill)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return Number{buf: b}, nil
}

// FromDigits returns the number with the given digits, least significant
// first. The digits are stored as given, leading zeros included. No digits
// gives the canonical zero.
func FromDigits(ds ...uint8) (Number, error) {
	if len(ds) == 0 {
		return New(), nil
	}
	b, err := digits.FromLSB(ds)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return Number{buf: b}, nil
}

// Parse reads s as octal text, most significant digit first. Every byte must
// be one of '0' through '7'. The empty string gives the canonical zero.
// Leading zeros are kept, use Normalize to drop them.
func Parse(s string) (Number, error) {
	if s == "" {
		return New(), nil
	}
	b := digits.Make(len(s))
	for i := 0; i < len(s); i++ {
		pos := len(s) - 1 - i
		c := s[pos]
		if c < '0' || c > '7' {
			return Number{}, fmt.Errorf(
				"%w: %s at position %d is not an octal digit", ErrInvalidArgument, describeByte(c), pos)
		}
		b.Put(i, c-'0')
	}
	return Number{buf: b}, nil
}

// describeByte quotes printable ASCII and gives everything else as a raw hex
// byte, a lone byte of a multi-byte sequence is not a character on its own.
func describeByte(c byte) string {
	if c < utf8.RuneSelf && strconv.IsPrint(rune(c)) {
		return strconv.QuoteRune(rune(c))
	}
	return fmt.Sprintf("byte 0x%02x", c)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromUint64 returns the canonical octal form of v.
func FromUint64(v uint64) Number {
	width := digits.WidthUint64(v)
	b := digits.Make(width)
	for i := 0; i < width; i++ {
		b.Put(i, uint8(v&uint64(digits.MaxDigit)))
		v >>= digits.BitsPerDigit
	}
	return Number{buf: b}
}

// Uint64 returns the value of n, or ErrOverflow if it needs more than 64 bits.
func (n Number) Uint64() (uint64, error) {
	b := n.digitBuf()
	size := b.SignificantLen()

	// 22 octal digits hold 66 bits, so the top digit of a full width value
	// may only be 0 or 1.
	if size > digits.MaxWidthUint64 ||
		(size == digits.MaxWidthUint64 && b.At(size-1) > 1) {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, n)
	}
	var v uint64
	for i := size - 1; i >= 0; i-- {
		v = v<<digits.BitsPerDigit | uint64(b.At(i))
	}
	return v, nil
}

// Clone returns a copy of n that shares no storage with it.
func (n Number) Clone() Number {
	return Number{buf: n.digitBuf().Clone()}
}

// Take moves the digits of n into the returned number and leaves n as the
// canonical zero.
func (n *Number) Take() Number {
	moved := Number{buf: n.digitBuf()}
	*n = New()
	return moved
}
