package octal

import (
	"errors"

	"github.com/forestrie/go-octal/digits"
)

var (
	ErrInvalidArgument = errors.New("octal: invalid argument")
	ErrUnderflow       = errors.New("octal: result would be negative")
	ErrOverflow        = errors.New("octal: value does not fit in 64 bits")
)

// Number is a non-negative integer of any size, stored as octal digits.
type Number struct {
	buf digits.Buffer
}

// digitBuf returns the stored digits, substituting a single 0 digit for the
// empty buffer of the zero Number.
func (n Number) digitBuf() digits.Buffer {
	if n.buf.Len() == 0 {
		return digits.Make(1)
	}
	return n.buf
}

// Size returns the number of stored digits, including any leading zeros.
func (n Number) Size() int {
	return max(1, n.buf.Len())
}

// Digits returns a copy of the stored digits, least significant first.
func (n Number) Digits() []uint8 {
	return n.digitBuf().Digits()
}

// IsZero reports whether n represents 0, in any number of digits.
func (n Number) IsZero() bool {
	b := n.digitBuf()
	return b.SignificantLen() == 1 && b.At(0) == 0
}
