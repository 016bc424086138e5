package digits

import "fmt"

// Buffer is an owned run of octal digits, least significant first.
//
// The zero Buffer has length 0. Callers that need the "at least one digit"
// guarantee (package octal) establish it themselves.
type Buffer struct {
	d []uint8
}

// Make returns a zero filled buffer of n digits. n must be > 0, it is the
// caller's responsibility to check.
func Make(n int) Buffer {
	return Buffer{d: make([]uint8, n)}
}

// Filled returns a buffer of exactly n digits, each set to fill.
func Filled(n int, fill uint8) (Buffer, error) {
	if n <= 0 {
		return Buffer{}, ErrZeroLength
	}
	if !Valid(fill) {
		return Buffer{}, fmt.Errorf("%w: fill=%d", ErrDigitRange, fill)
	}
	b := Make(n)
	for i := range b.d {
		b.d[i] = fill
	}
	return b, nil
}

// FromLSB copies ds, least significant digit first, into a new buffer.
//
// On error no buffer is returned. An empty ds gives an empty buffer.
func FromLSB(ds []uint8) (Buffer, error) {
	for i, d := range ds {
		if !Valid(d) {
			return Buffer{}, fmt.Errorf("%w: digit[%d]=%d", ErrDigitRange, i, d)
		}
	}
	b := Buffer{d: make([]uint8, len(ds))}
	copy(b.d, ds)
	return b, nil
}

// Len returns the number of stored digits.
func (b Buffer) Len() int { return len(b.d) }

// At returns digit i. Positions at or beyond Len read as 0, which is what the
// carry and borrow loops want for the shorter operand.
func (b Buffer) At(i int) uint8 {
	if i < len(b.d) {
		return b.d[i]
	}
	return 0
}

// Put sets digit i. It panics if d is not an octal digit.
func (b Buffer) Put(i int, d uint8) {
	if !Valid(d) {
		panic(fmt.Sprintf("digits: put digit[%d]=%d out of range", i, d))
	}
	b.d[i] = d
}

// SignificantLen returns the length of b once the most significant zero
// digits are dropped. It never returns less than 1, the canonical zero keeps
// its single 0 digit.
func (b Buffer) SignificantLen() int {
	n := len(b.d)
	for n > 1 && b.d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return 1
	}
	return n
}

// Prefix returns a new buffer holding copies of the low n digits. n must not
// exceed Len.
func (b Buffer) Prefix(n int) Buffer {
	p := Buffer{d: make([]uint8, n)}
	copy(p.d, b.d[:n])
	return p
}

// Clone returns an independent copy of b.
func (b Buffer) Clone() Buffer {
	return b.Prefix(len(b.d))
}

// Digits returns a copy of the stored digits, least significant first.
func (b Buffer) Digits() []uint8 {
	out := make([]uint8, len(b.d))
	copy(out, b.d)
	return out
}
