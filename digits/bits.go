package digits

import "math/bits"

// BitLength returns the number of bits needed to represent num, 0 for 0.
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// WidthUint64 returns the number of octal digits needed to write num. The
// width of 0 is 1, a single 0 digit.
//
//	ceil(BitLength(num) / 3)
func WidthUint64(num uint64) int {
	if num == 0 {
		return 1
	}
	return (BitLength(num) + BitsPerDigit - 1) / BitsPerDigit
}

// MaxWidthUint64 is the width of the largest uint64, 0o1777777777777777777777.
const MaxWidthUint64 = (64 + BitsPerDigit - 1) / BitsPerDigit
