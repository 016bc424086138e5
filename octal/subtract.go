package octal

import (
	"fmt"

	"github.com/forestrie/go-octal/digits"
)

// Sub returns n - other. If other is larger than n the result would be
// negative: the zero Number and an error matching ErrUnderflow are returned.
func (n Number) Sub(other Number) (Number, error) {
	if Compare(n, other) < 0 {
		return Number{}, fmt.Errorf(
			"%w: subtracting a %d digit value from a %d digit value",
			ErrUnderflow, other.digitBuf().SignificantLen(), n.digitBuf().SignificantLen())
	}
	a, b := n.digitBuf(), other.digitBuf()

	// Digits of other beyond a.Len() can only be leading zeros, n >= other
	// guarantees it.
	diff := digits.Make(a.Len())
	var borrow uint8
	for i := 0; i < a.Len(); i++ {
		x, y := a.At(i), b.At(i)
		if x < y+borrow {
			diff.Put(i, x+digits.Base-y-borrow)
			borrow = 1
			continue
		}
		diff.Put(i, x-y-borrow)
		borrow = 0
	}
	return Number{buf: diff}.Normalize(), nil
}
