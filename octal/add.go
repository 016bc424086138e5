package octal

import "github.com/forestrie/go-octal/digits"

// Add returns n + other.
func (n Number) Add(other Number) Number {
	a, b := n.digitBuf(), other.digitBuf()
	m := max(a.Len(), b.Len())

	// One extra digit for the final carry. When there is no carry it stays 0
	// and Normalize drops it.
	sum := digits.Make(m + 1)

	// 7 + 7 + 1 = 15 is the largest intermediate, comfortably inside a uint8.
	var carry uint8
	for i := 0; i < m; i++ {
		s := a.At(i) + b.At(i) + carry
		sum.Put(i, s%digits.Base)
		carry = s / digits.Base
	}
	if carry != 0 {
		sum.Put(m, carry)
	}
	return Number{buf: sum}.Normalize()
}

// Accumulate sets n to n + other.
//
// The sum is built in a new buffer which then replaces the receiver's, so
// copies of n taken before the call keep their value.
func (n *Number) Accumulate(other Number) {
	*n = n.Add(other)
}
