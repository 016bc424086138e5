/*
Package octal provides Number, an arbitrary precision non-negative integer
held as base 8 digits.

Numbers are built from digit lists, fills or text, compared, added,
subtracted and rendered back to text:

	a := octal.MustParse("777")
	b, _ := octal.FromDigits(1) // least significant digit first
	fmt.Println(a.Add(b))
	// Output: 1000

# Representation

Digits are stored least significant first in a digits.Buffer, so digit i
contributes digit * 8^i. A Number always has at least one digit and the zero
value of Number behaves as the canonical zero.

A Number is canonical when its most significant digit is not 0, or when it is
the single digit 0. Constructors store exactly what they are given, so
FromDigits(0, 0, 1, 0) keeps four digits. Normalize, String and every
arithmetic result are canonical.

# Immutability

No operation writes into the digits of an existing Number. Add and Sub
allocate their result. Accumulate and Take are the only methods with pointer
receivers, and they replace the receiver's buffer rather than writing through
it. A plain assignment copies the reference, which is safe for the same
reason.

# Errors

Construction from bad input returns an error matching ErrInvalidArgument.
Subtracting a larger value from a smaller one returns ErrUnderflow. Neither
produces a partial value.
*/
package octal
