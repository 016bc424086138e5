package digits

import "errors"

const (
	// Base is the radix of every digit in a Buffer.
	Base = 8

	// MaxDigit is the largest digit value a Buffer can hold.
	MaxDigit uint8 = Base - 1

	// BitsPerDigit is the number of binary bits one octal digit carries.
	BitsPerDigit = 3
)

var (
	ErrZeroLength = errors.New("digits: buffer length must be greater than 0")
	ErrDigitRange = errors.New("digits: digit must be between 0 and 7")
)

// Valid reports whether d is an octal digit.
func Valid(d uint8) bool { return d <= MaxDigit }
