package digits

/*

# Octal digit buffers

This package provides the storage primitive underneath `octal.Number`: an owned,
contiguous run of base 8 digits.

It follows the same style as the other primitive packages in this module:

- small, composable functions
- an explicit layout (index 0 is the least significant digit)
- a burden of knowledge on the caller for hot paths

## Layout

A buffer of length n holding the value 0o3021 looks like this

	index   0   1   2   3
	digit   1   2   0   3

The contributed value of digit i is digit * 8^i.

## Write boundaries

Every digit that enters a buffer is checked to be in [0,7]:

- the checked constructors (Filled, FromLSB) return ErrDigitRange
- Put, used by the arithmetic in package octal, panics instead. A bad digit
  there is a programming error in the same sense as an index out of range.

Buffers are never resized in place. Prefix and Clone always copy, so a
buffer handed out by a constructor can be treated as immutable once the
code that built it has finished writing.

*/
