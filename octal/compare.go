package octal

// Compare returns -1, 0 or +1 as a is less than, equal to, or greater than b.
// Leading zero digits are ignored.
func Compare(a, b Number) int {
	da, db := a.digitBuf(), b.digitBuf()

	// Once leading zeros are discounted the longer number is the larger one.
	na, nb := da.SignificantLen(), db.SignificantLen()
	if na < nb {
		return -1
	}
	if na > nb {
		return 1
	}
	for i := na - 1; i >= 0; i-- {
		x, y := da.At(i), db.At(i)
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}
	return 0
}

// Cmp is Compare(n, other).
func (n Number) Cmp(other Number) int { return Compare(n, other) }

func (n Number) Equal(other Number) bool { return Compare(n, other) == 0 }
func (n Number) Less(other Number) bool  { return Compare(n, other) < 0 }
