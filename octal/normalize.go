package octal

// Normalize returns n without its leading zero digits. A canonical n is
// returned as is, without allocating.
func (n Number) Normalize() Number {
	b := n.digitBuf()
	size := b.SignificantLen()
	if size == b.Len() {
		return Number{buf: b}
	}
	return Number{buf: b.Prefix(size)}
}

// IsCanonical reports whether n has no leading zero digits.
func (n Number) IsCanonical() bool {
	b := n.digitBuf()
	return b.SignificantLen() == b.Len()
}
