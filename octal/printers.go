package octal

import "strings"

// String renders the canonical octal text of n, most significant digit
// first, without a prefix. Zero renders as "0".
func (n Number) String() string {
	b := n.Normalize().digitBuf()

	var sb strings.Builder
	sb.Grow(b.Len())
	for i := b.Len() - 1; i >= 0; i-- {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}
