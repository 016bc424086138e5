package octal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"simple carry", "7", "1", "10"},
		{"seven plus seven", "7", "7", "16"},
		{"carry ripples to a new digit", "777", "1", "1000"},
		{"carry stops part way", "1234", "5", "1241"},
		{"zero plus zero", "0", "0", "0"},
		{"shorter left operand", "1", "777", "1000"},
		{"leading zeros in operands", "0007", "001", "10"},
		{"no carry", "123", "654", "777"},
		{"long carry chain", "77777777777777777777", "1", "100000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			got := a.Add(b)
			assert.Equal(t, tt.want, got.String())
			assert.True(t, got.IsCanonical())

			// operands are not modified
			assert.Equal(t, len(tt.a), a.Size())
			assert.Equal(t, MustParse(tt.a).Digits(), a.Digits())
		})
	}
}

func TestAddResultSize(t *testing.T) {
	got := MustParse("777").Add(MustParse("1"))
	assert.Equal(t, 4, got.Size())

	got = MustParse("123").Add(MustParse("1"))
	assert.Equal(t, 3, got.Size())
}

func TestAccumulate(t *testing.T) {
	n := MustParse("7")
	before := n
	n.Accumulate(MustParse("1"))
	assert.Equal(t, "10", n.String())
	assert.Equal(t, "7", before.String())

	var total Number
	for _, s := range []string{"1", "2", "3", "4"} {
		total.Accumulate(MustParse(s))
	}
	assert.Equal(t, "12", total.String())
}

func TestAddDoesNotShareOperandStorage(t *testing.T) {
	a := MustParse("5")
	sum := a.Add(New())
	require.Equal(t, "5", sum.String())
	sum.buf.Put(0, 1)
	assert.Equal(t, "5", a.String())
}
