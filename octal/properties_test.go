package octal_test

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/forestrie/go-octal/octal"
	"github.com/forestrie/go-octal/octaltesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyRounds = 200

func newGenerator(t *testing.T) octaltesting.TestGenerator {
	return octaltesting.NewTestGenerator(t, octaltesting.TestGeneratorConfig{
		Seed:            1698342521,
		LeadingZeros:    0.3,
		TestLabelPrefix: t.Name(),
	})
}

func TestParseRendersCanonicalText(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		s := g.Text()
		n, err := octal.Parse(s)
		require.NoError(t, err)
		require.Equal(t, octaltesting.OracleText(octaltesting.Oracle(t, s)), n.String(), "text %q", s)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		a, _ := g.Number()
		once := a.Normalize()
		twice := once.Normalize()
		require.Equal(t, once.Digits(), twice.Digits())
		require.True(t, once.IsCanonical())
	}
}

func TestAddMatchesOracle(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		a, av := g.Number()
		b, bv := g.Number()
		want := new(big.Int).Add(av, bv)
		require.Equal(t, octaltesting.OracleText(want), a.Add(b).String(), "%s + %s", a, b)
	}
}

func TestAddCommutativeAssociative(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		a, _ := g.Number()
		b, _ := g.Number()
		c, _ := g.Number()
		require.True(t, a.Add(b).Equal(b.Add(a)))
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
	}
}

func TestAddIdentity(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		a, _ := g.Number()
		sum := a.Add(octal.New())
		require.Equal(t, a.Normalize().Digits(), sum.Digits())
	}
}

func TestSubInvertsAdd(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		a, _ := g.Number()
		b, _ := g.Number()
		got, err := a.Add(b).Sub(b)
		require.NoError(t, err)
		require.Equal(t, a.Normalize().Digits(), got.Digits())
	}
}

func TestSubMatchesOracle(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		a, av := g.Number()
		b, bv := g.Number()
		got, err := a.Sub(b)
		if av.Cmp(bv) < 0 {
			require.ErrorIs(t, err, octal.ErrUnderflow)
			continue
		}
		require.NoError(t, err)
		want := new(big.Int).Sub(av, bv)
		require.Equal(t, octaltesting.OracleText(want), got.String(), "%s - %s", a, b)
	}
}

func TestCompareMatchesOracle(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		a, av := g.Number()
		b, bv := g.Number()
		want := av.Cmp(bv)
		require.Equal(t, want, octal.Compare(a, b), "%s vs %s", a, b)
		require.Equal(t, want == 0, a.Equal(b))
		require.Equal(t, want < 0, a.Less(b))
	}
}

func TestUint64RoundTrip(t *testing.T) {
	g := newGenerator(t)
	for i := 0; i < propertyRounds; i++ {
		v := g.Uint64()
		n := octal.FromUint64(v)
		assert.True(t, n.Equal(octal.MustParse(strconv.FormatUint(v, 8))))
		got, err := n.Uint64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
