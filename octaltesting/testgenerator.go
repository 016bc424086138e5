package octaltesting

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-octal/octal"
)

const (
	defaultMaxDigits = 40
)

type TestGeneratorConfig struct {
	// We seed the RNG with Seed. Fix it so that the generated numbers are the
	// same from run to run, the seed is logged either way.
	Seed int64
	// MaxDigits bounds the significant digits of generated numbers. 0 means
	// defaultMaxDigits.
	MaxDigits int
	// LeadingZeros is the chance, in [0,1], that generated text is padded with
	// up to 3 leading zeros.
	LeadingZeros    float64
	TestLabelPrefix string
}

// TestGenerator produces random octal numbers paired with their math/big
// value, so arithmetic results can be checked against an independent
// implementation.
type TestGenerator struct {
	T   *testing.T
	Log logger.Logger
	cfg TestGeneratorConfig
	rng *rand.Rand
}

func NewTestGenerator(t *testing.T, cfg TestGeneratorConfig) TestGenerator {
	if cfg.MaxDigits <= 0 {
		cfg.MaxDigits = defaultMaxDigits
	}
	logger.New("INFO")
	g := TestGenerator{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	g.Log.Infof("octal test generator: seed=%d maxDigits=%d", cfg.Seed, cfg.MaxDigits)
	return g
}

// Text returns random octal text with between 1 and MaxDigits significant
// digits, possibly padded with leading zeros.
func (g *TestGenerator) Text() string {
	var sb strings.Builder

	if g.rng.Float64() < g.cfg.LeadingZeros {
		for i := g.rng.Intn(3) + 1; i > 0; i-- {
			sb.WriteByte('0')
		}
	}
	n := g.rng.Intn(g.cfg.MaxDigits) + 1
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + g.rng.Intn(8)))
	}
	return sb.String()
}

// Number returns a random Number and its value.
func (g *TestGenerator) Number() (octal.Number, *big.Int) {
	s := g.Text()
	n, err := octal.Parse(s)
	if err != nil {
		g.T.Fatalf("generated text %q did not parse: %v", s, err)
	}
	return n, Oracle(g.T, s)
}

// Uint64 returns a random 64 bit value with a random bit length, so that small
// and large widths both occur.
func (g *TestGenerator) Uint64() uint64 {
	bits := g.rng.Intn(65)
	if bits == 0 {
		return 0
	}
	v := g.rng.Uint64()
	return v >> (64 - bits)
}

// Oracle returns the value of the octal text s, computed with math/big.
func Oracle(t *testing.T, s string) *big.Int {
	v := new(big.Int)
	if s == "" {
		return v
	}
	if _, ok := v.SetString(s, 8); !ok {
		t.Fatalf("oracle: %q is not octal text", s)
	}
	return v
}

// OracleText returns the canonical octal text of v.
func OracleText(v *big.Int) string {
	return v.Text(8)
}
