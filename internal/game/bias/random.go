package bias

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// 53 bits of mantissa
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultRNG is backed by crypto/rand.
func DefaultRNG() RandomSource { return cryptoRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG gives a reproducible source for tests and replays.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// Coefficient ranges of the random combination.
const (
	AmpMin   = 1.0
	AmpMax   = 2.0
	CoefMin  = -1.0
	CoefMax  = 1.0
	ShiftMin = -0.2
	ShiftMax = 0.2
)

// Coefficients of the random combination
// amp * (c1*b1 + c2*b2 + c3*b3) + shift.
type Coefficients struct {
	Amp   float64
	C1    float64
	C2    float64
	C3    float64
	Shift float64
}

// DrawCoefficients draws every coefficient uniformly from its range.
func DrawCoefficients(rng RandomSource) Coefficients {
	return Coefficients{
		Amp:   uniform(rng, AmpMin, AmpMax),
		C1:    uniform(rng, CoefMin, CoefMax),
		C2:    uniform(rng, CoefMin, CoefMax),
		C3:    uniform(rng, CoefMin, CoefMax),
		Shift: uniform(rng, ShiftMin, ShiftMax),
	}
}

// ExpectedValue weights the basis means (-0.5, -0.3, -0.4).
func (c Coefficients) ExpectedValue() float64 {
	return c.Amp*(c.C1*-0.5+c.C2*-0.3+c.C3*-0.4) + c.Shift
}

func uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
