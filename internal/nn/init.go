package nn

import (
	"math/rand"

	"github.com/born-ml/grad/internal/autodiff"
)

// DefaultSeed seeds the random source used when none is injected.
const DefaultSeed = 1337

// NewRand returns a random source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Weight initialization is not security-critical
}

// Uniform returns n leaves drawn from U(-1, 1).
//
// All randomness in this package flows through rng, so a fixed seed yields
// identical parameters.
func Uniform(n int, rng *rand.Rand) []*autodiff.Value {
	out := make([]*autodiff.Value, n)
	for i := range out {
		out[i] = autodiff.New(uniform(rng))
	}
	return out
}

func uniform(rng *rand.Rand) float64 {
	return rng.Float64()*2.0 - 1.0
}

// Zeros returns n leaves holding 0.
func Zeros(n int) []*autodiff.Value {
	out := make([]*autodiff.Value, n)
	for i := range out {
		out[i] = autodiff.New(0)
	}
	return out
}
