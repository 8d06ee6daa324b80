package dither

import "math/rand/v2"

// Source supplies uniformly distributed values in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic PCG-backed Source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// randomSource returns a non-reproducible Source seeded from the runtime.
func randomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Uniform draws one value from U[-0.5, 0.5).
func Uniform(rng Source) float64 {
	return rng.Float64() - 0.5
}
