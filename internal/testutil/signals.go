package testutil

import (
	"math"
	"math/rand/v2"
)

// PeriodSine returns n samples of amplitude·sin(x) for x evenly spaced over
// [-π, π], both ends included.
func PeriodSine(amplitude float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = amplitude * math.Sin(-math.Pi)
		return out
	}
	step := 2 * math.Pi / float64(n-1)
	for i := range out {
		out[i] = amplitude * math.Sin(-math.Pi+step*float64(i))
	}
	return out
}

// UniformNoise returns n seeded draws from U[-amplitude, amplitude).
func UniformNoise(seed uint64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
