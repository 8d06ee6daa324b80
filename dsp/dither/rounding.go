package dither

import (
	"fmt"
	"math"
)

// Rounding selects how a dithered, scaled sample becomes an integer code.
type Rounding int

const (
	// RoundHalfEven rounds to the nearest integer, ties to even.
	RoundHalfEven Rounding = iota
	// RoundHalfAway rounds to the nearest integer, ties away from zero.
	RoundHalfAway
	// RoundTruncate drops the fractional part (toward zero), like an integer cast.
	RoundTruncate

	roundingCount
)

var roundingNames = [roundingCount]string{"HalfEven", "HalfAway", "Truncate"}

// String returns the name of the rounding mode.
func (r Rounding) String() string {
	if r.Valid() {
		return roundingNames[r]
	}
	return fmt.Sprintf("Rounding(%d)", r)
}

// Valid reports whether r is a known rounding mode.
func (r Rounding) Valid() bool {
	return r >= 0 && r < roundingCount
}

// Apply rounds x according to r.
func (r Rounding) Apply(x float64) int {
	switch r {
	case RoundHalfAway:
		return int(math.Round(x))
	case RoundTruncate:
		return int(math.Trunc(x))
	default:
		return int(math.RoundToEven(x))
	}
}

// Scale returns the quantization scale 2^(bitDepth-1).
func Scale(bitDepth int) float64 {
	return math.Exp2(float64(bitDepth - 1))
}

// Quantize returns the integer code for sample at the given scale.
func Quantize(sample, scale float64, mode Rounding) int {
	return mode.Apply(sample * scale)
}

// Dequantize maps an integer code back to a sample. scale must be the one
// used to encode the code; a mismatch is not detected.
func Dequantize(level int, scale float64) float64 {
	return float64(level) / scale
}
