package dither

// NoiseShaper applies spectral shaping to quantization error via feedback filtering.
// The typical usage cycle per sample is:
//  1. shaped := shaper.Shape(scaledInput)
//  2. quantized := round(dither(shaped))
//  3. shaper.RecordError(float64(quantized) - shaped)
type NoiseShaper interface {
	// Shape subtracts filtered past quantization errors from input.
	Shape(input float64) float64

	// RecordError stores the quantization error of the current sample.
	RecordError(quantizationError float64)

	// Reset clears the error history.
	Reset()
}
