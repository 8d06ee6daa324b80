package quality

import (
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// MSE returns the mean squared error mean((signal - reconstructed)²).
func MSE(signal, reconstructed []float64) (float64, error) {
	if err := validatePair(signal, reconstructed); err != nil {
		return 0, err
	}

	return noisePower(signal, reconstructed), nil
}

// SNR returns the signal-to-noise ratio in dB using the power convention:
// 10·log10(mean(signal²) / mean((signal - reconstructed)²)).
// Identical signals give +Inf; an all-zero pair gives NaN.
func SNR(signal, reconstructed []float64) (float64, error) {
	if err := validatePair(signal, reconstructed); err != nil {
		return 0, err
	}

	return PowerRatioToDB(meanSquare(signal) / noisePower(signal, reconstructed)), nil
}

// PSNR returns the peak signal-to-noise ratio in dB using the power
// convention: 10·log10(max(signal)² / MSE). The peak is the largest value of
// the original signal, not its largest magnitude and not a full-scale level.
// Identical signals give +Inf.
func PSNR(signal, reconstructed []float64) (float64, error) {
	if err := validatePair(signal, reconstructed); err != nil {
		return 0, err
	}

	peak := slices.Max(signal)

	return PowerRatioToDB(peak * peak / noisePower(signal, reconstructed)), nil
}

// noisePower returns mean((a - b)²) for equal-length, non-empty a and b.
func noisePower(a, b []float64) float64 {
	diff, buf := getScratch(len(a))
	defer putScratch(buf)

	vecmath.ScaleBlock(diff, b, -1)
	vecmath.AddBlockInPlace(diff, a)
	vecmath.MulBlockInPlace(diff, diff)

	return mean(diff)
}

// meanSquare returns mean(x²) for non-empty x.
func meanSquare(x []float64) float64 {
	sq, buf := getScratch(len(x))
	defer putScratch(buf)

	vecmath.MulBlock(sq, x, x)

	return mean(sq)
}

func mean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}

	return sum / float64(len(x))
}
