package quality

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// THD estimates total harmonic distortion of a single-tone signal.
//
// It takes the DFT of signal, zeroes the one bin with the largest magnitude
// (the lowest index on ties), transforms back and returns
// RMS(|residual|) / RMS(signal). The mirror bin of a real tone is left in
// place, and leakage into neighbouring bins counts as distortion.
// An all-zero signal gives NaN.
func THD(signal []float64) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptySignal
	}

	n := len(signal)

	spectrum, err := forwardDFT(signal)
	if err != nil {
		return 0, err
	}

	spectrum[fundamentalBin(spectrum)] = 0

	residual, err := inverseDFT(spectrum)
	if err != nil {
		return 0, err
	}

	var residualPower float64
	for _, c := range residual {
		residualPower += real(c)*real(c) + imag(c)*imag(c)
	}

	residualRMS := math.Sqrt(residualPower / float64(n))
	signalRMS := math.Sqrt(meanSquare(signal))

	return residualRMS / signalRMS, nil
}

// THDDiff returns the distance between the THD estimates of signal and
// reconstructed in dB using the amplitude convention:
// 20·log10(|THD(signal) - THD(reconstructed)|). Equal estimates give -Inf.
func THDDiff(signal, reconstructed []float64) (float64, error) {
	if err := validatePair(signal, reconstructed); err != nil {
		return 0, err
	}

	thdSignal, err := THD(signal)
	if err != nil {
		return 0, err
	}

	thdReconstructed, err := THD(reconstructed)
	if err != nil {
		return 0, err
	}

	return AmplitudeRatioToDB(math.Abs(thdSignal - thdReconstructed)), nil
}

// fundamentalBin returns the index of the largest-magnitude bin.
func fundamentalBin(spectrum []complex128) int {
	n := len(spectrum)
	re, buf := getScratch(3 * n)
	defer putScratch(buf)

	im := re[n : 2*n]
	mag := re[2*n:]
	re = re[:n]

	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(mag, re, im)

	best := 0
	for i, m := range mag {
		if m > mag[best] {
			best = i
		}
	}

	return best
}

// forwardDFT returns the unnormalized n-point DFT of a real signal.
// Only power-of-two lengths go through the FFT backend, which does not
// compute a correct transform for every other length. The rest, and any
// length the backend refuses to plan, use the direct O(n²) transform.
func forwardDFT(signal []float64) ([]complex128, error) {
	n := len(signal)

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, ok := fftPlan(n)
	if !ok {
		return directDFT(in, -1), nil
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("quality: forward FFT failed: %w", err)
	}

	return out, nil
}

// inverseDFT returns the inverse DFT of spectrum, scaled by 1/n.
func inverseDFT(spectrum []complex128) ([]complex128, error) {
	n := len(spectrum)

	plan, ok := fftPlan(n)
	if !ok {
		out := directDFT(spectrum, 1)
		scale := complex(1/float64(n), 0)
		for i := range out {
			out[i] *= scale
		}
		return out, nil
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, spectrum); err != nil {
		return nil, fmt.Errorf("quality: inverse FFT failed: %w", err)
	}

	return out, nil
}

// fftPlan returns an FFT plan for power-of-two n.
func fftPlan(n int) (*algofft.Plan[complex128], bool) {
	if !isPowerOf2(n) {
		return nil, false
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, false
	}

	return plan, true
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// directDFT evaluates the unscaled DFT with exponent sign -1 (forward)
// or +1 (inverse).
func directDFT(in []complex128, sign float64) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	step := sign * 2 * math.Pi / float64(n)

	for k := range out {
		var acc complex128
		for t, x := range in {
			// k*t mod n keeps the twiddle angle small for long inputs.
			angle := step * float64((k*t)%n)
			acc += x * complex(math.Cos(angle), math.Sin(angle))
		}
		out[k] = acc
	}

	return out
}
