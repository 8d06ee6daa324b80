package quality

import (
	"math"
	"math/cmplx"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-dither/internal/testutil"
)

func sineCycles(cycles, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*cycles*float64(i)/float64(n))
	}
	return out
}

func TestTHDPureTone(t *testing.T) {
	// Only one of the two mirror bins is removed, so half the tone's power
	// remains: THD = sqrt(0.25 / 0.5).
	got, err := THD(sineCycles(8, 1, 1024))
	if err != nil {
		t.Fatal(err)
	}

	if want := math.Sqrt(0.5); math.Abs(got-want) > 1e-9 {
		t.Fatalf("THD = %v, want %v", got, want)
	}
}

func TestTHDWithHarmonic(t *testing.T) {
	fundamental := sineCycles(8, 1, 1024)
	harmonic := sineCycles(16, 0.1, 1024)

	signal := make([]float64, len(fundamental))
	for i := range signal {
		signal[i] = fundamental[i] + harmonic[i]
	}

	got, err := THD(signal)
	if err != nil {
		t.Fatal(err)
	}

	// Residual keeps the fundamental mirror (0.25) and both harmonic bins
	// (2 * 0.0025); the signal power is 0.5 + 0.005.
	want := math.Sqrt(0.255 / 0.505)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("THD = %v, want %v", got, want)
	}
}

func TestTHDDeterministic(t *testing.T) {
	signal := testutil.PeriodSine(0.5, 1024)
	noise := testutil.UniformNoise(1, 0.125, 1024)
	for i := range signal {
		signal[i] += noise[i]
	}

	first, err := THD(signal)
	if err != nil {
		t.Fatal(err)
	}

	second, err := THD(signal)
	if err != nil {
		t.Fatal(err)
	}

	if math.Float64bits(first) != math.Float64bits(second) {
		t.Fatalf("THD not bit-identical: %v vs %v", first, second)
	}
}

func TestTHDNonPowerOfTwoLength(t *testing.T) {
	got, err := THD(sineCycles(1, 1, 12))
	if err != nil {
		t.Fatal(err)
	}

	if want := math.Sqrt(0.5); math.Abs(got-want) > 1e-9 {
		t.Fatalf("THD = %v, want %v", got, want)
	}
}

func TestTHDBoundaries(t *testing.T) {
	if _, err := THD(nil); err == nil {
		t.Fatal("expected error for empty signal")
	}

	got, err := THD(make([]float64, 16))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got) {
		t.Fatalf("THD(silence) = %v, want NaN", got)
	}

	// A DC signal lives entirely in bin 0.
	got, err = THD(testutil.DC(0.5, 16))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got) > 1e-12 {
		t.Fatalf("THD(DC) = %v, want 0", got)
	}
}

func TestTHDDiff(t *testing.T) {
	signal := sineCycles(8, 1, 1024)

	got, err := THDDiff(signal, signal)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireInf(t, got, -1)

	distorted := make([]float64, len(signal))
	harmonic := sineCycles(16, 0.1, 1024)
	for i := range signal {
		distorted[i] = signal[i] + harmonic[i]
	}

	thdA, _ := THD(signal)
	thdB, _ := THD(distorted)

	got, err = THDDiff(signal, distorted)
	if err != nil {
		t.Fatal(err)
	}

	if want := 20 * math.Log10(math.Abs(thdA-thdB)); math.Abs(got-want) > 1e-12 {
		t.Fatalf("THDDiff = %v, want %v", got, want)
	}
}

func noisySine(seed uint64, n int) []float64 {
	signal := testutil.PeriodSine(0.5, n)
	noise := testutil.UniformNoise(seed, 0.125, n)
	for i := range signal {
		signal[i] += noise[i]
	}
	return signal
}

// directTHD evaluates THD with the direct transform only.
func directTHD(signal []float64) float64 {
	n := len(signal)

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	spectrum := directDFT(in, -1)

	best := 0
	for k := range spectrum {
		if cmplx.Abs(spectrum[k]) > cmplx.Abs(spectrum[best]) {
			best = k
		}
	}
	spectrum[best] = 0

	var residualPower, signalPower float64
	for i, c := range directDFT(spectrum, 1) {
		c /= complex(float64(n), 0)
		residualPower += real(c)*real(c) + imag(c)*imag(c)
		signalPower += signal[i] * signal[i]
	}

	return math.Sqrt(residualPower/float64(n)) / math.Sqrt(signalPower/float64(n))
}

func TestTHDMatchesDirectTransform(t *testing.T) {
	for _, n := range []int{1, 2, 7, 12, 100, 960, 1000, 1023, 1024, 2000} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			signal := noisySine(uint64(n), n)

			got, err := THD(signal)
			if err != nil {
				t.Fatal(err)
			}

			want := directTHD(signal)
			if math.Abs(got-want) > 1e-9*math.Max(1, want) {
				t.Fatalf("THD = %v, direct transform gives %v", got, want)
			}
		})
	}
}

func TestDFTMatchesDirectTransform(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 100, 1000, 1024} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			signal := testutil.UniformNoise(4, 1, n)

			spectrum, err := forwardDFT(signal)
			if err != nil {
				t.Fatal(err)
			}

			in := make([]complex128, n)
			for i, v := range signal {
				in[i] = complex(v, 0)
			}
			direct := directDFT(in, -1)

			for k := range spectrum {
				if cmplx.Abs(spectrum[k]-direct[k]) > 1e-9*float64(n) {
					t.Fatalf("bin %d: got %v, direct %v", k, spectrum[k], direct[k])
				}
			}

			back, err := inverseDFT(spectrum)
			if err != nil {
				t.Fatal(err)
			}

			for i, c := range back {
				if math.Abs(real(c)-signal[i]) > 1e-9 || math.Abs(imag(c)) > 1e-9 {
					t.Fatalf("sample %d: round trip %v, want %v", i, c, signal[i])
				}
			}
		})
	}
}

func TestIsPowerOf2(t *testing.T) {
	tests := map[int]bool{0: false, 1: true, 2: true, 3: false, 12: false, 1000: false, 1023: false, 1024: true, -4: false}
	for n, want := range tests {
		if got := isPowerOf2(n); got != want {
			t.Errorf("isPowerOf2(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestFundamentalBinFirstOnTies(t *testing.T) {
	spectrum := []complex128{1, 3i, -3, 2}
	if got := fundamentalBin(spectrum); got != 1 {
		t.Fatalf("fundamentalBin = %d, want 1", got)
	}
}
