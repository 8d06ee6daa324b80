package dither

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dither/internal/testutil"
)

func TestVinylDeterministic(t *testing.T) {
	input := testutil.UniformNoise(4, 0.5, 2048)

	a := NewVinyl(NewSource(42))
	b := NewVinyl(NewSource(42))

	for i, x := range input {
		if ya, yb := a.ProcessSample(x), b.ProcessSample(x); ya != yb {
			t.Fatalf("sample %d: %v != %v", i, ya, yb)
		}
	}
}

func TestVinylOutputOnGrid(t *testing.T) {
	v := NewVinyl(NewSource(1))

	if v.Step() != 1.0/32768 {
		t.Fatalf("Step() = %v, want 1/32768", v.Step())
	}

	input := testutil.UniformNoise(8, 0.8, 4096)
	for i, x := range input {
		y := v.ProcessSample(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("sample %d: non-finite output %v", i, y)
		}

		levels := y / v.Step()
		if levels != math.Trunc(levels) {
			t.Fatalf("sample %d: %v is not a multiple of the step", i, y)
		}

		if math.Abs(y-x) > 0.01 {
			t.Fatalf("sample %d: error %v too large for input %v", i, y-x, x)
		}
	}
}

func TestVinylDeRez(t *testing.T) {
	v := NewVinyl(NewSource(1))

	v.SetDeRez(0.5)
	if v.DeRez() != 0.5 {
		t.Fatalf("DeRez() = %v, want 0.5", v.DeRez())
	}

	// 32768 * 0.5^6 = 512.
	if v.Step() != 1.0/512 {
		t.Fatalf("Step() = %v, want 1/512", v.Step())
	}

	// Full reduction clamps the output grid at 8 levels.
	v.SetDeRez(1)
	if v.Step() != 1.0/8 {
		t.Fatalf("Step() = %v, want 1/8", v.Step())
	}
}

func TestVinylReset(t *testing.T) {
	input := testutil.UniformNoise(6, 0.3, 256)

	v := NewVinyl(NewSource(3))
	first := make([]float64, len(input))
	copy(first, input)
	v.ProcessInPlace(first)

	// Reset clears filter state; with a fresh source the run repeats.
	v.Reset()
	v.rng = NewSource(3)

	second := make([]float64, len(input))
	copy(second, input)
	v.ProcessInPlace(second)

	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}

func TestVinylNilSource(t *testing.T) {
	v := NewVinyl(nil)
	if y := v.ProcessSample(0.1); math.Abs(y-0.1) > 0.01 {
		t.Fatalf("ProcessSample(0.1) = %v", y)
	}
}
