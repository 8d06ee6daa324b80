package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireInf fails t unless v is infinite with the given sign (see math.IsInf).
func RequireInf(t *testing.T, v float64, sign int) {
	t.Helper()
	if !math.IsInf(v, sign) {
		t.Fatalf("got %v, want Inf with sign %d", v, sign)
	}
}

// MeanVariance returns the population mean and variance of data.
func MeanVariance(data []float64) (mean, variance float64) {
	if len(data) == 0 {
		return 0, 0
	}
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))
	for _, v := range data {
		d := v - mean
		variance += d * d
	}
	return mean, variance / float64(len(data))
}
