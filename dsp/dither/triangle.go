package dither

// TriangleState is the carry of the triangular ditherer: the uniform draw
// used for the previous sample. The zero value is the initial state.
type TriangleState struct {
	Last float64
}

// TriangleStep computes one triangular-dither output for v using the draw r.
// It returns v + r - st.Last and the state to pass to the next step.
func TriangleStep(v, r float64, st TriangleState) (float64, TriangleState) {
	return v + r - st.Last, TriangleState{Last: r}
}

// TriangleScan dithers src into dst in index order starting from st, drawing
// one value per sample from rng, and returns the carry after the last sample.
// dst and src may alias. Processing stops at the shorter of the two.
//
// Splitting a signal into partitions with independent starting states gives
// different results from one scan over the whole signal.
func TriangleScan(dst, src []float64, rng Source, st TriangleState) TriangleState {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i], st = TriangleStep(src[i], Uniform(rng), st)
	}
	return st
}

// Triangle is the triangular-PDF [Ditherer]. It owns one [TriangleState]
// and must be applied to samples in signal order. Not safe for concurrent use.
type Triangle struct {
	rng   Source
	state TriangleState
}

// NewTriangle returns a triangular ditherer drawing from rng with a zero carry.
// A nil rng selects a randomly seeded source.
func NewTriangle(rng Source) *Triangle {
	if rng == nil {
		rng = randomSource()
	}
	return &Triangle{rng: rng}
}

// ProcessSample dithers v and advances the carry.
func (d *Triangle) ProcessSample(v float64) float64 {
	var out float64
	out, d.state = TriangleStep(v, Uniform(d.rng), d.state)
	return out
}

// ProcessBlock dithers src into dst in order, continuing from the current carry.
func (d *Triangle) ProcessBlock(dst, src []float64) {
	d.state = TriangleScan(dst, src, d.rng, d.state)
}

// State returns the current carry.
func (d *Triangle) State() TriangleState { return d.state }

// SetState replaces the carry.
func (d *Triangle) SetState(st TriangleState) { d.state = st }

// Reset zeroes the carry. Call it before dithering an unrelated signal.
func (d *Triangle) Reset() { d.state = TriangleState{} }
