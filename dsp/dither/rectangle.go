package dither

// RectangleSample returns v plus one draw from U[-0.5, 0.5).
func RectangleSample(v float64, rng Source) float64 {
	return v + Uniform(rng)
}

// Rectangle writes src plus independent uniform dither into dst.
// dst and src may alias. Processing stops at the shorter of the two.
func Rectangle(dst, src []float64, rng Source) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = src[i] + Uniform(rng)
	}
}

// RectangleDither is the rectangular-PDF [Ditherer]. It keeps no history.
type RectangleDither struct {
	rng Source
}

// NewRectangleDither returns a rectangular ditherer drawing from rng.
// A nil rng selects a randomly seeded source.
func NewRectangleDither(rng Source) *RectangleDither {
	if rng == nil {
		rng = randomSource()
	}
	return &RectangleDither{rng: rng}
}

// ProcessSample returns v plus one uniform draw.
func (d *RectangleDither) ProcessSample(v float64) float64 {
	return RectangleSample(v, d.rng)
}

// Reset is a no-op; the rectangular ditherer is stateless.
func (d *RectangleDither) Reset() {}
