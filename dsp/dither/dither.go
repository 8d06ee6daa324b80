package dither

import "fmt"

// DitherType selects the dither noise applied before rounding.
type DitherType int

const (
	// DitherNone applies no dither (plain rounding/truncation).
	DitherNone DitherType = iota
	// DitherRectangular adds one uniform draw from [-0.5, 0.5) LSB per sample.
	DitherRectangular
	// DitherTriangular adds the difference of the current and previous
	// uniform draws, giving an approximately triangular PDF.
	DitherTriangular

	ditherTypeCount // sentinel for validation
)

var ditherTypeNames = [ditherTypeCount]string{
	"None", "Rectangular", "Triangular",
}

// String returns the name of the dither type.
func (dt DitherType) String() string {
	if dt.Valid() {
		return ditherTypeNames[dt]
	}
	return fmt.Sprintf("DitherType(%d)", dt)
}

// Valid reports whether dt is a known dither type.
func (dt DitherType) Valid() bool {
	return dt >= 0 && dt < ditherTypeCount
}

// Ditherer adds dither noise to a sample expressed in quantization steps.
// Implementations may carry state between calls and must then be fed
// samples in signal order.
type Ditherer interface {
	ProcessSample(v float64) float64
	Reset()
}

// NewDitherer returns the operator for dt drawing from rng.
func NewDitherer(dt DitherType, rng Source) (Ditherer, error) {
	if !dt.Valid() {
		return nil, fmt.Errorf("dither: invalid dither type: %d", dt)
	}

	switch dt {
	case DitherRectangular:
		return NewRectangleDither(rng), nil
	case DitherTriangular:
		return NewTriangle(rng), nil
	default:
		return None{}, nil
	}
}

// None is the pass-through ditherer.
type None struct{}

// ProcessSample returns v unchanged.
func (None) ProcessSample(v float64) float64 { return v }

// Reset is a no-op.
func (None) Reset() {}
