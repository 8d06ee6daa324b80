package dither

// FIRShaper is an error-feedback noise shaper with FIR coefficients.
// coeffs[0] weights the most recent error.
type FIRShaper struct {
	coeffs  []float64
	history []float64
	head    int // index of the most recent error
}

// NewFIRShaper returns a shaper using a copy of coeffs.
// A nil or empty slice gives a pass-through shaper.
func NewFIRShaper(coeffs []float64) *FIRShaper {
	s := &FIRShaper{coeffs: append([]float64(nil), coeffs...)}
	if len(coeffs) > 0 {
		s.history = make([]float64, len(coeffs))
	}
	return s
}

// Order returns the number of coefficients.
func (s *FIRShaper) Order() int { return len(s.coeffs) }

// Shape subtracts the weighted error history from input.
func (s *FIRShaper) Shape(input float64) float64 {
	order := len(s.coeffs)
	for i, c := range s.coeffs {
		input -= c * s.history[(s.head-i+order)%order]
	}
	return input
}

// RecordError pushes the error of the current sample into the history.
func (s *FIRShaper) RecordError(quantizationError float64) {
	order := len(s.coeffs)
	if order == 0 {
		return
	}
	s.head = (s.head + 1) % order
	s.history[s.head] = quantizationError
}

// Reset clears the error history.
func (s *FIRShaper) Reset() {
	clear(s.history)
	s.head = 0
}
