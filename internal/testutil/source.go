package testutil

// SequenceSource replays a fixed list of values from Float64, wrapping
// around at the end. It stands in for a random source when a test needs
// exact control over the draws.
type SequenceSource struct {
	values []float64
	pos    int
	calls  int
}

// NewSequenceSource returns a source yielding values in order.
// It panics if values is empty.
func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		panic("testutil: SequenceSource needs at least one value")
	}
	return &SequenceSource{values: append([]float64(nil), values...)}
}

// Float64 returns the next value.
func (s *SequenceSource) Float64() float64 {
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	s.calls++
	return v
}

// Calls returns how many values have been drawn.
func (s *SequenceSource) Calls() int { return s.calls }
