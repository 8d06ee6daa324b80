//nolint:funcorder
package dither

import "fmt"

// Quantizer converts samples in [-1, +1) to signed integer codes at a fixed
// bit depth. Each sample is scaled by 2^(bitDepth-1), passed through the
// noise shaper and the ditherer, rounded and optionally limited to
// [-2^(bitDepth-1), 2^(bitDepth-1)-1].
//
// A Quantizer carries dither and shaper state between samples, so samples
// must be fed in signal order. Not safe for concurrent use.
type Quantizer struct {
	bitDepth   int
	ditherType DitherType
	rounding   Rounding
	limit      bool
	sampleRate int
	shaper     NoiseShaper
	rng        Source
	ditherer   Ditherer

	// derived from bitDepth
	scale   float64
	limitLo int
	limitHi int
}

// NewQuantizer creates a new Quantizer. The default configuration is:
// 24-bit, triangular dither, round half to even, limiting enabled,
// no noise shaping, randomly seeded source.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	quant := &Quantizer{
		bitDepth:   cfg.bitDepth,
		ditherType: cfg.ditherType,
		rounding:   cfg.rounding,
		limit:      cfg.limit,
		sampleRate: cfg.sampleRate,
		shaper:     cfg.shaper,
		rng:        cfg.rng,
	}

	if quant.shaper == nil {
		quant.shaper = NewFIRShaper(nil)
	}

	if quant.rng == nil {
		quant.rng = randomSource()
	}

	ditherer, err := NewDitherer(quant.ditherType, quant.rng)
	if err != nil {
		return nil, err
	}

	quant.ditherer = ditherer
	quant.updateDerived()

	return quant, nil
}

func (q *Quantizer) updateDerived() {
	q.scale = Scale(q.bitDepth)
	q.limitLo = -int(q.scale)
	q.limitHi = int(q.scale) - 1
}

// ProcessInteger quantizes one input sample to an integer code.
func (q *Quantizer) ProcessInteger(input float64) int {
	scaled := input * q.scale

	shaped := q.shaper.Shape(scaled)

	result := q.rounding.Apply(q.ditherer.ProcessSample(shaped))

	if q.limit {
		result = max(q.limitLo, min(q.limitHi, result))
	}

	q.shaper.RecordError(float64(result) - shaped)

	return result
}

// ProcessSample quantizes the input and returns the reconstructed sample.
func (q *Quantizer) ProcessSample(input float64) float64 {
	return Dequantize(q.ProcessInteger(input), q.scale)
}

// ProcessInPlace quantizes and reconstructs each sample in buf in-place.
func (q *Quantizer) ProcessInPlace(buf []float64) {
	for idx, val := range buf {
		buf[idx] = q.ProcessSample(val)
	}
}

// QuantizeBlock returns the integer codes for signal, processed in order.
func (q *Quantizer) QuantizeBlock(signal []float64) []int {
	codes := make([]int, len(signal))
	for idx, val := range signal {
		codes[idx] = q.ProcessInteger(val)
	}

	return codes
}

// DequantizeBlock maps codes back to samples using this quantizer's scale.
func (q *Quantizer) DequantizeBlock(codes []int) []float64 {
	out := make([]float64, len(codes))
	for idx, code := range codes {
		out[idx] = Dequantize(code, q.scale)
	}

	return out
}

// Reset clears dither carry and noise shaper history.
func (q *Quantizer) Reset() {
	q.ditherer.Reset()
	q.shaper.Reset()
}

// Getters.

// BitDepth returns the current target bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// Scale returns the current quantization scale 2^(bitDepth-1).
func (q *Quantizer) Scale() float64 { return q.scale }

// DitherType returns the current dither noise type.
func (q *Quantizer) DitherType() DitherType { return q.ditherType }

// Rounding returns the current rounding mode.
func (q *Quantizer) Rounding() Rounding { return q.rounding }

// Limit returns whether output limiting is enabled.
func (q *Quantizer) Limit() bool { return q.limit }

// SampleRate returns the sample rate recorded in encoded buffers.
func (q *Quantizer) SampleRate() int { return q.sampleRate }

// Setters.

// SetBitDepth changes the target bit depth (1–32).
func (q *Quantizer) SetBitDepth(bits int) error {
	if err := validateBitDepth(bits); err != nil {
		return err
	}

	q.bitDepth = bits
	q.updateDerived()

	return nil
}

// SetDitherType changes the dither noise. The new ditherer starts with a
// zero carry and shares the quantizer's source.
func (q *Quantizer) SetDitherType(dt DitherType) error {
	ditherer, err := NewDitherer(dt, q.rng)
	if err != nil {
		return err
	}

	q.ditherType = dt
	q.ditherer = ditherer

	return nil
}

// SetRounding changes the rounding mode.
func (q *Quantizer) SetRounding(mode Rounding) error {
	if !mode.Valid() {
		return fmt.Errorf("dither: invalid rounding mode: %d", mode)
	}

	q.rounding = mode

	return nil
}

// SetLimit enables or disables output limiting.
func (q *Quantizer) SetLimit(enabled bool) {
	q.limit = enabled
}
