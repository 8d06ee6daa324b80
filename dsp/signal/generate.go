package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch is returned when signals to be combined differ in length.
var ErrLengthMismatch = errors.New("signal: length mismatch")

// Generator creates deterministic signals from a seed.
//
// Noise draws advance a single random stream, so successive calls on the
// same Generator return different noise. A Generator is not safe for
// concurrent use.
type Generator struct {
	sampleRate float64
	seed       uint64
	seeded     bool
	rng        *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.SetSeed(seed)
	}
}

// WithRand makes the generator draw noise from rng. The same stream can then
// be shared with other consumers, such as a ditherer. The seed of rng is not
// known to the generator, so [Generator.Seed] reports none.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
			g.seed = 0
			g.seeded = false
		}
	}
}

// WithSampleRate sets the sample rate used by [Generator.Sine].
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		g.sampleRate = sampleRate
	}
}

// NewGenerator creates a configured signal generator. The default seed is 1
// and the default sample rate 48 kHz.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 48000}
	g.SetSeed(1)

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Seed returns the seed the noise stream was started from. The second result
// is false when the stream came from [WithRand].
func (g *Generator) Seed() (uint64, bool) {
	return g.seed, g.seeded
}

// SetSeed restarts the noise stream from seed.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
	g.seeded = true
	g.rng = rand.New(rand.NewPCG(seed, 0))
}

// SampleRate returns the configured sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.sampleRate)
	}

	out := make([]float64, samples)

	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// PeriodSine generates amplitude·sin(x) for x evenly spaced over [-π, π]
// with both endpoints included, so the first and last samples coincide.
func (g *Generator) PeriodSine(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("period sine samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	if samples == 1 {
		out[0] = amplitude * math.Sin(-math.Pi)
		return out, nil
	}

	step := 2 * math.Pi / float64(samples-1)
	for i := range out {
		out[i] = amplitude * math.Sin(-math.Pi+step*float64(i))
	}

	return out, nil
}

// WhiteNoise generates white noise uniformly distributed in
// [-amplitude, amplitude).
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = (g.rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// NoisySine returns one sine period of the given amplitude with white noise
// of noiseAmplitude added on top.
func (g *Generator) NoisySine(amplitude, noiseAmplitude float64, samples int) ([]float64, error) {
	sine, err := g.PeriodSine(amplitude, samples)
	if err != nil {
		return nil, err
	}

	noise, err := g.WhiteNoise(noiseAmplitude, samples)
	if err != nil {
		return nil, err
	}

	return Mix(sine, noise)
}

// Mix returns the sample-wise sum of a and b.
func Mix(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	out := make([]float64, len(a))
	copy(out, a)
	vecmath.AddBlockInPlace(out, b)

	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, errors.New("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)

	return out, nil
}
