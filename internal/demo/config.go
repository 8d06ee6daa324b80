package demo

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dither/dsp/dither"
)

// Demo signal defaults.
const (
	DefaultSamples        = 1024
	DefaultAmplitude      = 0.5
	DefaultNoiseAmplitude = 0.125
)

// Format selects how a Result is written.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for an output format other than text or yaml.
	ErrUnknownFormat = errors.New("demo: unknown output format")

	errNoSamples = errors.New("demo: samples must be > 0")
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Config describes one demo run.
type Config struct {
	Seed           uint64
	Samples        int
	Amplitude      float64
	NoiseAmplitude float64
	BitDepth       int
}

// DefaultConfig returns the reference run: 1024 samples of a 0.5 amplitude
// sine period with 0.125 uniform noise, quantized to 24 bits.
func DefaultConfig(seed uint64) Config {
	return Config{
		Seed:           seed,
		Samples:        DefaultSamples,
		Amplitude:      DefaultAmplitude,
		NoiseAmplitude: DefaultNoiseAmplitude,
		BitDepth:       dither.DefaultBitDepth,
	}
}

func (c Config) validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: %d", errNoSamples, c.Samples)
	}

	if c.Amplitude < 0 || c.NoiseAmplitude < 0 {
		return fmt.Errorf("demo: amplitudes must be >= 0: %f, %f", c.Amplitude, c.NoiseAmplitude)
	}

	if c.BitDepth < 1 || c.BitDepth > 32 {
		return fmt.Errorf("demo: bit depth must be in [1, 32]: %d", c.BitDepth)
	}

	return nil
}
