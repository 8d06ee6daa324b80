package dither

import (
	"fmt"
	"math"
)

const (
	// DefaultBitDepth is the bit depth used when no [WithBitDepth] option is given.
	DefaultBitDepth = 24

	defaultDitherType = DitherTriangular
	defaultRounding   = RoundHalfEven
	defaultLimit      = true
	defaultSampleRate = 48000
	minBitDepth       = 1
	maxBitDepth       = 32
)

type config struct {
	bitDepth   int
	ditherType DitherType
	rounding   Rounding
	limit      bool
	sampleRate int
	shaper     NoiseShaper
	rng        Source
}

func defaultConfig() config {
	return config{
		bitDepth:   DefaultBitDepth,
		ditherType: defaultDitherType,
		rounding:   defaultRounding,
		limit:      defaultLimit,
		sampleRate: defaultSampleRate,
	}
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithBitDepth sets the target bit depth (1–32, default 24).
func WithBitDepth(bits int) Option {
	return func(cfg *config) error {
		if err := validateBitDepth(bits); err != nil {
			return err
		}

		cfg.bitDepth = bits

		return nil
	}
}

// WithDitherType sets the dither noise (default [DitherTriangular]).
func WithDitherType(dt DitherType) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("dither: invalid dither type: %d", dt)
		}

		cfg.ditherType = dt

		return nil
	}
}

// WithRounding sets the rounding mode (default [RoundHalfEven]).
func WithRounding(mode Rounding) Option {
	return func(cfg *config) error {
		if !mode.Valid() {
			return fmt.Errorf("dither: invalid rounding mode: %d", mode)
		}

		cfg.rounding = mode

		return nil
	}
}

// WithLimit enables or disables clamping codes to the bit-depth range (default true).
func WithLimit(enabled bool) Option {
	return func(cfg *config) error {
		cfg.limit = enabled
		return nil
	}
}

// WithSampleRate sets the sample rate recorded in encoded buffers (default 48000).
func WithSampleRate(rate int) Option {
	return func(cfg *config) error {
		if rate <= 0 {
			return fmt.Errorf("dither: sample rate must be > 0: %d", rate)
		}

		cfg.sampleRate = rate

		return nil
	}
}

// WithNoiseShaper sets a custom [NoiseShaper]. The default is no shaping.
func WithNoiseShaper(ns NoiseShaper) Option {
	return func(cfg *config) error {
		cfg.shaper = ns
		return nil
	}
}

// WithFIRCoefficients installs an [FIRShaper] with the given error-feedback taps.
func WithFIRCoefficients(coeffs []float64) Option {
	return func(cfg *config) error {
		for i, c := range coeffs {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("dither: FIR coefficient %d must be finite: %f", i, c)
			}
		}

		cfg.shaper = NewFIRShaper(coeffs)

		return nil
	}
}

// WithRNG sets the random source for reproducible output.
func WithRNG(rng Source) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}

func validateBitDepth(bits int) error {
	if bits < minBitDepth || bits > maxBitDepth {
		return fmt.Errorf("dither: bit depth must be in [%d, %d]: %d", minBitDepth, maxBitDepth, bits)
	}
	return nil
}
