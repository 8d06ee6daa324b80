// Package demo runs the dithering comparison: it quantizes one noisy sine
// period with several strategies and reports how much each degrades it.
package demo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-dither/dsp/dither"
	"github.com/cwbudde/algo-dither/dsp/signal"
	"github.com/cwbudde/algo-dither/measure/quality"
)

// Variant names in report order.
const (
	VariantUnrounded = "unrounded"
	VariantRounded   = "rounded"
	VariantRectangle = "rectangle"
	VariantTriangle  = "triangle"
	VariantVinyl     = "vinyl"
)

// VariantReport holds the metrics of one quantization strategy.
type VariantReport struct {
	Name    string  `yaml:"name"`
	SNR     float64 `yaml:"snr"`
	PSNR    float64 `yaml:"psnr"`
	MSE     float64 `yaml:"mse"`
	THDDiff float64 `yaml:"thd_diff"`
}

// Result is the outcome of a demo run.
type Result struct {
	Seed     uint64          `yaml:"seed"`
	BitDepth int             `yaml:"bit_depth"`
	Samples  int             `yaml:"samples"`
	Variants []VariantReport `yaml:"variants"`
}

type variant struct {
	name        string
	reconstruct func(sig []float64) ([]float64, error)
}

// Run generates the test signal, reconstructs it through every variant and
// evaluates each reconstruction against the original. Signal noise and all
// dither draws come from one random stream seeded with cfg.Seed, so a seed
// fully determines the result.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rng := dither.NewSource(cfg.Seed)
	gen := signal.NewGenerator(signal.WithRand(rng))

	sig, err := gen.NoisySine(cfg.Amplitude, cfg.NoiseAmplitude, cfg.Samples)
	if err != nil {
		return Result{}, fmt.Errorf("demo: generate signal: %w", err)
	}

	logger.Debug("signal generated", "samples", len(sig), "seed", cfg.Seed)

	variants := []variant{
		{VariantUnrounded, quantizerVariant(cfg.BitDepth, rng, dither.DitherNone, dither.RoundTruncate)},
		{VariantRounded, quantizerVariant(cfg.BitDepth, rng, dither.DitherNone, dither.RoundHalfEven)},
		{VariantRectangle, quantizerVariant(cfg.BitDepth, rng, dither.DitherRectangular, dither.RoundHalfEven)},
		{VariantTriangle, quantizerVariant(cfg.BitDepth, rng, dither.DitherTriangular, dither.RoundHalfEven)},
		{VariantVinyl, vinylVariant(rng)},
	}

	res := Result{
		Seed:     cfg.Seed,
		BitDepth: cfg.BitDepth,
		Samples:  cfg.Samples,
		Variants: make([]VariantReport, 0, len(variants)),
	}

	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		recon, err := v.reconstruct(sig)
		if err != nil {
			return Result{}, fmt.Errorf("demo: %s: %w", v.name, err)
		}

		rep, err := quality.Evaluate(sig, recon)
		if err != nil {
			return Result{}, fmt.Errorf("demo: %s: %w", v.name, err)
		}

		logger.Info("variant evaluated", "variant", v.name, "snr", rep.SNR, "thd_diff", rep.THDDiff)

		res.Variants = append(res.Variants, VariantReport{
			Name:    v.name,
			SNR:     rep.SNR,
			PSNR:    rep.PSNR,
			MSE:     rep.MSE,
			THDDiff: rep.THDDiff,
		})
	}

	return res, nil
}

// quantizerVariant encodes through an integer buffer at bitDepth and decodes
// it again. Limiting is off: the demo signal stays well inside full scale.
func quantizerVariant(bitDepth int, rng dither.Source, dt dither.DitherType, mode dither.Rounding) func([]float64) ([]float64, error) {
	return func(sig []float64) ([]float64, error) {
		q, err := dither.NewQuantizer(
			dither.WithBitDepth(bitDepth),
			dither.WithDitherType(dt),
			dither.WithRounding(mode),
			dither.WithLimit(false),
			dither.WithRNG(rng),
		)
		if err != nil {
			return nil, err
		}

		return q.DecodeBuffer(q.EncodeBuffer(sig))
	}
}

// vinylVariant runs the noise-shaped vinyl dither, which quantizes on its
// own 16-bit grid regardless of the configured bit depth.
func vinylVariant(rng dither.Source) func([]float64) ([]float64, error) {
	return func(sig []float64) ([]float64, error) {
		out := make([]float64, len(sig))
		copy(out, sig)
		dither.NewVinyl(rng).ProcessInPlace(out)

		return out, nil
	}
}

// Variant returns the report for name.
func (r Result) Variant(name string) (VariantReport, bool) {
	for _, v := range r.Variants {
		if v.Name == name {
			return v, true
		}
	}

	return VariantReport{}, false
}
