package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dither/internal/demo"
)

const seedEnv = "DITHERDEMO_SEED"

type options struct {
	seed    uint64
	format  string
	withMSE bool
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "ditherdemo",
		Short:         "Compare quantization and dithering strategies on a noisy sine",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(stderr, opts.verbose)

			format, err := demo.ParseFormat(opts.format)
			if err != nil {
				logger.Error("invalid flag", "err", err)
				return err
			}

			seed, source, err := resolveSeed(opts.seed, cmd.Flags().Changed("seed"), lookupEnv)
			if err != nil {
				logger.Error("invalid seed", "err", err)
				return err
			}

			logger.Info("starting demo", "seed", seed, "seed_source", source)

			res, err := demo.Run(cmd.Context(), demo.DefaultConfig(seed), logger)
			if err != nil {
				logger.Error("demo failed", "err", err)
				return err
			}

			return demo.Write(stdout, res, format, opts.withMSE)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed for signal noise and dither (env "+seedEnv+")")
	flags.StringVar(&opts.format, "format", string(demo.FormatText), "output format: text or yaml")
	flags.BoolVar(&opts.withMSE, "mse", false, "include the MSE block in text output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveSeed prefers an explicit flag, then the environment, then a fresh
// random seed. The second result names where the seed came from.
func resolveSeed(flagSeed uint64, flagSet bool, lookupEnv func(string) (string, bool)) (uint64, string, error) {
	if flagSet {
		return flagSeed, "flag", nil
	}

	if raw, ok := lookupEnv(seedEnv); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("ditherdemo: %s=%q: %w", seedEnv, raw, err)
		}

		return seed, "env", nil
	}

	return rand.Uint64(), "random", nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
