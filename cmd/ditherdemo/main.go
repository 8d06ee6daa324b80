// Command ditherdemo quantizes a noisy sine period with several dithering
// strategies and prints SNR, PSNR, MSE and THD-diff for each.
//
// Usage:
//
//	ditherdemo [--seed N] [--format text|yaml] [--mse] [--verbose]
//
// The seed may also come from DITHERDEMO_SEED, read from the environment or
// a .env file in the working directory. Without either, a random seed is
// drawn and logged.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cmd := newRootCmd(os.Stdout, os.Stderr, os.LookupEnv)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
