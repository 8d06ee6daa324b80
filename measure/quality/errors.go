package quality

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports signals of different lengths.
	ErrLengthMismatch = errors.New("quality: signal lengths differ")
	// ErrEmptySignal reports a zero-length signal.
	ErrEmptySignal = errors.New("quality: signal is empty")
)

func validatePair(signal, reconstructed []float64) error {
	if len(signal) != len(reconstructed) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(signal), len(reconstructed))
	}
	if len(signal) == 0 {
		return ErrEmptySignal
	}
	return nil
}
