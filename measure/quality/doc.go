// Package quality measures how far a reconstructed signal has drifted from
// its original.
//
// All metrics are pure functions over float64 slices. Two-signal metrics
// require equal lengths and return [ErrLengthMismatch] otherwise; empty
// input returns [ErrEmptySignal].
//
// Two decibel conventions are in use and are part of each metric's contract:
//
//   - [SNR] and [PSNR] are power ratios: 10·log10
//   - [THDDiff] is an amplitude ratio: 20·log10
//
// Zero noise or zero reference power is a boundary, not an error: the
// metrics return IEEE +Inf, -Inf or NaN exactly as the formulas give.
//
// [PSNR] takes its peak from the largest value of the original signal rather
// than a fixed full-scale level. [THD] is a coarse single-tone estimate: it
// removes only the largest DFT bin and reports the residual-to-signal RMS
// ratio, so spectral leakage from non-integer periods counts as distortion.
package quality
