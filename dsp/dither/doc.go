// Package dither provides dither operators and an integer quantizer for
// reducing floating-point audio to a fixed bit depth.
//
// Dither is noise added before rounding so that the quantization error
// decorrelates from the signal. The package offers three pre-rounding
// operators that all work in units of one quantization step (LSB):
//
//   - [None]: pass-through, plain rounding or truncation
//   - [RectangleDither]: one independent draw from U[-0.5, 0.5) per sample
//   - [Triangle]: the difference of two successive uniform draws, which
//     approximates a triangular PDF while drawing only once per sample
//
// The triangular variant carries one sample of history. That carry is an
// explicit [TriangleState] value threaded through [TriangleStep] and
// [TriangleScan], so the sequential dependency stays visible to callers.
// Randomness always comes from an injected [Source]; a seeded
// *math/rand/v2.Rand satisfies it.
//
// [Quantizer] composes scaling by 2^(bitDepth-1), optional error-feedback
// noise shaping, dither, rounding and limiting. [Vinyl] is a self-contained
// noise-shaped dither with its own output scaling.
package dither
