package dither

import "errors"

// ErrScaleMismatch reports an integer buffer encoded at a different bit depth
// than the quantizer decoding it.
var ErrScaleMismatch = errors.New("dither: buffer bit depth does not match quantizer")

var (
	errNilBuffer    = errors.New("dither: nil buffer")
	errMultiChannel = errors.New("dither: only mono buffers are supported")
)
