package dither

import (
	"fmt"

	"github.com/go-audio/audio"
)

// EncodeBuffer quantizes signal into a mono [audio.IntBuffer]. SourceBitDepth
// records the bit depth so [Quantizer.DecodeBuffer] can check the scale.
func (q *Quantizer) EncodeBuffer(signal []float64) *audio.IntBuffer {
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  q.sampleRate,
		},
		Data:           q.QuantizeBlock(signal),
		SourceBitDepth: q.bitDepth,
	}
}

// DecodeBuffer reconstructs samples from buf using this quantizer's scale.
// It returns [ErrScaleMismatch] if buf was encoded at another bit depth.
// A zero SourceBitDepth is taken to mean the quantizer's own.
func (q *Quantizer) DecodeBuffer(buf *audio.IntBuffer) ([]float64, error) {
	if buf == nil {
		return nil, errNilBuffer
	}

	if buf.Format != nil && buf.Format.NumChannels > 1 {
		return nil, fmt.Errorf("%w: %d channels", errMultiChannel, buf.Format.NumChannels)
	}

	if buf.SourceBitDepth != 0 && buf.SourceBitDepth != q.bitDepth {
		return nil, fmt.Errorf("%w: buffer %d bits, quantizer %d bits",
			ErrScaleMismatch, buf.SourceBitDepth, q.bitDepth)
	}

	return q.DequantizeBlock(buf.Data), nil
}
