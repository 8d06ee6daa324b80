package dither

import (
	"errors"
	"testing"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-dither/internal/testutil"
)

func TestEncodeBufferMetadata(t *testing.T) {
	quant, err := NewQuantizer(
		WithBitDepth(8),
		WithDitherType(DitherNone),
		WithSampleRate(44100),
	)
	if err != nil {
		t.Fatal(err)
	}

	buf := quant.EncodeBuffer([]float64{0.0, 0.5, -0.5, 0.25})

	if buf.SourceBitDepth != 8 {
		t.Errorf("SourceBitDepth = %d, want 8", buf.SourceBitDepth)
	}
	if buf.Format == nil || buf.Format.NumChannels != 1 || buf.Format.SampleRate != 44100 {
		t.Errorf("Format = %+v, want mono 44100", buf.Format)
	}
	if buf.NumFrames() != 4 {
		t.Errorf("NumFrames() = %d, want 4", buf.NumFrames())
	}

	want := []int{0, 64, -64, 32}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Fatalf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestDecodeBufferRoundTrip(t *testing.T) {
	quant, err := NewQuantizer(WithBitDepth(8), WithDitherType(DitherNone))
	if err != nil {
		t.Fatal(err)
	}

	signal := []float64{0.0, 0.5, -0.5, 0.25}

	got, err := quant.DecodeBuffer(quant.EncodeBuffer(signal))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, signal, 0)
}

func TestDecodeBufferScaleMismatch(t *testing.T) {
	enc, _ := NewQuantizer(WithBitDepth(16), WithDitherType(DitherNone))
	dec, _ := NewQuantizer(WithBitDepth(24), WithDitherType(DitherNone))

	_, err := dec.DecodeBuffer(enc.EncodeBuffer([]float64{0.5}))
	if !errors.Is(err, ErrScaleMismatch) {
		t.Fatalf("err = %v, want ErrScaleMismatch", err)
	}
}

func TestDecodeBufferUnknownBitDepth(t *testing.T) {
	quant, _ := NewQuantizer(WithBitDepth(8), WithDitherType(DitherNone))

	got, err := quant.DecodeBuffer(&audio.IntBuffer{Data: []int{64, -128}})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, -1}, 0)
}

func TestDecodeBufferRejects(t *testing.T) {
	quant, _ := NewQuantizer(WithBitDepth(8))

	if _, err := quant.DecodeBuffer(nil); err == nil {
		t.Error("expected error for nil buffer")
	}

	stereo := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 48000},
		Data:           []int{1, 2},
		SourceBitDepth: 8,
	}
	if _, err := quant.DecodeBuffer(stereo); err == nil {
		t.Error("expected error for stereo buffer")
	}
}
