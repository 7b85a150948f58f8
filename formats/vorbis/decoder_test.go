// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not an Ogg stream at all")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

// newBufferedSource builds a source with PCM already buffered, so
// ReadSamples's deinterleaving can be exercised without a real Ogg
// stream or a live gorbis.Decoder.
func newBufferedSource(sampleRate, channels int, frames [][]float32) *source {
	return &source{
		sampleRate: sampleRate,
		channels:   channels,
		pending:    frames,
		eof:        true, // no ogg/gorbis behind it, so fill() must not block
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newBufferedSource(44100, 2, [][]float32{{0}, {0}})

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
}

func TestSource_ReadSamples_Stereo(t *testing.T) {
	t.Parallel()

	// L, R per frame: (0.1,0.9) (0.2,0.8) (0.3,0.7)
	src := newBufferedSource(44100, 2, [][]float32{
		{0.1, 0.2, 0.3},
		{0.9, 0.8, 0.7},
	})

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}

	want := []float32{0.1, 0.9, 0.2, 0.8, 0.3, 0.7}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_Mono(t *testing.T) {
	t.Parallel()

	src := newBufferedSource(16000, 1, [][]float32{{0.1, 0.2, 0.3, 0.4, 0.5}})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	src := newBufferedSource(8000, 2, [][]float32{
		{0.1, 0.3, 0.5},
		{0.2, 0.4, 0.6},
	})

	dst := make([]float32, 4) // 2 frames
	n1, err1 := src.ReadSamples(dst)
	if err1 != nil && err1 != io.EOF {
		t.Fatalf("First ReadSamples() error = %v", err1)
	}
	if n1 != 4 {
		t.Errorf("First ReadSamples() n = %d, want 4", n1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}
	if n2 != 2 {
		t.Errorf("Second ReadSamples() n = %d, want 2", n2)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newBufferedSource(8000, 1, [][]float32{{0.1}})

	n, err := src.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOFAfterDrain(t *testing.T) {
	t.Parallel()

	src := newBufferedSource(8000, 2, [][]float32{{0.1, 0.2}, {0.3, 0.4}})

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}
	_ = err

	n2, err2 := src.ReadSamples(dst)
	if n2 != 0 || err2 != io.EOF {
		t.Errorf("second drain = (%d, %v), want (0, io.EOF)", n2, err2)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := newBufferedSource(44100, 2, [][]float32{{0}, {0}})
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestFramesOf(t *testing.T) {
	t.Parallel()

	if got := framesOf(nil); got != nil {
		t.Errorf("framesOf(nil) = %v, want nil", got)
	}
	pcm := [][]float32{{1, 2, 3}, {4, 5, 6}}
	if got := framesOf(pcm); len(got) != 3 {
		t.Errorf("framesOf(pcm) length = %d, want 3", len(got))
	}
}
