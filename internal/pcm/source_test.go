// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audedit/audio"
)

// sliceReader serves ints from data in PCMBuffer-sized chunks.
type sliceReader struct {
	data []int
	pos  int
	err  error
}

func (r *sliceReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n := copy(buf.Data, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func TestSource_ReadAll16(t *testing.T) {
	t.Parallel()

	dec := &sliceReader{data: []int{0, 16384, -16384, 32767, -32768}}
	src := NewSource(dec, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, 16)

	got, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1}
	if len(got.Samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got.Samples), len(want))
	}
	for i := range want {
		if got.Samples[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got.Samples[i], want[i])
		}
	}
	if got.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", got.BitDepth)
	}
}

func TestSource_Unsigned8(t *testing.T) {
	t.Parallel()

	dec := &sliceReader{data: []int{128, 192, 64, 0}}
	src := NewSource(dec, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, 8)
	src.Unsigned8 = true

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 4 || err != io.EOF {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, EOF)", n, err)
	}

	want := []float32{0, 0.5, -0.5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(&sliceReader{err: boom}, &goaudio.Format{NumChannels: 2, SampleRate: 8000}, 16)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want boom", err)
	}
}

func TestEncodeDepth(t *testing.T) {
	t.Parallel()

	tests := map[int]int{0: 16, 8: 16, 12: 16, 16: 16, 24: 24, 32: 32, 64: 16}
	for in, want := range tests {
		if got := EncodeDepth(in); got != want {
			t.Errorf("EncodeDepth(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestToIntBuffer(t *testing.T) {
	t.Parallel()

	b := &audio.Buffer{Samples: []float32{0, 0.5, -1, 2}, SampleRate: 22050, Channels: 2}

	ib := ToIntBuffer(b, 24)
	want := []int{0, 4194304, -8388608, 8388607}

	for i := range want {
		if ib.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, ib.Data[i], want[i])
		}
	}
	if ib.Format.NumChannels != 2 || ib.Format.SampleRate != 22050 || ib.SourceBitDepth != 24 {
		t.Errorf("format = %+v depth %d", ib.Format, ib.SourceBitDepth)
	}
}
