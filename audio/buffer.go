// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"
)

// DefaultBitDepth is assumed for buffers whose source did not report one.
const DefaultBitDepth = 16

// Buffer is a fully decoded clip held in memory.
// Samples are interleaved by channel; nominal range is [-1,1] but transforms
// may push values outside it, which encoders clip.
type Buffer struct {
	Samples    []float32
	SampleRate int
	Channels   int
	BitDepth   int
}

// NewBuffer returns an empty buffer with room for frames frames.
func NewBuffer(sampleRate, channels, bitDepth, frames int) *Buffer {
	return &Buffer{
		Samples:    make([]float32, 0, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
	}
}

// Frames is the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Frames()) / float64(b.SampleRate) * float64(time.Second))
}

// Seconds is Duration as a float, the unit the command line speaks in.
func (b *Buffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// FrameAt converts a position in seconds into a frame index, rounding to the
// nearest frame. The result is not clipped to the buffer, but positions too
// large for an int saturate at math.MaxInt / math.MinInt and NaN gives 0.
func (b *Buffer) FrameAt(seconds float64) int {
	f := math.Round(seconds * float64(b.SampleRate))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}

	return int(f)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Samples = append([]float32(nil), b.Samples...)
	return &c
}

// WithSamples returns a buffer of the same format holding samples.
func (b *Buffer) WithSamples(samples []float32) *Buffer {
	return &Buffer{
		Samples:    samples,
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
		BitDepth:   b.BitDepth,
	}
}

// Peak returns the largest absolute sample value.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, s := range b.Samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

func (b *Buffer) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit, %d frames (%.3fs)",
		b.SampleRate, b.Channels, b.BitDepth, b.Frames(), b.Seconds())
}

// ReadAll drains src into a Buffer and closes it.
// A trailing partial frame is dropped.
func ReadAll(src Source) (*Buffer, error) {
	defer src.Close()

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if src.SampleRate() < 1 {
		return nil, ErrInvalidSampleRate
	}

	bitDepth := DefaultBitDepth
	if bd, ok := src.(BitDepther); ok && bd.BitDepth() > 0 {
		bitDepth = bd.BitDepth()
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	out := NewBuffer(src.SampleRate(), channels, bitDepth, 0)
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Samples = append(out.Samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		// A source that returns nothing without EOF would spin forever.
		if n == 0 {
			break
		}
	}

	out.Samples = out.Samples[:out.Frames()*channels]
	return out, nil
}
