package audio

import (
	"errors"
	"io"
	"math"
)

// chunkSource hands out a fixed slice of samples at most step values at a time,
// mimicking decoders that return short reads.
type chunkSource struct {
	sampleRate int
	channels   int
	bitDepth   int
	data       []float32
	step       int
	pos        int
	failAt     int // return errBoom once pos reaches failAt (0 disables)
	closed     bool
}

var errBoom = errors.New("boom")

func (c *chunkSource) SampleRate() int { return c.sampleRate }
func (c *chunkSource) Channels() int   { return c.channels }
func (c *chunkSource) BitDepth() int   { return c.bitDepth }
func (c *chunkSource) BufSize() int    { return 64 }
func (c *chunkSource) Close() error {
	c.closed = true
	return nil
}

func (c *chunkSource) ReadSamples(dst []float32) (int, error) {
	if c.failAt > 0 && c.pos >= c.failAt {
		return 0, errBoom
	}
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}

	n := min(len(dst), c.step, len(c.data)-c.pos)
	copy(dst, c.data[c.pos:c.pos+n])
	c.pos += n
	return n, nil
}

// sineBuffer builds frames of a sine at freq Hz; every channel carries the
// same wave scaled by amp.
func sineBuffer(sampleRate, channels, frames int, freq float64, amp float32) *Buffer {
	b := NewBuffer(sampleRate, channels, 16, frames)
	for f := range frames {
		v := amp * float32(math.Sin(2*math.Pi*freq*float64(f)/float64(sampleRate)))
		for range channels {
			b.Samples = append(b.Samples, v)
		}
	}
	return b
}

// rampBuffer builds a mono buffer whose sample i equals i/frames.
func rampBuffer(sampleRate, frames int) *Buffer {
	b := NewBuffer(sampleRate, 1, 16, frames)
	for f := range frames {
		b.Samples = append(b.Samples, float32(f)/float32(frames))
	}
	return b
}

// bufferSource streams a Buffer through the Source interface.
type bufferSource struct {
	b   *Buffer
	pos int
}

func sourceOf(b *Buffer) Source { return &bufferSource{b: b} }

func (s *bufferSource) SampleRate() int { return s.b.SampleRate }
func (s *bufferSource) Channels() int   { return s.b.Channels }
func (s *bufferSource) BitDepth() int   { return s.b.BitDepth }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.b.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.b.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.b.Samples) {
		return n, io.EOF
	}
	return n, nil
}

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return sourceOf(sineBuffer(44100, 2, 100, 440, 0.5)), nil
}

type mockEncoder struct{}

func (mockEncoder) Encode(w io.WriteSeeker, b *Buffer) error { return nil }
