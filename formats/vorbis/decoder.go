// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audedit/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Vorbis decodes to float; 16 bits is the depth used when writing it back as PCM.
const exportBitDepth = 16

// oggReader is the part of oggvorbis.Reader the source uses.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return exportBitDepth }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 * s.channels }

// ReadSamples reads whole frames straight into dst. oggvorbis counts
// interleaved samples, not frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:want])
	if n == 0 && err == nil {
		err = io.EOF
	}

	return n, err
}

// Decoder decodes Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	if dec.Channels() <= 0 {
		return nil, audio.ErrInvalidChannels
	}

	return &source{dec: dec, channels: dec.Channels()}, nil
}
