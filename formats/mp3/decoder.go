// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audedit/audio"
)

// go-mp3 always produces interleaved stereo, 16-bit little-endian.
const (
	outChannels = 2
	outBitDepth = 16
)

// frameReader is the part of gomp3.Decoder the source uses.
type frameReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	pcm  frameReader
	rate int
	raw  []byte
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return outChannels }
func (s *source) BitDepth() int   { return outBitDepth }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.raw) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.raw) < need {
		s.raw = make([]byte, need)
	}
	s.raw = s.raw[:need]

	n, err := s.pcm.Read(s.raw)
	// Keep whole samples: finish an odd read with one more byte.
	if n%2 == 1 && err == nil {
		var m int
		m, err = io.ReadFull(s.pcm, s.raw[n:n+1])
		n += m
	}
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.raw[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		pcm:  dec,
		rate: dec.SampleRate(),
		raw:  make([]byte, 8192),
	}, nil
}
