// SPDX-License-Identifier: EPL-2.0

// Package pcm bridges go-audio integer buffers and audio.Buffer. The wav and
// aiff codecs share it.
package pcm

import (
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/utils"
)

// Reader is the PCM read side shared by the go-audio wav and aiff decoders.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source adapts a go-audio decoder to audio.Source.
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	// Unsigned8 marks 8-bit data as offset binary (WAV) instead of two's
	// complement (AIFF).
	Unsigned8 bool

	intBuf *goaudio.IntBuffer
}

func NewSource(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.ErrUnexpectedEOF {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		v := s.intBuf.Data[i]
		if s.bitDepth == 8 && s.Unsigned8 {
			v -= 128
		}
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	// Fewer samples than requested and no error means the data chunk ended.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return n, io.EOF
	}

	return n, err
}

// EncodeDepth picks the integer depth an encoder writes for a clip whose
// source had bitDepth. 8-bit is promoted to 16 because its signedness differs
// between containers.
func EncodeDepth(bitDepth int) int {
	switch bitDepth {
	case 16, 24, 32:
		return bitDepth
	default:
		return 16
	}
}

// ToIntBuffer converts b to signed integers of bitDepth, clipping to full scale.
func ToIntBuffer(b *audio.Buffer, bitDepth int) *goaudio.IntBuffer {
	data := make([]int, len(b.Samples))
	for i, s := range b.Samples {
		data[i] = utils.FloatToInt(s, bitDepth)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: b.Channels,
			SampleRate:  b.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}
