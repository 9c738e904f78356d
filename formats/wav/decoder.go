// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio walks chunks with Seek; buffer plain readers.
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("wav: audio format %d: %w", dec.WavAudioFormat, audio.ErrUnsupported)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("wav: %d-bit: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	src := pcm.NewSource(dec, dec.Format(), bitDepth)
	src.Unsigned8 = true

	return src, nil
}
