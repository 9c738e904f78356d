package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("aiff: %d-bit: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcm.NewSource(dec, format, bitDepth), nil
}
