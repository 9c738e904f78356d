package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/internal/pcm"
)

// Encoder writes big-endian integer PCM AIFF files.
type Encoder struct {
	// BitDepth forces the output sample width; zero keeps the clip's depth.
	BitDepth int
}

func (e Encoder) Encode(w io.WriteSeeker, b *audio.Buffer) error {
	if b.Channels < 1 {
		return audio.ErrInvalidChannels
	}

	depth := e.BitDepth
	if depth == 0 {
		depth = b.BitDepth
	}
	depth = pcm.EncodeDepth(depth)

	enc := aiff.NewEncoder(w, b.SampleRate, depth, b.Channels)
	if err := enc.Write(pcm.ToIntBuffer(b, depth)); err != nil {
		return fmt.Errorf("aiff: write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff: finalize header: %w", err)
	}

	return nil
}
