// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/internal/pcm"
)

// Encoder writes integer PCM WAV files.
type Encoder struct {
	// BitDepth forces the output sample width. Zero keeps the clip's own depth
	// (8-bit clips are written as 16-bit).
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

	enc := gowav.NewEncoder(w, b.SampleRate, depth, b.Channels, formatPCM)
	if err := enc.Write(pcm.ToIntBuffer(b, depth)); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}

	// Close patches the RIFF and data sizes; it leaves w open.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize header: %w", err)
	}

	return nil
}
