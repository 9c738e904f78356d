// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"slices"

	"github.com/ik5/audedit/audio"
)

// Trim keeps the frames between start and end seconds. Negative positions
// count back from the end of the clip. Both bounds are clipped to the clip,
// and an end at or before start gives an empty clip.
func Trim(b *audio.Buffer, start, end float64) *audio.Buffer {
	frames := b.Frames()
	from := clampFrame(position(b, start), frames)
	to := clampFrame(position(b, end), frames)

	if to <= from {
		return b.WithSamples([]float32{})
	}

	return b.WithSamples(slices.Clone(b.Samples[from*b.Channels : to*b.Channels]))
}

func position(b *audio.Buffer, seconds float64) int {
	if seconds < 0 {
		return b.Frames() + b.FrameAt(seconds)
	}

	return b.FrameAt(seconds)
}

func clampFrame(f, frames int) int {
	return max(0, min(f, frames))
}
