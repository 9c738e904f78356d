// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/audedit/audio"

// Reverse returns the clip with its frames in reverse order. The channel
// order inside each frame is kept.
func Reverse(b *audio.Buffer) *audio.Buffer {
	ch := b.Channels
	frames := b.Frames()
	out := make([]float32, frames*ch)

	for f := range frames {
		copy(out[(frames-1-f)*ch:(frames-f)*ch], b.Samples[f*ch:(f+1)*ch])
	}

	return b.WithSamples(out)
}
