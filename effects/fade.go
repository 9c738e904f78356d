// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/audedit/audio"

// FadeIn ramps the first seconds of the clip up from silence. Frame i of the
// fade gets gain i/n, where n is the fade length in frames clipped to the
// clip length.
func FadeIn(b *audio.Buffer, seconds float64) (*audio.Buffer, error) {
	n, err := fadeFrames(b, seconds)
	if err != nil {
		return nil, err
	}

	out := b.Clone()
	for i := range n {
		applyGain(out, i, float32(i)/float32(n))
	}

	return out, nil
}

// FadeOut ramps the last seconds of the clip down to silence. Frame i of the
// fade gets gain (n-1-i)/n, so the final frame is silent.
func FadeOut(b *audio.Buffer, seconds float64) (*audio.Buffer, error) {
	n, err := fadeFrames(b, seconds)
	if err != nil {
		return nil, err
	}

	out := b.Clone()
	start := out.Frames() - n
	for i := range n {
		applyGain(out, start+i, float32(n-1-i)/float32(n))
	}

	return out, nil
}

func fadeFrames(b *audio.Buffer, seconds float64) (int, error) {
	if seconds < 0 {
		return 0, ErrNegativeDuration
	}

	return min(b.FrameAt(seconds), b.Frames()), nil
}

func applyGain(b *audio.Buffer, frame int, gain float32) {
	base := frame * b.Channels
	for c := range b.Channels {
		b.Samples[base+c] *= gain
	}
}
