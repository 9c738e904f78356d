// SPDX-License-Identifier: EPL-2.0

package audio

// Mix returns b with the requested channel count. Downmixing averages the
// channels of each frame; upmixing from mono duplicates the sample. Any other
// layout change goes through mono.
func Mix(b *Buffer, channels int) (*Buffer, error) {
	if channels < 1 || b.Channels < 1 {
		return nil, ErrInvalidChannels
	}
	if channels == b.Channels {
		return b.Clone(), nil
	}

	mono := b
	if b.Channels != 1 {
		mono = downmix(b)
	}
	if channels == 1 {
		return mono, nil
	}

	frames := mono.Frames()
	out := b.WithSamples(make([]float32, frames*channels))
	out.Channels = channels

	for f := range frames {
		v := mono.Samples[f]
		base := f * channels
		for c := range channels {
			out.Samples[base+c] = v
		}
	}

	return out, nil
}

func downmix(b *Buffer) *Buffer {
	channels := b.Channels
	frames := b.Frames()
	out := b.WithSamples(make([]float32, frames))
	out.Channels = 1

	invChannels := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			out.Samples[f] = (b.Samples[idx] + b.Samples[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += b.Samples[base+c]
			}
			out.Samples[f] = sum * invChannels
		}
	}

	return out
}
