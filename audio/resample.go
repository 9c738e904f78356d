// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Resample returns b converted to dstRate using cubic interpolation.
// Channel count is preserved. When downsampling, a one-pole low-pass runs
// ahead of the interpolation as a basic anti-aliasing step.
func Resample(b *Buffer, dstRate int) (*Buffer, error) {
	if dstRate < 1 {
		return nil, ErrInvalidSampleRate
	}
	if b.Channels < 1 {
		return nil, ErrInvalidChannels
	}
	if dstRate == b.SampleRate {
		return b.Clone(), nil
	}

	ch := b.Channels
	in := b.Frames()
	ratio := float64(b.SampleRate) / float64(dstRate) // source frames per output frame
	outFrames := int(math.Round(float64(in) / ratio))

	src := b.Samples
	if ratio > 1.0 {
		src = lowPass(b.Samples, ch, 0.5)
	}

	at := func(frame, c int) float32 {
		frame = min(max(frame, 0), in-1)
		return src[frame*ch+c]
	}

	out := b.WithSamples(make([]float32, outFrames*ch))
	out.SampleRate = dstRate

	for i := range outFrames {
		pos := float64(i) * ratio
		f := int(pos)
		x := float32(pos - float64(f))

		for c := range ch {
			out.Samples[i*ch+c] = cubicInterpolate(at(f-1, c), at(f, c), at(f+1, c), at(f+2, c), x)
		}
	}

	return out, nil
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1] per channel, seeded with
// the first frame to avoid a warm-up transient.
func lowPass(samples []float32, channels int, alpha float32) []float32 {
	out := make([]float32, len(samples))
	if len(samples) < channels {
		return out
	}

	state := make([]float32, channels)
	copy(state, samples[:channels])

	for i, s := range samples {
		c := i % channels
		state[c] = alpha*s + (1-alpha)*state[c]
		out[i] = state[c]
	}

	return out
}

// cubicInterpolate is a Catmull-Rom spline through y0..y3, evaluated at
// x in [0,1] between y1 and y2.
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
