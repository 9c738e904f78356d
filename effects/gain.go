// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/utils"
)

// Gain returns the clip scaled by db decibels. Samples may leave [-1, 1];
// encoders clip on export.
func Gain(b *audio.Buffer, db float64) *audio.Buffer {
	return Scale(b, float32(utils.DBToRatio(db)))
}

// Scale multiplies every sample by ratio.
func Scale(b *audio.Buffer, ratio float32) *audio.Buffer {
	out := make([]float32, len(b.Samples))
	for i, s := range b.Samples {
		out[i] = s * ratio
	}

	return b.WithSamples(out)
}
