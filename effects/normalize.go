// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/utils"
)

// DefaultHeadroom is the distance in dB below full scale that Normalize
// leaves the peak at.
const DefaultHeadroom = 0.1

// Normalize scales the clip so its peak sits headroom dB below full scale.
// A silent clip is returned unchanged.
func Normalize(b *audio.Buffer, headroom float64) (*audio.Buffer, error) {
	if headroom < 0 || math.IsNaN(headroom) {
		return nil, ErrNegativeHeadroom
	}

	peak := b.Peak()
	if peak == 0 {
		return b.Clone(), nil
	}

	target := utils.DBToRatio(-headroom)

	return Scale(b, float32(target/float64(peak))), nil
}
