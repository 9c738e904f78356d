// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale returns the magnitude of the most negative signed PCM value for
// bitDepth (128 for 8-bit, 32768 for 16-bit ...). Unknown depths map to 16-bit.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 scales a signed integer PCM sample to [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(float64(v) / FullScale(bitDepth))
}

// FloatToInt converts x to a signed integer PCM sample of bitDepth.
// x is clamped to [-1, 1] and rounded to the nearest step, so a value produced
// by IntToFloat32 converts back to the same integer.
func FloatToInt(x float32, bitDepth int) int {
	fs := FullScale(bitDepth)
	v := math.Round(float64(x) * fs)
	if math.IsNaN(v) {
		return 0
	}
	if v > fs-1 {
		v = fs - 1
	} else if v < -fs {
		v = -fs
	}

	return int(v)
}

// Float32ToInt16 is FloatToInt for 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToInt(x, 16))
}

// DBToRatio converts a gain in decibels to an amplitude ratio.
func DBToRatio(db float64) float64 {
	return math.Pow(10, db/20)
}

// RatioToDB converts an amplitude ratio to decibels. A zero ratio yields -Inf.
func RatioToDB(ratio float64) float64 {
	return 20 * math.Log10(ratio)
}
