// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic clips and encoded files for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audedit/audio"
)

// NewBuffer returns a clip of frames frames whose value on each channel is
// produced by waveform.
func NewBuffer(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *audio.Buffer {
	b := audio.NewBuffer(sampleRate, channels, 16, frames)
	for f := range frames {
		for c := range channels {
			b.Samples = append(b.Samples, waveform(f, c))
		}
	}
	return b
}

// Silence generates all zeros.
func Silence(sampleRate, channels, frames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// Sine generates a sine wave of the given frequency and amplitude.
func Sine(sampleRate, channels, frames int, frequency float64, amplitude float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	})
}

// Constant generates a DC signal.
func Constant(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// Ramp generates frame/frames on channel 0 and its negation on any other
// channel, so channel order mistakes show up.
func Ramp(sampleRate, channels, frames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, channel int) float32 {
		v := float32(frame) / float32(frames)
		if channel > 0 {
			return -v
		}
		return v
	})
}

// WAV16 encodes interleaved 16-bit samples as a canonical 44-byte-header WAV.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	byteRate := uint32(sampleRate) * uint32(numChannels) * 2
	blockAlign := numChannels * 2
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// WriteFile stores data under dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// AssertClose fails t when a and b differ in format or any sample differs by
// more than tolerance.
func AssertClose(t testing.TB, got, want *audio.Buffer, tolerance float64) {
	t.Helper()

	if got.SampleRate != want.SampleRate || got.Channels != want.Channels {
		t.Fatalf("format = %d Hz/%d ch, want %d Hz/%d ch",
			got.SampleRate, got.Channels, want.SampleRate, want.Channels)
	}
	if len(got.Samples) != len(want.Samples) {
		t.Fatalf("len = %d samples, want %d", len(got.Samples), len(want.Samples))
	}
	for i := range want.Samples {
		if diff := math.Abs(float64(got.Samples[i] - want.Samples[i])); diff > tolerance {
			t.Fatalf("sample %d = %v, want %v (diff %v > %v)",
				i, got.Samples[i], want.Samples[i], diff, tolerance)
		}
	}
}
