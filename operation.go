// SPDX-License-Identifier: EPL-2.0

package audedit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/effects"
)

// ExportFormat is the output format of every operation except Convert.
const ExportFormat = "wav"

// Operation is one edit applied to a loaded clip.
type Operation interface {
	// Name identifies the operation ("trim", "convert", ...).
	Name() string
	// DefaultOutput is the file written when no output path is given.
	DefaultOutput() string
	// Format is the export format key.
	Format() string
	// Apply returns the edited clip; the input is not modified.
	Apply(b *audio.Buffer) (*audio.Buffer, error)
}

// Trim keeps Start to End seconds. Negative values count from the end.
type Trim struct {
	Start float64
	End   float64
}

// ParseTrim reads a "start,end" pair of seconds.
func ParseTrim(s string) (Trim, error) {
	startStr, endStr, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(endStr, ",") {
		return Trim{}, fmt.Errorf("%w: %q", ErrInvalidTrim, s)
	}

	start, err := parseSeconds(startStr)
	if err != nil {
		return Trim{}, fmt.Errorf("%w: start: %w", ErrInvalidTrim, err)
	}
	end, err := parseSeconds(endStr)
	if err != nil {
		return Trim{}, fmt.Errorf("%w: end: %w", ErrInvalidTrim, err)
	}

	return Trim{Start: start, End: end}, nil
}

func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}

	return v, nil
}

func (Trim) Name() string          { return "trim" }
func (Trim) DefaultOutput() string { return "trimmed.wav" }
func (Trim) Format() string        { return ExportFormat }

func (t Trim) Apply(b *audio.Buffer) (*audio.Buffer, error) {
	return effects.Trim(b, t.Start, t.End), nil
}

// Convert re-encodes the clip in another format, optionally changing its
// sample rate and channel count. Zero keeps the clip's value.
type Convert struct {
	To         string
	SampleRate int
	Channels   int
}

func (Convert) Name() string { return "convert" }

func (c Convert) DefaultOutput() string { return "converted." + strings.TrimPrefix(c.To, ".") }
func (c Convert) Format() string        { return audio.FormatKey(c.To) }

func (c Convert) Apply(b *audio.Buffer) (*audio.Buffer, error) {
	if c.Format() == "" {
		return nil, ErrNoFormat
	}
	if c.SampleRate < 0 {
		return nil, audio.ErrInvalidSampleRate
	}
	if c.Channels < 0 {
		return nil, audio.ErrInvalidChannels
	}

	out := b
	if c.SampleRate > 0 && c.SampleRate != b.SampleRate {
		resampled, err := audio.Resample(out, c.SampleRate)
		if err != nil {
			return nil, err
		}
		out = resampled
	}
	if c.Channels > 0 && c.Channels != out.Channels {
		mixed, err := audio.Mix(out, c.Channels)
		if err != nil {
			return nil, err
		}
		out = mixed
	}

	if out == b {
		return b.Clone(), nil
	}

	return out, nil
}

// Volume changes the level by DB decibels.
type Volume struct {
	DB float64
}

func (Volume) Name() string          { return "volume" }
func (Volume) DefaultOutput() string { return "volume_adjusted.wav" }
func (Volume) Format() string        { return ExportFormat }

func (v Volume) Apply(b *audio.Buffer) (*audio.Buffer, error) {
	if math.IsNaN(v.DB) || math.IsInf(v.DB, 0) {
		return nil, fmt.Errorf("volume %v dB is not a finite number", v.DB)
	}

	return effects.Gain(b, v.DB), nil
}

// Normalize scales the clip so its peak sits Headroom dB below full scale.
type Normalize struct {
	Headroom float64
}

func (Normalize) Name() string          { return "normalize" }
func (Normalize) DefaultOutput() string { return "normalized.wav" }
func (Normalize) Format() string        { return ExportFormat }

func (n Normalize) Apply(b *audio.Buffer) (*audio.Buffer, error) {
	return effects.Normalize(b, n.Headroom)
}

// Reverse plays the clip backwards.
type Reverse struct{}

func (Reverse) Name() string          { return "reverse" }
func (Reverse) DefaultOutput() string { return "reversed.wav" }
func (Reverse) Format() string        { return ExportFormat }

func (Reverse) Apply(b *audio.Buffer) (*audio.Buffer, error) {
	return effects.Reverse(b), nil
}

// FadeIn fades up from silence over Duration seconds.
type FadeIn struct {
	Duration float64
}

func (FadeIn) Name() string          { return "fade_in" }
func (FadeIn) DefaultOutput() string { return "fade_in.wav" }
func (FadeIn) Format() string        { return ExportFormat }

func (f FadeIn) Apply(b *audio.Buffer) (*audio.Buffer, error) {
	return effects.FadeIn(b, f.Duration)
}

// FadeOut fades down to silence over the last Duration seconds.
type FadeOut struct {
	Duration float64
}

func (FadeOut) Name() string          { return "fade_out" }
func (FadeOut) DefaultOutput() string { return "fade_out.wav" }
func (FadeOut) Format() string        { return ExportFormat }

func (f FadeOut) Apply(b *audio.Buffer) (*audio.Buffer, error) {
	return effects.FadeOut(b, f.Duration)
}
