// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnsupported is returned by native codecs for valid files they do not
	// handle (bit depths, sample encodings). Callers may retry with another backend.
	ErrUnsupported = errors.New("unsupported audio encoding")

	// ErrInvalidChannels is returned for a channel count below one.
	ErrInvalidChannels = errors.New("channel count must be positive")

	// ErrInvalidSampleRate is returned for a sample rate below one.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
