// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import "errors"

var (
	// ErrNotFound is returned when the ffmpeg or ffprobe binary cannot be run.
	ErrNotFound = errors.New("ffmpeg not found")

	// ErrNoAudioStream is returned when ffprobe finds no audio stream.
	ErrNoAudioStream = errors.New("no audio stream")
)
