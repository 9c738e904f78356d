// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile is returned when the stream is not Ogg Vorbis.
var ErrNotVorbisFile = errors.New("not a valid Ogg Vorbis stream")
