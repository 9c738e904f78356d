// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File is returned when the stream has no decodable MP3 frame.
var ErrNotMP3File = errors.New("not a valid MP3 stream")
