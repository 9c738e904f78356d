// SPDX-License-Identifier: EPL-2.0

// Package tags carries ID3v2 metadata from a source MP3 onto a re-encoded
// one.
package tags

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// CopyID3 copies every ID3v2 frame of src onto dst and returns the number of
// frames written. Frames dst already has under the same IDs are replaced;
// others, such as the encoder tag ffmpeg adds, are kept. A src without a tag
// leaves dst untouched.
func CopyID3(src, dst string) (int, error) {
	in, err := id3v2.Open(src, id3v2.Options{Parse: true})
	if err != nil {
		return 0, fmt.Errorf("read tags of %s: %w", src, err)
	}
	defer in.Close()

	frames := in.AllFrames()
	if len(frames) == 0 {
		return 0, nil
	}

	out, err := id3v2.Open(dst, id3v2.Options{Parse: true})
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", dst, err)
	}
	defer out.Close()

	copied := 0
	for id, list := range frames {
		out.DeleteFrames(id)
		for _, f := range list {
			out.AddFrame(id, f)
			copied++
		}
	}

	if err := out.Save(); err != nil {
		return 0, fmt.Errorf("write tags to %s: %w", dst, err)
	}

	return copied, nil
}
