// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// There is no encoder: MP3 output goes through the ffmpeg backend.
//
// # Output Format
//
// go-mp3 always produces 16-bit stereo, so the source reports two channels
// and a bit depth of 16 even for mono files. Mono recordings come out with
// identical left and right channels.
//
//	f, _ := os.Open("take1.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File)
//	}
//	clip, err := audio.ReadAll(src)
package mp3
