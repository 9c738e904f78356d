// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Decoding only; Ogg output
// is produced by the ffmpeg backend.
//
// The decoder keeps the file's channel count and sample rate. Vorbis has no
// integer sample width, so the source reports 16 bits as its export depth.
//
//	f, _ := os.Open("take1.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	clip, err := audio.ReadAll(src)
package vorbis
