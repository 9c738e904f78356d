// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg runs the external ffmpeg and ffprobe binaries as a codec
// backend for every format the native decoders and encoders do not cover.
//
// Audio crosses the process boundary as raw interleaved s16le PCM: ffprobe
// reports the stream's sample rate and channel count, ffmpeg decodes to
// stdout, and encoding feeds PCM on stdin with an explicit muxer:
//
//	b := ffmpeg.New("", "", logger)
//	clip, err := b.Decode(ctx, "take1.flac")
//	err = b.Encode(ctx, clip, "m4a", "take1.m4a")
//
// A missing binary is reported as ErrNotFound.
package ffmpeg
