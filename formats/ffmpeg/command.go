// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"context"
	"os/exec"
	"strconv"

	"github.com/ik5/audedit/audio"
)

// muxers maps file extensions to ffmpeg muxer names where the two differ.
var muxers = map[string]string{
	"m4a":  "ipod",
	"aac":  "adts",
	"oga":  "ogg",
	"aif":  "aiff",
	"wave": "wav",
	"mka":  "matroska",
}

// Muxer returns the ffmpeg -f value for a format name or extension.
func Muxer(format string) string {
	f := audio.FormatKey(format)
	if m, ok := muxers[f]; ok {
		return m
	}

	return f
}

// filePath makes ffmpeg read name as a local file, even when it starts with
// "-" or holds a protocol-like prefix such as "a:b.wav".
func filePath(name string) string {
	return "file:" + name
}

// ProbeCommand builds an ffprobe invocation that prints
// "sample_rate,channels" of the first audio stream.
func ProbeCommand(ctx context.Context, bin, input string) *exec.Cmd {
	return exec.CommandContext(ctx, bin, //nolint:gosec // G204: input is a local file path
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate,channels",
		"-of", "csv=p=0",
		"-i", filePath(input),
	)
}

// DecodeCommand builds an ffmpeg invocation that writes the input as raw
// interleaved s16le PCM to stdout.
func DecodeCommand(ctx context.Context, bin, input string, sampleRate, channels int) *exec.Cmd {
	return exec.CommandContext(ctx, bin, //nolint:gosec // G204: input is a local file path
		"-v", "error",
		"-i", filePath(input),
		"-vn",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"pipe:1",
	)
}

// EncodeCommand builds an ffmpeg invocation that reads raw s16le PCM on
// stdin and writes it to output using the muxer for format.
func EncodeCommand(ctx context.Context, bin, output, format string, sampleRate, channels int) *exec.Cmd {
	return exec.CommandContext(ctx, bin, //nolint:gosec // G204: output is a local file path
		"-v", "error",
		"-f", "s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"-i", "pipe:0",
		"-f", Muxer(format),
		"-y", filePath(output),
	)
}
