// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/utils"
)

// Default binary names, resolved through PATH.
const (
	DefaultFFmpeg  = "ffmpeg"
	DefaultFFprobe = "ffprobe"
)

// decodedBitDepth is the PCM width ffmpeg is asked to produce.
const decodedBitDepth = 16

// Backend runs the ffmpeg and ffprobe binaries for formats the native
// codecs do not handle.
type Backend struct {
	FFmpeg  string
	FFprobe string
	Logger  *slog.Logger
}

// New returns a Backend. Empty paths fall back to the defaults and a nil
// logger discards output.
func New(ffmpegPath, ffprobePath string, logger *slog.Logger) *Backend {
	if ffmpegPath == "" {
		ffmpegPath = DefaultFFmpeg
	}
	if ffprobePath == "" {
		ffprobePath = DefaultFFprobe
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Backend{FFmpeg: ffmpegPath, FFprobe: ffprobePath, Logger: logger}
}

// Available reports ErrNotFound if either binary cannot be located.
func (b *Backend) Available() error {
	for _, bin := range []string{b.FFmpeg, b.FFprobe} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
	}

	return nil
}

// Probe returns the sample rate and channel count of the first audio stream.
func (b *Backend) Probe(ctx context.Context, path string) (int, int, error) {
	if _, err := exec.LookPath(b.FFprobe); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	cmd := ProbeCommand(ctx, b.FFprobe, path)
	out, err := b.run(cmd, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	return parseProbe(out)
}

// Decode reads the whole file through ffmpeg into a 16-bit Buffer.
func (b *Backend) Decode(ctx context.Context, path string) (*audio.Buffer, error) {
	if err := b.Available(); err != nil {
		return nil, err
	}

	rate, channels, err := b.Probe(ctx, path)
	if err != nil {
		return nil, err
	}

	cmd := DecodeCommand(ctx, b.FFmpeg, path, rate, channels)
	out, err := b.run(cmd, nil)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg decode %s: %w", path, err)
	}

	buf := audio.NewBuffer(rate, channels, decodedBitDepth, 0)
	buf.Samples = bytesToSamples(out, channels)

	b.Logger.Debug("ffmpeg decoded", slog.String("path", path), slog.String("buffer", buf.String()))

	return buf, nil
}

// Encode writes buf to path in the container named by format.
func (b *Backend) Encode(ctx context.Context, buf *audio.Buffer, format, path string) error {
	if buf.Channels < 1 {
		return audio.ErrInvalidChannels
	}
	if _, err := exec.LookPath(b.FFmpeg); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	cmd := EncodeCommand(ctx, b.FFmpeg, path, format, buf.SampleRate, buf.Channels)
	if _, err := b.run(cmd, samplesToBytes(buf.Samples)); err != nil {
		return fmt.Errorf("ffmpeg encode %s: %w", format, err)
	}

	return nil
}

// run executes cmd and returns its stdout. ffmpeg's stderr becomes part of
// the error.
func (b *Backend) run(cmd *exec.Cmd, stdin []byte) ([]byte, error) {
	b.Logger.Debug("exec", slog.Any("args", cmd.Args))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

func parseProbe(out []byte) (int, int, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < 2 || fields[0] == "" {
		return 0, 0, ErrNoAudioStream
	}

	rate, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("sample rate %q: %w", fields[0], err)
	}
	channels, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("channels %q: %w", fields[1], err)
	}
	if rate < 1 {
		return 0, 0, audio.ErrInvalidSampleRate
	}
	if channels < 1 {
		return 0, 0, audio.ErrInvalidChannels
	}

	return rate, channels, nil
}

// bytesToSamples converts s16le to floats, dropping a trailing partial frame.
func bytesToSamples(raw []byte, channels int) []float32 {
	n := len(raw) / 2
	n -= n % channels

	out := make([]float32, n)
	for i := range out {
		out[i] = utils.IntToFloat32(int(int16(binary.LittleEndian.Uint16(raw[i*2:]))), decodedBitDepth)
	}

	return out
}

func samplesToBytes(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(utils.Float32ToInt16(s)))
	}

	return out
}
