// SPDX-License-Identifier: EPL-2.0

package audedit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/formats/aiff"
	"github.com/ik5/audedit/formats/ffmpeg"
	"github.com/ik5/audedit/formats/mp3"
	"github.com/ik5/audedit/formats/vorbis"
	"github.com/ik5/audedit/formats/wav"
	"github.com/ik5/audedit/internal/overwrite"
)

// NativeRegistry returns a registry holding the pure Go codecs.
func NativeRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register(wav.Decoder{}, "wav", "wave")
	r.Register(aiff.Decoder{}, "aif", "aiff")
	r.Register(mp3.Decoder{}, "mp3")
	r.Register(vorbis.Decoder{}, "ogg", "oga")

	r.RegisterEncoder(wav.Encoder{}, "wav", "wave")
	r.RegisterEncoder(aiff.Encoder{}, "aif", "aiff")

	return r
}

// Codecs decodes and encodes whole clips. Formats without a native codec,
// and files the native decoder reports as unsupported, go through ffmpeg.
type Codecs struct {
	Registry *audio.Registry
	FFmpeg   *ffmpeg.Backend
	Logger   *slog.Logger
}

// NewCodecs pairs the native registry with backend.
func NewCodecs(backend *ffmpeg.Backend, logger *slog.Logger) *Codecs {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Codecs{Registry: NativeRegistry(), FFmpeg: backend, Logger: logger}
}

// Decode reads the file at path into memory.
func (c *Codecs) Decode(ctx context.Context, path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := audio.FormatOf(path)
	if dec, ok := c.Registry.Get(format); ok {
		buf, err := decodeWith(dec, f)
		if err == nil {
			c.Logger.Debug("decoded natively", slog.String("format", format), slog.String("buffer", buf.String()))
			return buf, nil
		}
		if !errors.Is(err, audio.ErrUnsupported) {
			return nil, err
		}
		c.Logger.Debug("native decoder declined, trying ffmpeg", slog.String("format", format), slog.Any("error", err))
	}

	return c.FFmpeg.Decode(ctx, path)
}

func decodeWith(dec audio.Decoder, f *os.File) (*audio.Buffer, error) {
	src, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(src)
}

// Encode writes buf in format into the lease's temporary file. The lease is
// not committed.
func (c *Codecs) Encode(ctx context.Context, buf *audio.Buffer, format string, lease *overwrite.Lease) error {
	if format == "" {
		return ErrNoFormat
	}

	if enc, ok := c.Registry.Encoder(format); ok {
		c.Logger.Debug("encoding natively", slog.String("format", format), slog.String("buffer", buf.String()))
		return enc.Encode(lease.File(), buf)
	}

	// ffmpeg writes the file by name.
	if err := lease.File().Close(); err != nil {
		return fmt.Errorf("close %s: %w", lease.TempPath(), err)
	}

	return c.FFmpeg.Encode(ctx, buf, format, lease.TempPath())
}
