// SPDX-License-Identifier: EPL-2.0

package audedit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/formats/ffmpeg"
	"github.com/ik5/audedit/internal/overwrite"
	"github.com/ik5/audedit/internal/tags"
	"github.com/ik5/audedit/utils"
)

// Options configures an Editor. The zero value uses ffmpeg and ffprobe
// from PATH, logs nothing and asks on the terminal before overwriting.
type Options struct {
	FFmpeg  string
	FFprobe string
	Logger  *slog.Logger

	// Confirm is asked before an existing output file is replaced.
	Confirm func(path string) bool
	// Force replaces existing output files without asking.
	Force bool
}

// Clip is a loaded input file.
type Clip struct {
	*audio.Buffer

	Path   string
	Format string
}

// Result describes what Run did.
type Result struct {
	Operation string
	Output    string
	Format    string
	Duration  time.Duration
	// Written is false when an existing output was kept because the
	// overwrite was declined.
	Written bool
}

// Editor loads clips and applies operations to them.
type Editor struct {
	codecs *Codecs
	guard  overwrite.Guard
	logger *slog.Logger
}

func NewEditor(opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	backend := ffmpeg.New(opts.FFmpeg, opts.FFprobe, logger)

	return &Editor{
		codecs: NewCodecs(backend, logger),
		guard:  overwrite.Guard{Confirm: opts.Confirm, Force: opts.Force},
		logger: logger,
	}
}

// Load decodes the whole file at path.
func (e *Editor) Load(ctx context.Context, path string) (*Clip, error) {
	buf, err := e.codecs.Decode(ctx, path)
	if err != nil {
		return nil, err
	}

	e.logger.Info("loaded", slog.String("path", path), slog.String("buffer", buf.String()))

	return &Clip{Buffer: buf, Path: path, Format: audio.FormatOf(path)}, nil
}

// Run applies op to clip and writes the result to output, or to the
// operation's default file name when output is empty. An existing output
// is only replaced after confirmation, and only once the new file has been
// written in full. A declined overwrite is not an error: the Result reports
// Written false.
func (e *Editor) Run(ctx context.Context, clip *Clip, op Operation, output string) (Result, error) {
	if output == "" {
		output = op.DefaultOutput()
	}

	res := Result{Operation: op.Name(), Output: output, Format: op.Format()}

	lease, err := e.guard.Acquire(output)
	if errors.Is(err, overwrite.ErrDeclined) {
		e.logger.Info("overwrite declined", slog.String("path", output))
		return res, nil
	}
	if err != nil {
		return res, err
	}
	defer func() {
		if err := lease.Release(); err != nil {
			e.logger.Warn("remove temp file", slog.String("path", lease.TempPath()), slog.Any("error", err))
		}
	}()

	out, err := op.Apply(clip.Buffer)
	if err != nil {
		return res, err
	}

	e.logger.Debug("applied", slog.String("operation", res.Operation),
		slog.String("buffer", out.String()), slog.Float64("peak_dbfs", utils.RatioToDB(float64(out.Peak()))))

	if err := e.codecs.Encode(ctx, out, res.Format, lease); err != nil {
		return res, err
	}

	if res.Format == "mp3" && clip.Format == "mp3" {
		n, err := tags.CopyID3(clip.Path, lease.TempPath())
		if err != nil {
			e.logger.Warn("tags not copied", slog.String("from", clip.Path), slog.Any("error", err))
		} else {
			e.logger.Debug("tags copied", slog.Int("frames", n))
		}
	}

	if err := lease.Commit(); err != nil {
		return res, fmt.Errorf("save %s: %w", output, err)
	}

	res.Duration = out.Duration()
	res.Written = true

	e.logger.Info("saved", slog.String("operation", res.Operation), slog.String("path", output), slog.Duration("duration", res.Duration))

	return res, nil
}
