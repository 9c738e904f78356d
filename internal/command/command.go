// SPDX-License-Identifier: EPL-2.0

// Package command is the audedit command line: flag parsing, picking the
// operation and reporting what happened.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ik5/audedit"
	"github.com/ik5/audedit/effects"
	"github.com/ik5/audedit/formats/ffmpeg"
)

// Version is reported by --version.
var Version = "dev"

// ErrUsage marks invalid flag combinations.
var ErrUsage = errors.New("usage")

// Streams is where the command talks to the user.
type Streams struct {
	Out io.Writer
	Err io.Writer
	// Confirm answers overwrite questions; nil prompts on the terminal.
	Confirm func(path string) bool
}

// Operation flags, in the order they are listed in the help.
const (
	flagTrim      = "trim"
	flagConvert   = "convert"
	flagVolume    = "volume"
	flagNormalize = "normalize"
	flagReverse   = "reverse"
	flagFadeIn    = "fade_in"
	flagFadeOut   = "fade_out"
)

var operationFlags = []string{flagTrim, flagConvert, flagVolume, flagNormalize, flagReverse, flagFadeIn, flagFadeOut}

// modifierFlags only make sense together with one operation.
var modifierFlags = []struct{ flag, needs string }{
	{"sample-rate", flagConvert},
	{"channels", flagConvert},
	{"headroom", flagNormalize},
}

// report holds the status line prefix and the error verb of an operation.
type report struct {
	done  string
	doing string
}

var reports = map[string]report{
	"trim":      {"Audio trimmed", "trimming audio"},
	"convert":   {"Audio converted", "converting audio"},
	"volume":    {"Volume adjusted", "adjusting volume"},
	"normalize": {"Audio normalized", "normalizing audio"},
	"reverse":   {"Audio reversed", "reversing audio"},
	"fade_in":   {"Audio faded in", "fading in audio"},
	"fade_out":  {"Audio faded out", "fading out audio"},
}

const (
	msgInvalidTrim = "Invalid trim format. Use start,end (e.g., 5.0,10.0)"
	msgNoFFmpeg    = "Error: FFmpeg not found. Make sure it's installed and in your PATH."
)

// New builds the root command.
func New(s Streams) *cli.Command {
	return &cli.Command{
		Name:            "audedit",
		Usage:           "Command-line audio editor",
		Version:         Version,
		Writer:          s.Out,
		ErrWriter:       s.Err,
		HideHelpCommand: true,
		Flags:           flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, s)
		},
	}
}

// Run parses args (args[0] is the program name) and executes them. Errors
// are returned only for invalid usage; failures while editing are reported
// on s.Out.
func Run(ctx context.Context, args []string, s Streams) error {
	return New(s).Run(ctx, args)
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "input audio `FILE`", Required: true},
		&cli.StringFlag{Name: flagTrim, Usage: "trim audio to `START,END` in seconds"},
		&cli.StringFlag{Name: flagConvert, Usage: "convert audio to `FORMAT` (e.g. mp3, wav)"},
		&cli.IntFlag{Name: "sample-rate", Usage: "with --convert, resample to `HZ`"},
		&cli.IntFlag{Name: "channels", Usage: "with --convert, remix to `N` channels"},
		&cli.FloatFlag{Name: flagVolume, Usage: "adjust volume by `DB` (e.g. 5, -3)"},
		&cli.BoolFlag{Name: flagNormalize, Usage: "normalize audio"},
		&cli.FloatFlag{Name: "headroom", Value: effects.DefaultHeadroom, Usage: "with --normalize, peak level in `DB` below full scale"},
		&cli.BoolFlag{Name: flagReverse, Usage: "reverse audio"},
		&cli.FloatFlag{Name: flagFadeIn, Usage: "fade in over `SECONDS`"},
		&cli.FloatFlag{Name: flagFadeOut, Usage: "fade out over `SECONDS`"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output `FILE` (default depends on the operation)"},
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "overwrite existing output without asking"},
		&cli.StringFlag{Name: "ffmpeg", Value: ffmpeg.DefaultFFmpeg, Usage: "ffmpeg `PATH`"},
		&cli.StringFlag{Name: "ffprobe", Value: ffmpeg.DefaultFFprobe, Usage: "ffprobe `PATH`"},
		&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "log `LEVEL` on stderr (debug, info, warn, error)"},
	}
}

func run(ctx context.Context, cmd *cli.Command, s Streams) error {
	logger, err := newLogger(s.Err, cmd.String("log-level"))
	if err != nil {
		return err
	}

	requested, err := requestedOperation(cmd)
	if err != nil {
		return err
	}

	ed := audedit.NewEditor(audedit.Options{
		FFmpeg:  cmd.String("ffmpeg"),
		FFprobe: cmd.String("ffprobe"),
		Logger:  logger,
		Confirm: s.Confirm,
		Force:   cmd.Bool("yes"),
	})

	clip, err := ed.Load(ctx, cmd.String("input"))
	if err != nil {
		fmt.Fprintf(s.Out, "Error loading audio file: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.Out, "Audio loaded successfully. Duration: %s seconds\n", seconds(clip))

	if requested == "" {
		fmt.Fprintln(s.Out, "No operation requested.")
		return nil
	}

	op, err := operation(cmd, requested)
	if errors.Is(err, audedit.ErrInvalidTrim) {
		logger.Debug("bad trim", slog.Any("error", err))
		fmt.Fprintln(s.Out, msgInvalidTrim)
		return nil
	}
	if err != nil {
		return err
	}

	res, err := ed.Run(ctx, clip, op, cmd.String("output"))
	rep := reports[op.Name()]
	switch {
	case errors.Is(err, ffmpeg.ErrNotFound):
		fmt.Fprintln(s.Out, msgNoFFmpeg)
	case err != nil:
		fmt.Fprintf(s.Out, "Error %s: %v\n", rep.doing, err)
	case res.Written:
		fmt.Fprintf(s.Out, "%s and saved to %s\n", rep.done, res.Output)
	}

	return nil
}

// requestedOperation returns the one operation flag given, or "" for none.
func requestedOperation(cmd *cli.Command) (string, error) {
	var given []string
	for _, name := range operationFlags {
		switch name {
		case flagNormalize, flagReverse:
			if cmd.Bool(name) {
				given = append(given, name)
			}
		default:
			if cmd.IsSet(name) {
				given = append(given, name)
			}
		}
	}

	if len(given) > 1 {
		return "", fmt.Errorf("%w: only one operation per run, got --%s", ErrUsage, strings.Join(given, ", --"))
	}

	requested := ""
	if len(given) == 1 {
		requested = given[0]
	}

	for _, dep := range modifierFlags {
		if cmd.IsSet(dep.flag) && requested != dep.needs {
			return "", fmt.Errorf("%w: --%s needs --%s", ErrUsage, dep.flag, dep.needs)
		}
	}

	return requested, nil
}

func operation(cmd *cli.Command, name string) (audedit.Operation, error) {
	switch name {
	case flagTrim:
		return audedit.ParseTrim(cmd.String(flagTrim))
	case flagConvert:
		return audedit.Convert{
			To:         cmd.String(flagConvert),
			SampleRate: cmd.Int("sample-rate"),
			Channels:   cmd.Int("channels"),
		}, nil
	case flagVolume:
		return audedit.Volume{DB: cmd.Float(flagVolume)}, nil
	case flagNormalize:
		return audedit.Normalize{Headroom: cmd.Float("headroom")}, nil
	case flagReverse:
		return audedit.Reverse{}, nil
	case flagFadeIn:
		return audedit.FadeIn{Duration: cmd.Float(flagFadeIn)}, nil
	case flagFadeOut:
		return audedit.FadeOut{Duration: cmd.Float(flagFadeOut)}, nil
	}

	return nil, fmt.Errorf("%w: unknown operation %q", ErrUsage, name)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: --log-level: %w", ErrUsage, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// seconds formats the clip length in whole milliseconds with at least one
// decimal: "5.0", "12.345".
func seconds(clip *audedit.Clip) string {
	ms := math.Round(clip.Seconds() * 1000)
	s := strconv.FormatFloat(ms/1000, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
