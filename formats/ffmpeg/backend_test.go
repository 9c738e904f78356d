// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audedit/internal/audiotest"
)

func requireFFmpeg(t *testing.T) *Backend {
	t.Helper()

	b := New("", "", nil)
	if err := b.Available(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}

	return b
}

func TestMuxer(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"mp3":   "mp3",
		"m4a":   "ipod",
		".AAC":  "adts",
		"oga":   "ogg",
		"flac":  "flac",
		" wave": "wav",
	}

	for in, want := range tests {
		if got := Muxer(in); got != want {
			t.Errorf("Muxer(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCommands(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	probe := ProbeCommand(ctx, "ffprobe", "in.flac")
	if !slices.Contains(probe.Args, "stream=sample_rate,channels") || !containsRun(probe.Args, []string{"-i", "file:in.flac"}) {
		t.Errorf("ProbeCommand args = %v", probe.Args)
	}

	dash := ProbeCommand(ctx, "ffprobe", "-report.wav")
	if slices.Contains(dash.Args, "-report.wav") || !containsRun(dash.Args, []string{"-i", "file:-report.wav"}) {
		t.Errorf("ProbeCommand passes a dash-leading path as an option: %v", dash.Args)
	}

	dec := DecodeCommand(ctx, "ffmpeg", "in.flac", 48000, 2)
	if !containsRun(dec.Args, []string{"-i", "file:in.flac"}) {
		t.Errorf("DecodeCommand args = %v, want a file: input", dec.Args)
	}
	want := []string{"-f", "s16le", "-acodec", "pcm_s16le", "-ar", "48000", "-ac", "2", "pipe:1"}
	if !containsRun(dec.Args, want) {
		t.Errorf("DecodeCommand args = %v, want run %v", dec.Args, want)
	}

	enc := EncodeCommand(ctx, "ffmpeg", "out.m4a", "m4a", 44100, 1)
	want = []string{"-i", "pipe:0", "-f", "ipod", "-y", "file:out.m4a"}
	if !containsRun(enc.Args, want) {
		t.Errorf("EncodeCommand args = %v, want run %v", enc.Args, want)
	}
}

func containsRun(args, run []string) bool {
	for i := 0; i+len(run) <= len(args); i++ {
		if slices.Equal(args[i:i+len(run)], run) {
			return true
		}
	}

	return false
}

func TestParseProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		out      string
		rate, ch int
		wantErr  error
	}{
		{name: "stereo", out: "44100,2\n", rate: 44100, ch: 2},
		{name: "mono with extra line", out: "8000,1\n\n", rate: 8000, ch: 1},
		{name: "empty", out: "", wantErr: ErrNoAudioStream},
		{name: "one field", out: "44100\n", wantErr: ErrNoAudioStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rate, ch, err := parseProbe([]byte(tt.out))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("parseProbe() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProbe() error = %v", err)
			}
			if rate != tt.rate || ch != tt.ch {
				t.Errorf("parseProbe() = %d, %d, want %d, %d", rate, ch, tt.rate, tt.ch)
			}
		})
	}

	if _, _, err := parseProbe([]byte("abc,2")); err == nil {
		t.Error("parseProbe() accepted a non-numeric rate")
	}
}

func TestPCMConversion(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0.5, -0.5, 1, -1}
	got := bytesToSamples(samplesToBytes(in), 1)

	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if d := got[i] - in[i]; d > 1.0/32768 || d < -1.0/32768 {
			t.Errorf("sample %d = %v, want %v", i, got[i], in[i])
		}
	}

	// 3 bytes is one sample plus a stray byte; stereo needs two samples per frame.
	if got := bytesToSamples([]byte{1, 0, 2}, 2); len(got) != 0 {
		t.Errorf("partial frame kept: %v", got)
	}
}

func TestBackend_NotFound(t *testing.T) {
	t.Parallel()

	b := New("/nonexistent/ffmpeg", "/nonexistent/ffprobe", nil)

	if err := b.Available(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Available() error = %v, want ErrNotFound", err)
	}

	if _, err := b.Decode(context.Background(), "in.flac"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Decode() error = %v, want ErrNotFound", err)
	}

	clip := audiotest.Silence(8000, 1, 10)
	err := b.Encode(context.Background(), clip, "mp3", filepath.Join(t.TempDir(), "out.mp3"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Encode() error = %v, want ErrNotFound", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	b := New("", "", nil)
	if b.FFmpeg != DefaultFFmpeg || b.FFprobe != DefaultFFprobe || b.Logger == nil {
		t.Errorf("New() = %+v", b)
	}
}

func TestBackend_RoundTrip(t *testing.T) {
	t.Parallel()

	b := requireFFmpeg(t)
	ctx := context.Background()

	clip := audiotest.Sine(22050, 2, 22050, 440, 0.5)
	path := filepath.Join(t.TempDir(), "tone.flac")

	if err := b.Encode(ctx, clip, "flac", path); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := b.Decode(ctx, path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.SampleRate != 22050 || got.Channels != 2 {
		t.Fatalf("decoded %s, want 22050 Hz stereo", got)
	}
	if got.Frames() != clip.Frames() {
		t.Errorf("Frames() = %d, want %d", got.Frames(), clip.Frames())
	}
	audiotest.AssertClose(t, got, clip, 2.0/32768)
}

func TestBackend_DecodeGarbage(t *testing.T) {
	t.Parallel()

	b := requireFFmpeg(t)
	path := audiotest.WriteFile(t, t.TempDir(), "junk.flac", []byte("not audio at all"))

	_, err := b.Decode(context.Background(), path)
	if err == nil {
		t.Fatal("Decode() error = nil for garbage input")
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) && !errors.Is(err, ErrNoAudioStream) {
		t.Errorf("Decode() error = %v, want an ffprobe failure", err)
	}
}
