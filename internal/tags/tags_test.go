// SPDX-License-Identifier: EPL-2.0

package tags

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// fakeAudio stands in for MPEG frames; the tag library never decodes them.
var fakeAudio = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}, 64)

func writeMP3(t *testing.T, dir, name string, frames map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, fakeAudio, 0o644); err != nil {
		t.Fatal(err)
	}
	if len(frames) == 0 {
		return path
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("id3v2.Open() error = %v", err)
	}
	defer tag.Close()

	for id, text := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	return path
}

func readTag(t *testing.T, path string) *id3v2.Tag {
	t.Helper()

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("id3v2.Open() error = %v", err)
	}
	t.Cleanup(func() { tag.Close() })

	return tag
}

func TestCopyID3(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeMP3(t, dir, "in.mp3", map[string]string{
		"TIT2": "Morning Take",
		"TPE1": "Some Artist",
		"TALB": "Field Recordings",
	})
	dst := writeMP3(t, dir, "out.mp3", map[string]string{
		"TIT2": "stale title",
		"TSSE": "Lavf61.1.100",
	})

	n, err := CopyID3(src, dst)
	if err != nil {
		t.Fatalf("CopyID3() error = %v", err)
	}
	if n != 3 {
		t.Errorf("CopyID3() copied %d frames, want 3", n)
	}

	tag := readTag(t, dst)
	if got := tag.Title(); got != "Morning Take" {
		t.Errorf("Title() = %q, want %q", got, "Morning Take")
	}
	if got := tag.Artist(); got != "Some Artist" {
		t.Errorf("Artist() = %q, want %q", got, "Some Artist")
	}
	if got := tag.Album(); got != "Field Recordings" {
		t.Errorf("Album() = %q, want %q", got, "Field Recordings")
	}
	if got := tag.GetTextFrame("TSSE").Text; got != "Lavf61.1.100" {
		t.Errorf("TSSE = %q, want the encoder frame kept", got)
	}
	if got := len(tag.GetFrames("TIT2")); got != 1 {
		t.Errorf("%d TIT2 frames, want 1", got)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(data, fakeAudio) {
		t.Error("audio data after the tag was changed")
	}
}

func TestCopyID3_NoSourceTag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeMP3(t, dir, "in.mp3", nil)
	dst := writeMP3(t, dir, "out.mp3", nil)

	n, err := CopyID3(src, dst)
	if err != nil {
		t.Fatalf("CopyID3() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CopyID3() copied %d frames, want 0", n)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, fakeAudio) {
		t.Error("destination changed although the source had no tag")
	}
}

func TestCopyID3_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dst := writeMP3(t, dir, "out.mp3", nil)

	if _, err := CopyID3(filepath.Join(dir, "missing.mp3"), dst); err == nil {
		t.Error("CopyID3() error = nil for a missing source")
	}
}
