// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// BitDepther is implemented by sources that know the integer sample width
// of the data they decode. ReadAll records it on the Buffer.
type BitDepther interface {
	BitDepth() int
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder writes a whole Buffer in one container format. Some containers
// patch their header after the samples, hence the WriteSeeker.
type Encoder interface {
	Encode(w io.WriteSeeker, b *Buffer) error
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3", "ogg").
// Keys are case-insensitive and may carry a leading dot.
type Registry struct {
	codecs   map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:   make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

// Register adds d under every given format name.
func (r *Registry) Register(d Decoder, formats ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, f := range formats {
		r.codecs[FormatKey(f)] = d
	}
}

// RegisterEncoder adds e under every given format name.
func (r *Registry) RegisterEncoder(e Encoder, formats ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, f := range formats {
		r.encoders[FormatKey(f)] = e
	}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[FormatKey(format)]
	return d, ok
}

func (r *Registry) Encoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[FormatKey(format)]
	return e, ok
}

// FormatKey normalizes a format name or extension: "WAV", ".wav" and "wav" are equal.
func FormatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}

// FormatOf returns the format key implied by a file name's extension.
func FormatOf(path string) string {
	return FormatKey(filepath.Ext(path))
}
