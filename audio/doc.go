// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory clip type and the codec plumbing the
// editor is built on.
//
// This package contains:
//   - Buffer, a fully decoded clip (interleaved float32 samples)
//   - Source and Decoder for streaming decoders, and ReadAll to collect them
//   - Encoder for writing a whole Buffer in one container format
//   - Registry, mapping format names to decoders and encoders
//   - Resample and Mix for sample rate and channel layout changes
//
// # Buffer
//
// A Buffer owns its samples. Operations return new buffers instead of
// changing their input:
//
//	clip, _ := audio.ReadAll(src)
//	fmt.Println(clip.Duration())
//
// # Source Interface
//
// Decoders stream through the Source interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is finished. Sources that also
// implement BitDepther report the integer width of the decoded data, which
// encoders use as their default output depth.
//
// # Format Registry
//
// The registry maps format keys to codecs. Keys are case-insensitive and may be
// given as file extensions:
//
//	registry := audio.NewRegistry()
//	registry.Register(wav.Decoder{}, "wav", "wave")
//	registry.RegisterEncoder(wav.Encoder{}, "wav", "wave")
//	decoder, ok := registry.Get(audio.FormatOf("take1.WAV"))
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Gain changes may leave values outside that range while the clip is in
// memory; encoders clip when converting back to integer PCM.
package audio
