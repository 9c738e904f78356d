// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions are built on github.com/go-audio/wav, which walks the RIFF
// chunk list, so files with LIST/INFO or other extra chunks decode fine.
//
// # Supported Formats
//
// Decoding:
//   - Integer PCM, 8/16/24/32-bit (8-bit is unsigned per the WAV convention)
//   - WAVE_FORMAT_EXTENSIBLE carrying integer PCM
//   - Any channel count and sample rate
//
// IEEE float and compressed WAV payloads are rejected with an error wrapping
// audio.ErrUnsupported, so callers can hand the file to another backend.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	clip, err := audio.ReadAll(source)
//
// # Writing WAV Files
//
// Encoder writes integer PCM at the clip's own bit depth unless BitDepth is
// set. It needs an io.WriteSeeker because the RIFF sizes are patched once all
// samples are written:
//
//	file, _ := os.Create("output.wav")
//	defer file.Close()
//	err := wav.Encoder{}.Encode(file, clip)
package wav
