// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding and
// encoding on top of github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - Integer PCM, 16/24/32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// Other depths and compressed AIFF-C payloads fail with an error wrapping
// audio.ErrUnsupported.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	clip, err := audio.ReadAll(source)
//
// # Writing AIFF Files
//
//	file, _ := os.Create("out.aiff")
//	defer file.Close()
//	err := aiff.Encoder{}.Encode(file, clip)
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// # File Extensions
//
// AIFF files typically use .aif or .aiff; .aifc is accepted when the payload
// is uncompressed.
package aiff
