// SPDX-License-Identifier: EPL-2.0

// Package audedit applies one edit to one audio file: trim, convert,
// volume, normalize, reverse, fade in or fade out.
//
// # Quick Start
//
//	ed := audedit.NewEditor(audedit.Options{Logger: logger})
//
//	clip, err := ed.Load(ctx, "interview.mp3")
//	if err != nil {
//	    // missing file, unreadable data or no ffmpeg
//	}
//
//	res, err := ed.Run(ctx, clip, audedit.FadeIn{Duration: 2}, "")
//	// res.Output == "fade_in.wav"
//
// # Formats
//
// WAV, AIFF, MP3 and Ogg Vorbis are decoded in Go; WAV and AIFF are also
// written in Go. Every other format, and WAV encodings the native decoder
// does not support (such as IEEE float), goes through the ffmpeg and ffprobe
// binaries. See formats/ffmpeg.
//
// # Output Files
//
// Every operation except Convert writes WAV at the source bit depth. Each has
// a default file name in the current directory (trimmed.wav,
// converted.<format>, volume_adjusted.wav, normalized.wav, reversed.wav,
// fade_in.wav, fade_out.wav). An existing file is replaced only after
// Options.Confirm agrees, or with Options.Force, and only once the new content
// has been written in full.
//
// Converting MP3 to MP3 carries the input's ID3v2 tags over.
package audedit
