// SPDX-License-Identifier: MIT

// Package wav probes the playback duration of WAV files.
//
// The probe uses github.com/go-audio/wav to parse the RIFF chunks and
// derives the duration from the format and data chunk headers, without
// reading any sample data.
//
//	f, _ := os.Open("audio.wav")
//	defer f.Close()
//
//	d, err := wav.Duration(f)
package wav
