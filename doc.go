// SPDX-License-Identifier: MIT

// Package mp3duration measures the playback duration of audio files
// without decoding them.
//
// The core of the package is an MPEG audio scanner that walks an MP3
// elementary stream frame by frame, reading only frame headers and tag
// sizes. See formats/mp3 for the scanner itself; this package is the thin
// convenience layer over it.
//
// # Quick start
//
//	d, err := mp3duration.FromPath("song.mp3")
//	if err != nil {
//	    // err is a *mp3.ScanError with the failure offset and the
//	    // duration measured up to that point.
//	}
//	fmt.Println(d)
//
// Streams work the same way through FromReader:
//
//	d, err := mp3duration.FromReader(resp.Body)
//
// # Other containers
//
// Probe and ProbePath sniff the leading magic bytes and dispatch to the
// duration probes for WAV, AIFF and Ogg Vorbis files as well:
//
//	d, err := mp3duration.ProbePath("recording.wav")
//
// Each probe lives in its own subpackage under formats/ and can be used
// directly when the container is known up front.
//
// # Accuracy
//
// Durations are exact integer arithmetic over sample counts and sampling
// rates; no floating point is involved in the MP3 path. Variable-bitrate
// files with a Xing header are measured in constant time from the embedded
// frame count.
package mp3duration
