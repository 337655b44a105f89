// SPDX-License-Identifier: MIT

// Package mp3 measures the playback duration of MPEG audio streams.
//
// The scanner walks the elementary stream frame by frame. For each audio
// frame it decodes the 4-byte header, looks the bitrate, sampling rate and
// samples-per-frame up in the fixed MPEG tables, skips the frame body and
// adds the frame's duration to the running total. No audio is ever decoded.
//
// # Measuring a stream
//
//	f, _ := os.Open("audio.mp3")
//	defer f.Close()
//
//	d, err := mp3.Duration(bufio.NewReader(f))
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(d)
//
// The reader only needs forward reads; no seeking is required. The scanner
// issues many small reads, so wrap files in a bufio.Reader.
//
// # VBR streams
//
// Variable-bitrate files produced by common encoders carry a Xing (or Info)
// block in their first audio frame with the total frame count. When that
// count is present the duration is computed from it directly and the rest
// of the stream is not read at all.
//
// # Tags
//
// ID3v2, ID3v1 and APEv2 tags are recognized and skipped; their contents
// are not parsed. Zero padding in front of a frame sync word is tolerated.
// Anything else is reported as an unexpected frame.
//
// # Errors
//
// Every failure is a *ScanError carrying the classified cause, the byte
// offset at which the scan stopped and the duration measured up to the
// failing block:
//
//	d, err := mp3.Duration(r)
//	var scanErr *mp3.ScanError
//	if errors.As(err, &scanErr) {
//	    fmt.Printf("failed at byte %d after %v\n", scanErr.Offset, scanErr.AtDuration)
//	}
//
// The causes form a closed set: ErrForbiddenVersion, ErrForbiddenLayer,
// ErrInvalidBitrate, ErrInvalidSamplingRate, ErrUnexpectedFrame,
// ErrUnexpectedEOF, ErrFrameTooShort, or a wrapped I/O error from the
// underlying reader. A stream that simply ends between blocks is a success,
// not an error.
package mp3
