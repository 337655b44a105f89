// SPDX-License-Identifier: MIT

package mp3

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrForbiddenVersion indicates the reserved MPEG version code (0b01).
	ErrForbiddenVersion = errors.New("forbidden MPEG version")

	// ErrForbiddenLayer indicates the reserved MPEG layer code (0b00).
	ErrForbiddenLayer = errors.New("forbidden MPEG layer (0)")

	// ErrInvalidBitrate indicates a reserved bitrate code (0 or 15).
	ErrInvalidBitrate = errors.New("invalid bitrate bits")

	// ErrInvalidSamplingRate indicates the reserved sampling rate code (3).
	ErrInvalidSamplingRate = errors.New("invalid sampling rate bits")

	// ErrUnexpectedFrame indicates a block that is neither an audio frame
	// nor a recognized tag.
	ErrUnexpectedFrame = errors.New("unexpected frame")

	// ErrUnexpectedEOF indicates the stream ended inside a frame or tag.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrFrameTooShort indicates a frame whose declared length is smaller
	// than the bytes already consumed while reading its header.
	ErrFrameTooShort = errors.New("MPEG frame too short")
)

// ScanError reports a failed scan together with the byte offset at which it
// failed and the duration measured from complete frames before the failing
// block. It is built once at the moment of failure and never mutated.
type ScanError struct {
	// Err is the classified cause: one of the sentinel errors above, or a
	// wrapped I/O error from the underlying reader.
	Err error

	// Offset is the number of bytes pulled from the stream when the scan
	// failed.
	Offset int64

	// AtDuration is the playback duration accumulated from complete frames
	// before the failure.
	AtDuration time.Duration
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%v at offset %d (0x%X); measured duration up to here: %v",
		e.Err, e.Offset, e.Offset, e.AtDuration)
}

func (e *ScanError) Unwrap() error { return e.Err }
