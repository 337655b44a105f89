// SPDX-License-Identifier: MIT

package vorbis

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jfreymuth/oggvorbis"
)

// ErrNoSampleRate indicates an identification header without a usable
// sample rate.
var ErrNoSampleRate = errors.New("vorbis stream reports no sample rate")

// Duration reports the playback time of an Ogg Vorbis file. The sample
// count comes from the granule position of the last Ogg page, so only the
// stream headers and the file tail are read, never the audio packets.
func Duration(r io.ReadSeeker) (time.Duration, error) {
	length, format, err := oggvorbis.GetLength(r)
	if err != nil {
		return 0, fmt.Errorf("vorbis duration: %w", err)
	}
	if format.SampleRate <= 0 {
		return 0, ErrNoSampleRate
	}

	rate := uint64(format.SampleRate)
	samples := uint64(length)
	secs := samples / rate
	rem := samples % rate
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/rate), nil
}
