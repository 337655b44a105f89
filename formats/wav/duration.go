// SPDX-License-Identifier: MIT

package wav

import (
	"fmt"
	"io"
	"time"

	gowav "github.com/go-audio/wav"
)

// Duration reports the playback time of a WAV file by reading its headers.
// No PCM data is decoded; the result comes from the data chunk size and the
// format chunk's byte rate.
func Duration(r io.ReadSeeker) (time.Duration, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, ErrNotWavFile
	}

	d, err := dec.Duration()
	if err != nil {
		return 0, fmt.Errorf("wav duration: %w", err)
	}
	return d, nil
}
