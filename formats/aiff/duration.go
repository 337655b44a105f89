// SPDX-License-Identifier: MIT

package aiff

import (
	"fmt"
	"io"
	"time"

	goaiff "github.com/go-audio/aiff"
)

// Duration reports the playback time of an AIFF file from its COMM chunk
// (sample frame count and sample rate). No sample data is read.
func Duration(r io.ReadSeeker) (time.Duration, error) {
	dec := goaiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, ErrNotAiffFile
	}

	d, err := dec.Duration()
	if err != nil {
		return 0, fmt.Errorf("aiff duration: %w", err)
	}
	return d, nil
}
