// SPDX-License-Identifier: MIT

package mp3duration

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agersant/mp3-duration/formats/aiff"
	"github.com/agersant/mp3-duration/formats/mp3"
	"github.com/agersant/mp3-duration/formats/vorbis"
	"github.com/agersant/mp3-duration/formats/wav"
)

// FromReader measures the duration of the MPEG audio stream read from r.
// The reader is consumed; only forward reads are issued.
func FromReader(r io.Reader) (time.Duration, error) {
	return mp3.Duration(r)
}

// FromFile measures the duration of an open MP3 file. Reads are buffered;
// the file is left positioned wherever the scan stopped.
func FromFile(f *os.File) (time.Duration, error) {
	return mp3.Duration(bufio.NewReader(f))
}

// FromPath measures the duration of the MP3 file at path.
func FromPath(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return FromFile(f)
}

// Probe sniffs the container magic at the start of r and measures the
// duration with the matching format probe: WAV, AIFF and Ogg Vorbis by
// their magic bytes, anything else as an MPEG audio stream (MP3 files have
// no distinctive container magic once tags are in front).
func Probe(r io.ReadSeeker) (time.Duration, error) {
	var magic [12]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, fmt.Errorf("probe: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("probe: %w", err)
	}

	switch {
	case bytes.Equal(magic[:4], []byte("RIFF")) && bytes.Equal(magic[8:12], []byte("WAVE")):
		return wav.Duration(r)
	case bytes.Equal(magic[:4], []byte("FORM")) &&
		(bytes.Equal(magic[8:12], []byte("AIFF")) || bytes.Equal(magic[8:12], []byte("AIFC"))):
		return aiff.Duration(r)
	case bytes.Equal(magic[:4], []byte("OggS")):
		return vorbis.Duration(r)
	default:
		return mp3.Duration(bufio.NewReader(r))
	}
}

// ProbePath is Probe for a file path.
func ProbePath(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Probe(f)
}
