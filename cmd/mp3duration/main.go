// SPDX-License-Identifier: MIT

// Command mp3duration prints the playback duration of audio files.
//
//	mp3duration [-probe] [-verify] file...
//
// By default every argument is scanned as an MPEG audio stream. With -probe
// the container magic is sniffed first, so WAV, AIFF and Ogg Vorbis files
// work too. With -verify each MP3 is additionally decoded in full and the
// decoded duration is compared against the scan.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	gomp3 "github.com/hajimehoshi/go-mp3"

	mp3duration "github.com/agersant/mp3-duration"
	"github.com/agersant/mp3-duration/formats/mp3"
)

func main() {
	probe := flag.Bool("probe", false, "sniff the container magic instead of assuming MP3")
	verify := flag.Bool("verify", false, "decode each MP3 in full and cross-check the measured duration")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: mp3duration [-probe] [-verify] file...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	failed := false
	for _, path := range flag.Args() {
		if err := measure(logger, path, *probe, *verify); err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func measure(logger log.Logger, path string, probe, verify bool) error {
	var (
		d   time.Duration
		err error
	)
	if probe {
		d, err = mp3duration.ProbePath(path)
	} else {
		d, err = mp3duration.FromPath(path)
	}
	if err != nil {
		kv := []interface{}{"file", path, "err", err}
		var scanErr *mp3.ScanError
		if errors.As(err, &scanErr) {
			kv = append(kv, "offset", scanErr.Offset, "partial", scanErr.AtDuration)
		}
		level.Error(logger).Log(kv...)
		return err
	}

	level.Info(logger).Log("file", path, "duration", d)
	fmt.Printf("%s\t%s\n", d, path)

	if verify && !probe {
		if err := verifyDecode(logger, path, d); err != nil {
			return err
		}
	}
	return nil
}

// verifyDecode decodes the whole file and compares the decoded duration
// against the measured one. Decoders and scanners disagree slightly on
// files with partial trailing frames, so only large gaps are reported.
func verifyDecode(logger log.Logger, path string, measured time.Duration) error {
	f, err := os.Open(path)
	if err != nil {
		level.Error(logger).Log("file", path, "err", err)
		return err
	}
	defer f.Close()

	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		level.Error(logger).Log("file", path, "stage", "decode", "err", err)
		return err
	}

	n, err := io.Copy(io.Discard, dec)
	if err != nil {
		level.Error(logger).Log("file", path, "stage", "decode", "err", err)
		return err
	}

	// The decoder emits 16-bit stereo samples regardless of the source
	// channel layout.
	samples := n / 4
	decoded := time.Duration(samples) * time.Second / time.Duration(dec.SampleRate())

	diff := measured - decoded
	if diff < 0 {
		diff = -diff
	}
	if diff > 100*time.Millisecond {
		level.Warn(logger).Log("file", path, "measured", measured, "decoded", decoded, "diff", diff)
	} else {
		level.Info(logger).Log("file", path, "decoded", decoded, "diff", diff)
	}
	return nil
}
