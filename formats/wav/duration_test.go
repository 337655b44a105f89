// SPDX-License-Identifier: MIT

package wav

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/agersant/mp3-duration/internal/audiotest"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		frames     int
		want       time.Duration
	}{
		{"one second mono 8kHz", 8000, 1, 8000, time.Second},
		{"half second stereo 44.1kHz", 44100, 2, 22050, 500 * time.Millisecond},
		{"two seconds mono 16kHz", 16000, 1, 32000, 2 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := audiotest.WriteWAVFile(t, tt.sampleRate, tt.channels, tt.frames)
			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open fixture: %v", err)
			}
			defer f.Close()

			d, err := Duration(f)
			if err != nil {
				t.Fatalf("Duration() error = %v", err)
			}
			if d != tt.want {
				t.Errorf("Duration() = %v, want %v", d, tt.want)
			}
		})
	}
}

func TestDuration_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Duration(bytes.NewReader([]byte("definitely not RIFF data")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Duration() error = %v, want ErrNotWavFile", err)
	}
}

func TestDuration_Empty(t *testing.T) {
	t.Parallel()

	_, err := Duration(bytes.NewReader(nil))
	if err == nil {
		t.Error("Duration() error = nil, want error for empty input")
	}
}
