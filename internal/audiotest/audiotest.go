// SPDX-License-Identifier: MIT

// Package audiotest builds deterministic audio byte streams for tests:
// synthetic MPEG frames and tags assembled byte by byte, plus small WAV and
// AIFF fixture files written with the go-audio encoders.
package audiotest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Raw header field codes, as they appear in the frame header bits.
const (
	MPEG1  byte = 0b11
	MPEG2  byte = 0b10
	MPEG25 byte = 0b00

	LayerI   byte = 0b11
	LayerII  byte = 0b10
	LayerIII byte = 0b01

	Stereo      byte = 0b00
	JointStereo byte = 0b01
	DualChannel byte = 0b10
	Mono        byte = 0b11
)

// Properties of the canonical frame used throughout the tests:
// MPEG-1 Layer III, 128 kbps, 44.1 kHz, stereo, no padding.
const (
	StandardFrameLength   = 417 // 1152/8 * 128000 / 44100
	StandardSampleRate    = 44100
	StandardFrameSamples  = 1152
	StandardFrameDuration = 26122448 * time.Nanosecond // 1152e9/44100, truncated
)

// FrameHeader assembles the 4 raw bytes of an MPEG audio frame header. The
// protection bit is always set (no CRC follows the header).
func FrameHeader(version, layer, bitrateCode, rateCode byte, padded bool, mode byte) []byte {
	var pad byte
	if padded {
		pad = 1
	}
	return []byte{
		0xFF,
		0xE0 | version<<3 | layer<<1 | 0x01,
		bitrateCode<<4 | rateCode<<2 | pad<<1,
		mode << 6,
	}
}

// StandardFrame returns one canonical frame with a zeroed body.
func StandardFrame() []byte {
	f := make([]byte, StandardFrameLength)
	copy(f, FrameHeader(MPEG1, LayerIII, 9, 0, false, Stereo))
	return f
}

// PaddedFrame is the canonical frame with the padding bit set, one byte
// longer.
func PaddedFrame() []byte {
	f := make([]byte, StandardFrameLength+1)
	copy(f, FrameHeader(MPEG1, LayerIII, 9, 0, true, Stereo))
	return f
}

// CBRStream concatenates n canonical frames.
func CBRStream(n int) []byte {
	stream := make([]byte, 0, n*StandardFrameLength)
	for i := 0; i < n; i++ {
		stream = append(stream, StandardFrame()...)
	}
	return stream
}

// XingFrame returns a canonical frame whose body carries a Xing block with
// the given total frame count.
func XingFrame(frameCount uint32) []byte {
	return vbrFrame("Xing", frameCount, true)
}

// InfoFrame is XingFrame with the "Info" magic used for CBR files.
func InfoFrame(frameCount uint32) []byte {
	return vbrFrame("Info", frameCount, true)
}

// XingFrameWithoutCount returns a Xing block whose frame-count flag is
// clear, so a scanner has to fall back to per-frame measurement.
func XingFrameWithoutCount() []byte {
	return vbrFrame("Xing", 0, false)
}

func vbrFrame(magic string, frameCount uint32, withCount bool) []byte {
	f := StandardFrame()
	// The block sits after the 4 header bytes and the 32 side information
	// bytes of an MPEG-1 stereo frame.
	block := f[4+32:]
	copy(block, magic)
	if withCount {
		block[7] = 0x01 // frames-field-present flag, low bit of the last flag byte
		binary.BigEndian.PutUint32(block[8:12], frameCount)
	}
	return f
}

// ID3v1Tag returns an empty 128-byte ID3v1 tag.
func ID3v1Tag() []byte {
	tag := make([]byte, 128)
	copy(tag, "TAG")
	return tag
}

// ID3v2Tag returns an ID3v2.4 tag with a zeroed body of the given size.
// The size is encoded synchsafe; withFooter sets flag bit 4 and appends the
// 10-byte footer the size field does not cover.
func ID3v2Tag(bodySize int, withFooter bool) []byte {
	total := 10 + bodySize
	if withFooter {
		total += 10
	}
	tag := make([]byte, total)
	copy(tag, "ID3")
	tag[3] = 4 // v2.4.0
	if withFooter {
		tag[5] = 0b00010000
		copy(tag[10+bodySize:], "3DI")
	}
	tag[6] = byte(bodySize >> 21 & 0x7F)
	tag[7] = byte(bodySize >> 14 & 0x7F)
	tag[8] = byte(bodySize >> 7 & 0x7F)
	tag[9] = byte(bodySize & 0x7F)
	return tag
}

// APEv2Tag returns an APEv2 tag block: 32-byte header, itemBytes of zeroed
// items, 32-byte footer. The size field covers items plus footer.
func APEv2Tag(itemBytes int) []byte {
	tag := make([]byte, 32+itemBytes+32)
	writeAPEHeader(tag, itemBytes)
	writeAPEHeader(tag[32+itemBytes:], itemBytes)
	return tag
}

func writeAPEHeader(dst []byte, itemBytes int) {
	copy(dst, "APETAGEX")
	binary.LittleEndian.PutUint32(dst[8:12], 2000) // version
	binary.LittleEndian.PutUint32(dst[12:16], uint32(itemBytes+32))
}

// WriteWAVFile writes a 16-bit PCM WAV file of silence to a temp directory
// and returns its path. frames is the sample frame count per channel.
func WriteWAVFile(t *testing.T, sampleRate, channels, frames int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	if err := enc.Write(silence(sampleRate, channels, frames)); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}
	return path
}

// WriteAIFFFile is WriteWAVFile for AIFF.
func WriteAIFFFile(t *testing.T, sampleRate, channels, frames int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, sampleRate, 16, channels)
	if err := enc.Write(silence(sampleRate, channels, frames)); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}
	return path
}

func silence(sampleRate, channels, frames int) *audio.IntBuffer {
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, frames*channels),
		SourceBitDepth: 16,
	}
}
