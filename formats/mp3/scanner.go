// SPDX-License-Identifier: MIT

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Duration measures the total playback time of the MPEG audio stream read
// from r, without decoding any audio samples. It walks the stream block by
// block, skipping ID3v1, ID3v2 and APEv2 tags and summing per-frame
// durations from the frame headers. When the first audio frame carries a
// Xing/Info block with a frame count, the total is computed from that count
// and the rest of the stream is not read.
//
// On failure the returned error is a *ScanError wrapping one of the
// sentinel errors of this package (or the underlying I/O error) together
// with the byte offset of the failure and the duration accumulated from
// complete frames before it.
func Duration(r io.Reader) (time.Duration, error) {
	c := newCursor(r)
	if err := scan(c); err != nil {
		return c.elapsed, err
	}
	return c.elapsed, nil
}

func scan(c *cursor) error {
	var header [4]byte
	for {
		// Tolerate spurious zero padding before a sync word. A clean end
		// of stream here is the normal termination of the scan.
		b, eof, err := c.readByte()
		if err != nil {
			return err
		}
		for b == 0x00 && !eof {
			b, eof, err = c.readByte()
			if err != nil {
				return err
			}
		}
		if eof {
			return nil
		}

		// A partial header is a truncated structure, so end of stream from
		// here on is a failure.
		header[0] = b
		if err := c.readFull(header[1:]); err != nil {
			return err
		}
		raw := binary.BigEndian.Uint32(header[:])

		switch {
		case isSync(raw):
			done, err := scanAudioFrame(c, raw)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case string(header[:3]) == "ID3":
			if err := skipID3v2Tag(c); err != nil {
				return err
			}
		case string(header[:3]) == "TAG":
			if err := skipID3v1Tag(c); err != nil {
				return err
			}
		case string(header[:4]) == "APET":
			if err := skipAPETag(c, raw); err != nil {
				return err
			}
		default:
			return c.fail(fmt.Errorf("%w, header 0x%08X", ErrUnexpectedFrame, raw))
		}
	}
}

// scanAudioFrame measures one audio frame and skips its body. It returns
// done=true when a Xing/Info frame count allowed the total duration to be
// computed directly, in which case c.elapsed already holds the final value.
func scanAudioFrame(c *cursor, raw uint32) (done bool, err error) {
	h, err := parseFrameHeader(raw)
	if err != nil {
		return false, c.fail(err)
	}
	rate, err := samplingRate(h.version, h.rateCode)
	if err != nil {
		return false, c.fail(err)
	}
	samples, err := samplesPerFrame(h.version, h.layer)
	if err != nil {
		return false, c.fail(err)
	}

	// A Xing/Info block, if present, sits right after the side
	// information. The 12 bytes are part of the frame body and must be
	// consumed either way, so read them unconditionally and branch on
	// their content.
	sideInfo := sideInformationSize(h.version, h.mode)
	if err := c.skip(int64(sideInfo)); err != nil {
		return false, err
	}
	var peek [12]byte
	if err := c.readFull(peek[:]); err != nil {
		return false, err
	}
	if magic := string(peek[:4]); magic == "Xing" || magic == "Info" {
		if peek[7]&1 != 0 {
			frameCount := binary.BigEndian.Uint32(peek[8:12])
			c.elapsed = totalDuration(uint64(frameCount)*uint64(samples), uint64(rate))
			return true, nil
		}
	}

	bps, err := bitrate(h.version, h.layer, h.bitrateCode)
	if err != nil {
		return false, c.fail(err)
	}
	frameLength := samples/8*bps/rate + h.padding
	consumed := headerSize + sideInfo + uint32(len(peek))
	if frameLength < consumed {
		return false, c.fail(ErrFrameTooShort)
	}
	if err := c.skip(int64(frameLength - consumed)); err != nil {
		return false, err
	}
	c.elapsed += frameDuration(samples, rate)
	return false, nil
}

// headerSize is the raw frame header size in bytes.
const headerSize = 4

// frameDuration is the playback time of one frame, in whole nanoseconds.
func frameDuration(samples, rate uint32) time.Duration {
	return time.Duration(uint64(samples) * uint64(time.Second) / uint64(rate))
}

// totalDuration converts a total sample count into a duration as integer
// seconds plus the exact nanosecond remainder. The split keeps the
// arithmetic inside uint64 for any 32-bit frame count.
func totalDuration(totalSamples, rate uint64) time.Duration {
	secs := totalSamples / rate
	rem := totalSamples % rate
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/rate)
}

// skipID3v2Tag consumes an ID3v2 tag body. The four synchsafe size bytes
// carry 7 bits each; flag bit 4 announces a 10-byte footer that the size
// field does not include.
func skipID3v2Tag(c *cursor) error {
	var buf [6]byte // 4 of the 10 header bytes were already read
	if err := c.readFull(buf[:]); err != nil {
		return err
	}
	flags := buf[1]
	size := int64(buf[2]&0x7F)<<21 | int64(buf[3]&0x7F)<<14 | int64(buf[4]&0x7F)<<7 | int64(buf[5]&0x7F)
	var footerSize int64
	if flags&0b00010000 != 0 {
		footerSize = 10
	}
	return c.skip(size + footerSize)
}

// skipID3v1Tag consumes the rest of a fixed 128-byte ID3v1 tag.
func skipID3v1Tag(c *cursor) error {
	return c.skip(128 - 4)
}

// skipAPETag consumes an APEv2 tag. The candidate "APET" prefix is only
// confirmed once "AGEX" completes the magic; the tag size field counts the
// items and the 32-byte footer but not the 32-byte header, of which 16
// bytes remain unread at that point.
func skipAPETag(c *cursor, raw uint32) error {
	var buf [12]byte
	if err := c.readFull(buf[:]); err != nil {
		return err
	}
	if string(buf[:4]) != "AGEX" {
		return c.fail(fmt.Errorf("%w, header 0x%08X", ErrUnexpectedFrame, raw))
	}
	tagSize := int64(binary.LittleEndian.Uint32(buf[8:12]))
	return c.skip(tagSize + 16)
}
