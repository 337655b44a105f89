// SPDX-License-Identifier: MIT

package mp3

import (
	"io"
	"time"
)

// cursor owns the byte source for the duration of one scan. Every read and
// skip goes through it so that consumed and elapsed always describe the
// stream position a ScanError is built from.
type cursor struct {
	r        io.Reader
	consumed int64
	elapsed  time.Duration
	atEOF    bool
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: r}
}

// readByte pulls a single byte. A clean end of stream is reported through
// eof with a nil error: between top-level blocks it is the normal
// termination of the scan, not a failure.
func (c *cursor) readByte() (b byte, eof bool, err error) {
	var buf [1]byte
	n, err := io.ReadFull(c.r, buf[:])
	c.consumed += int64(n)
	if err == nil {
		return buf[0], false, nil
	}
	if err == io.EOF {
		c.atEOF = true
		return 0, true, nil
	}
	return 0, false, c.fail(err)
}

// readFull pulls exactly len(buf) bytes. Running out of stream here means a
// structure was truncated, so EOF is a failure.
func (c *cursor) readFull(buf []byte) error {
	n, err := io.ReadFull(c.r, buf)
	c.consumed += int64(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			c.atEOF = true
			return c.fail(ErrUnexpectedEOF)
		}
		return c.fail(err)
	}
	return nil
}

// skip discards exactly n bytes without buffering them.
func (c *cursor) skip(n int64) error {
	m, err := io.CopyN(io.Discard, c.r, n)
	c.consumed += m
	if err != nil {
		if err == io.EOF {
			c.atEOF = true
			return c.fail(ErrUnexpectedEOF)
		}
		return c.fail(err)
	}
	return nil
}

// fail snapshots the current offset and accumulated duration into a
// ScanError so every failure carries the same forensic context.
func (c *cursor) fail(cause error) *ScanError {
	return &ScanError{Err: cause, Offset: c.consumed, AtDuration: c.elapsed}
}
