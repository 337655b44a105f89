// SPDX-License-Identifier: MIT

package mp3

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// faultyReader yields its data, then a non-EOF error.
type faultyReader struct {
	data []byte
	err  error
}

func (r *faultyReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestCursor_ReadFullAdvancesOffset(t *testing.T) {
	t.Parallel()

	c := newCursor(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6}))

	buf := make([]byte, 4)
	if err := c.readFull(buf); err != nil {
		t.Fatalf("readFull() error = %v", err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Errorf("readFull() buf = %v", buf)
	}
	if c.consumed != 4 {
		t.Errorf("consumed = %d, want 4", c.consumed)
	}
	if c.atEOF {
		t.Error("atEOF = true, want false")
	}
}

func TestCursor_ReadByte(t *testing.T) {
	t.Parallel()

	c := newCursor(bytes.NewReader([]byte{0xAB}))

	b, eof, err := c.readByte()
	if err != nil {
		t.Fatalf("readByte() error = %v", err)
	}
	if eof {
		t.Fatal("readByte() eof = true, want false")
	}
	if b != 0xAB {
		t.Errorf("readByte() = 0x%02X, want 0xAB", b)
	}
	if c.consumed != 1 {
		t.Errorf("consumed = %d, want 1", c.consumed)
	}

	// A clean end of stream is not an error at this level.
	_, eof, err = c.readByte()
	if err != nil {
		t.Fatalf("readByte() at EOF error = %v", err)
	}
	if !eof {
		t.Error("readByte() at EOF eof = false, want true")
	}
	if !c.atEOF {
		t.Error("atEOF = false, want true")
	}
}

func TestCursor_ReadFullTruncated(t *testing.T) {
	t.Parallel()

	c := newCursor(bytes.NewReader([]byte{1, 2}))

	err := c.readFull(make([]byte, 4))
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("readFull() error = %v, want ErrUnexpectedEOF", err)
	}
	if !c.atEOF {
		t.Error("atEOF = false, want true")
	}

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("readFull() error type = %T, want *ScanError", err)
	}
	// The two available bytes were pulled before the failure.
	if scanErr.Offset != 2 {
		t.Errorf("Offset = %d, want 2", scanErr.Offset)
	}
}

func TestCursor_Skip(t *testing.T) {
	t.Parallel()

	c := newCursor(bytes.NewReader(make([]byte, 100)))

	if err := c.skip(60); err != nil {
		t.Fatalf("skip() error = %v", err)
	}
	if c.consumed != 60 {
		t.Errorf("consumed = %d, want 60", c.consumed)
	}

	err := c.skip(60)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("skip() past end error = %v, want ErrUnexpectedEOF", err)
	}
	if c.consumed != 100 {
		t.Errorf("consumed = %d, want 100", c.consumed)
	}
}

func TestCursor_WrapsIOErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	c := newCursor(&faultyReader{data: []byte{1, 2}, err: cause})

	err := c.readFull(make([]byte, 4))
	if !errors.Is(err, cause) {
		t.Fatalf("readFull() error = %v, want wrapped %v", err, cause)
	}
	if errors.Is(err, ErrUnexpectedEOF) {
		t.Error("non-EOF fault reported as ErrUnexpectedEOF")
	}

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("readFull() error type = %T, want *ScanError", err)
	}
	if scanErr.Offset != 2 {
		t.Errorf("Offset = %d, want 2", scanErr.Offset)
	}
}

func TestCursor_FailSnapshots(t *testing.T) {
	t.Parallel()

	c := newCursor(bytes.NewReader(nil))
	c.consumed = 1234
	c.elapsed = 5 * time.Second

	scanErr := c.fail(ErrFrameTooShort)
	if scanErr.Offset != 1234 {
		t.Errorf("Offset = %d, want 1234", scanErr.Offset)
	}
	if scanErr.AtDuration != 5*time.Second {
		t.Errorf("AtDuration = %v, want 5s", scanErr.AtDuration)
	}
	if !errors.Is(scanErr, ErrFrameTooShort) {
		t.Errorf("errors.Is(scanErr, ErrFrameTooShort) = false")
	}
}
