package scanner

import (
	"bytes"
	"io"
)

// Pos is a position in the input (0-based).
type Pos struct {
	Line int
	Col  int
}

// A Scanner reads its input one byte or one line at a time, keeping at most
// one buffer's worth of the input in memory.  The end of the input is
// reported with the EOF sentinel byte (resp. a nil line) rather than io.EOF,
// so callers can handle the last byte like any other.
type Scanner struct {
	reader io.Reader
	buf    []byte

	// The first unfilled position in buf
	// 0 <= fillIndex <= len(buf)
	fillIndex int

	// Current position in buf
	// 0 <= currentIndex <= fillIndex
	currentIndex int

	// Records lineno and colno of the current position (from when the
	// scanning started)
	currentPos Pos

	err error
}

func NewScanner(reader io.Reader) *Scanner {
	return NewScannerSize(reader, defaultBufSize)
}

func NewScannerSize(reader io.Reader, size int) *Scanner {
	return &Scanner{
		reader: reader,
		buf:    make([]byte, size),
	}
}

func (s *Scanner) fillBuf() {
	if s.currentIndex == s.fillIndex {
		s.currentIndex = 0
		s.fillIndex = 0
	} else if s.fillIndex == len(s.buf) {
		copy(s.buf, s.buf[s.currentIndex:s.fillIndex])
		s.fillIndex -= s.currentIndex
		s.currentIndex = 0
	}
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := s.reader.Read(s.buf[s.fillIndex:])
		s.fillIndex += n
		if err != nil {
			s.err = err
			return
		}
		if n > 0 {
			return
		}
	}
	s.err = io.ErrNoProgress
}

// Read returns the next byte of the input, or the EOF sentinel once the
// input is exhausted.  A non-nil error means the underlying reader failed.
func (s *Scanner) Read() (byte, error) {
	if s.currentIndex >= s.fillIndex {
		s.fillBuf()
	}
	if s.currentIndex < s.fillIndex {
		b := s.buf[s.currentIndex]
		switch {
		case b == '\n':
			s.currentPos.Line++
			s.currentPos.Col = 0
		case b < 0xC0:
			// This is the last byte in an utf8-encoded codepoint
			s.currentPos.Col++
		}
		s.currentIndex++
		return b, nil
	}
	return s.errOrEOF()
}

// Peek returns the next byte of the input without consuming it.
func (s *Scanner) Peek() (byte, error) {
	if s.currentIndex >= s.fillIndex {
		s.fillBuf()
	}
	if s.currentIndex < s.fillIndex {
		return s.buf[s.currentIndex], nil
	}
	return s.errOrEOF()
}

// ReadLine returns the next line of the input, including its terminator.
// The final line is returned without one if the input does not end with a
// newline.  Once the input is exhausted, ReadLine returns a nil line and a
// nil error.  The returned slice is owned by the caller.
func (s *Scanner) ReadLine() ([]byte, error) {
	var line []byte
	for {
		if s.currentIndex >= s.fillIndex {
			s.fillBuf()
		}
		if s.currentIndex >= s.fillIndex {
			if s.err == io.EOF {
				return line, nil
			}
			return nil, s.err
		}
		chunk := s.buf[s.currentIndex:s.fillIndex]
		if i := bytes.IndexByte(chunk, '\n'); i >= 0 {
			line = append(line, chunk[:i+1]...)
			s.currentIndex += i + 1
			s.currentPos.Line++
			s.currentPos.Col = 0
			return line, nil
		}
		line = append(line, chunk...)
		s.currentIndex = s.fillIndex
		s.currentPos.Col += len(chunk)
	}
}

// CurrentPos returns the position just after the last byte or line read.
func (s *Scanner) CurrentPos() Pos {
	return s.currentPos
}

func (s *Scanner) errOrEOF() (byte, error) {
	if s.err == io.EOF {
		return EOF, nil
	}
	return 0, s.err
}

const (
	maxConsecutiveEmptyReads = 100
	defaultBufSize           = 8192
)

// 0xFF is a byte that should not appear in a UTF-8 encoded stream of bytes.
const EOF byte = 0xFF
