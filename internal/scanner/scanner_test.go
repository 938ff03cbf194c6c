package scanner

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func strScanner(s string) *Scanner {
	return NewScanner(strings.NewReader(s))
}

func assertRead(t *testing.T, s *Scanner, xb byte, xerr error) {
	t.Helper()
	b, err := s.Read()
	if b != xb {
		t.Fatalf("Read: expected b = %q, got %q", xb, b)
	}
	if err != xerr {
		t.Fatalf("Read: expected err = %s, got %s", xerr, err)
	}
}

func assertPeek(t *testing.T, s *Scanner, xb byte, xerr error) {
	t.Helper()
	b, err := s.Peek()
	if b != xb {
		t.Fatalf("Peek: expected b = %q, got %q", xb, b)
	}
	if err != xerr {
		t.Fatalf("Peek: expected err = %s, got %s", xerr, err)
	}
}

func assertReadLine(t *testing.T, s *Scanner, xline string) {
	t.Helper()
	line, err := s.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: unexpected error %s", err)
	}
	if string(line) != xline {
		t.Fatalf("ReadLine: expected %q, got %q", xline, line)
	}
}

func assertEndOfLines(t *testing.T, s *Scanner) {
	t.Helper()
	line, err := s.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: unexpected error %s", err)
	}
	if line != nil {
		t.Fatalf("ReadLine: expected end of input, got %q", line)
	}
}

func assertCurrentPos(t *testing.T, s *Scanner, line, col int) {
	t.Helper()
	pos := s.CurrentPos()
	if pos.Line != line || pos.Col != col {
		t.Fatalf("CurrentPos: expected (%d, %d) got (%d, %d)", line, col, pos.Line, pos.Col)
	}
}

func TestSimple(t *testing.T) {
	scanner := strScanner("bonjour")
	assertRead(t, scanner, 'b', nil)
	assertRead(t, scanner, 'o', nil)
	assertCurrentPos(t, scanner, 0, 2)
	assertPeek(t, scanner, 'n', nil)
	assertCurrentPos(t, scanner, 0, 2)
	assertRead(t, scanner, 'n', nil)
	assertRead(t, scanner, 'j', nil)
	assertRead(t, scanner, 'o', nil)
	assertRead(t, scanner, 'u', nil)
	assertRead(t, scanner, 'r', nil)
	assertCurrentPos(t, scanner, 0, 7)
	assertRead(t, scanner, EOF, nil)
	assertRead(t, scanner, EOF, nil)
}

func TestPosTracksLines(t *testing.T) {
	scanner := strScanner("a\nbc\n")
	assertRead(t, scanner, 'a', nil)
	assertCurrentPos(t, scanner, 0, 1)
	assertRead(t, scanner, '\n', nil)
	assertCurrentPos(t, scanner, 1, 0)
	assertRead(t, scanner, 'b', nil)
	assertCurrentPos(t, scanner, 1, 1)
}

func TestReadLine(t *testing.T) {
	scanner := strScanner("line one\nline two\nlast line")
	assertReadLine(t, scanner, "line one\n")
	assertCurrentPos(t, scanner, 1, 0)
	assertReadLine(t, scanner, "line two\n")
	assertReadLine(t, scanner, "last line")
	assertEndOfLines(t, scanner)
	assertEndOfLines(t, scanner)
}

func TestReadThenReadLine(t *testing.T) {
	// This is the access pattern of the converter: one byte to check the
	// document shape, then the rest line by line.
	scanner := strScanner("[\n  1,\n]\n")
	assertRead(t, scanner, '[', nil)
	assertReadLine(t, scanner, "\n")
	assertReadLine(t, scanner, "  1,\n")
	assertReadLine(t, scanner, "]\n")
	assertEndOfLines(t, scanner)
}

func TestLargeInput(t *testing.T) {
	const line = "A very long string.\n"
	scanner := NewScannerSize(strings.NewReader(strings.Repeat(line, 100)), 16)
	// Check we get the correct bytes after the buffer is refilled.
	var acc []byte
	lc := 0
	for lc < 10 {
		b, err := scanner.Read()
		if err != nil {
			t.Fatal("unexpected error")
		}
		acc = append(acc, b)
		if b == '\n' {
			lc++
		}
	}
	if string(acc) != strings.Repeat(line, 10) {
		t.Fatalf("incorrect input")
	}
	// Check lines spanning several buffer fills are assembled correctly.
	for i := 10; i < 100; i++ {
		assertReadLine(t, scanner, line)
	}
	assertEndOfLines(t, scanner)
	assertCurrentPos(t, scanner, 100, 0)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReaderErrorSurfaces(t *testing.T) {
	scanner := NewScanner(io.MultiReader(strings.NewReader("ab"), failingReader{}))
	assertRead(t, scanner, 'a', nil)
	assertRead(t, scanner, 'b', nil)
	if _, err := scanner.Read(); err == nil {
		t.Fatal("Read: expected error, got nil")
	}
	scanner = NewScanner(io.MultiReader(strings.NewReader("ab"), failingReader{}))
	if _, err := scanner.ReadLine(); err == nil {
		t.Fatal("ReadLine: expected error, got nil")
	}
}
