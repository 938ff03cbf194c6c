package jsonlineage

import (
	"io"

	"github.com/Salaah01/json-lineage/internal/scanner"
)

// A ByteSplitter splits the outer array one byte at a time.  It is the
// exact strategy: it tracks string literals and backslash escapes, so
// brackets appearing inside string content are treated as ordinary text and
// any whitespace layout is handled, including several elements on a single
// line.
type ByteSplitter struct {
	scanner *scanner.Scanner
	stack   BracketStack
	buf     ElementBuffer

	// String literal state.  A quote toggles insideString unless the
	// previous byte was an unescaped backslash.  prevEscape is true only
	// when the previous byte was a backslash that was not itself escaped,
	// so the '\\' in a `\\"` run does not suppress the quote's toggle.
	insideString bool
	prevEscape   bool
}

var _ Source = &ByteSplitter{}

// NewByteSplitter returns a ByteSplitter reading from in.
func NewByteSplitter(in io.Reader) *ByteSplitter {
	return &ByteSplitter{scanner: scanner.NewScanner(in)}
}

// Produce reads the input up to the end of the outer array, sending each
// completed top-level element on out.  It returns an error if the input
// does not start with '[', if a closing bracket does not match the bracket
// it closes, if the input ends mid-element, or if reading fails.
func (s *ByteSplitter) Produce(out chan<- Element) error {
	if err := readArrayStart(s.scanner); err != nil {
		return err
	}
	s.stack.Push('[')
	for {
		b, err := s.scanner.Read()
		if err != nil {
			return err
		}
		if b == scanner.EOF {
			if s.stack.Depth() > 1 {
				return truncatedError(&s.stack)
			}
			return nil
		}
		done, err := s.processByte(b, out)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// processByte advances the splitter by one byte.  It reports done when the
// outer array has just been closed, after which the remaining input is of
// no interest.
func (s *ByteSplitter) processByte(b byte, out chan<- Element) (done bool, err error) {
	switch {
	case b == '"':
		s.buf.AppendByte(b)
		if !s.prevEscape {
			s.insideString = !s.insideString
		}
	case !s.insideString && isOpeningBracket(b):
		s.stack.Push(b)
		s.buf.AppendByte(b)
	case !s.insideString && isClosingBracket(b):
		if err := s.stack.PopMatching(b, s.scanner.CurrentPos()); err != nil {
			return false, err
		}
		s.buf.AppendByte(b)
		switch s.stack.Depth() {
		case 1:
			// A top-level element just closed.
			out <- s.buf.Render()
			s.buf.Clear()
		case 0:
			// The outer array just closed.
			done = true
		}
	default:
		s.buf.AppendByte(b)
	}
	s.prevEscape = b == '\\' && !s.prevEscape
	return done, nil
}
