package jsonlineage

import (
	"bytes"
	"io"

	"github.com/Salaah01/json-lineage/internal/scanner"
)

// A LineSplitter splits the outer array one trimmed line at a time,
// inferring nesting changes from each line's first and last significant
// character only.  It is faster than ByteSplitter because it makes one
// decision per line edge, but it is only correct for pretty-printed input
// where each line carries at most the beginning or the end of one nesting
// level (plus the combined `},{` form a pretty-printer can produce between
// siblings).  It does not inspect string literals: a bracket at the edge of
// a line is always taken as structural.
type LineSplitter struct {
	scanner *scanner.Scanner
	stack   BracketStack
	buf     ElementBuffer
}

var _ Source = &LineSplitter{}

// NewLineSplitter returns a LineSplitter reading from in.
func NewLineSplitter(in io.Reader) *LineSplitter {
	return &LineSplitter{scanner: scanner.NewScanner(in)}
}

// Produce reads the input up to the end of the outer array, sending each
// completed top-level element on out.  The error conditions are the same as
// for ByteSplitter.Produce.
func (s *LineSplitter) Produce(out chan<- Element) error {
	if err := readArrayStart(s.scanner); err != nil {
		return err
	}
	s.stack.Push('[')
	for {
		line, err := s.scanner.ReadLine()
		if err != nil {
			return err
		}
		if line == nil {
			if s.stack.Depth() > 1 {
				return truncatedError(&s.stack)
			}
			return nil
		}
		done, err := s.processLine(line, out)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// processLine advances the splitter by one line.  End-of-line transitions
// are resolved before the start-of-line closing case, matching how a
// pretty-printer closes the previous element before opening the next on a
// combined line such as `},{`.
func (s *LineSplitter) processLine(line []byte, out chan<- Element) (done bool, err error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return false, nil
	}
	startChar := line[0]
	endChar := endTransition(line)

	if isOpeningBracket(startChar) {
		s.stack.Push(startChar)
	}
	if isClosingBracket(endChar) {
		if err := s.stack.PopMatching(endChar, s.scanner.CurrentPos()); err != nil {
			return false, err
		}
	}
	if isOpeningBracket(endChar) {
		s.stack.Push(endChar)
	}
	if isClosingBracket(startChar) {
		if err := s.stack.PopMatching(startChar, s.scanner.CurrentPos()); err != nil {
			return false, err
		}
	}

	s.buf.Append(line)

	switch s.stack.Depth() {
	case 1:
		out <- s.buf.Render()
		s.buf.Clear()
	case 0:
		done = true
	}
	return done, nil
}

// endTransition reports the character ending the line for bracket-tracking
// purposes.  A single trailing separator comma is ignored.  The neutral 0
// byte is reported when the line is a single character (its one bracket is
// already accounted for as the start character) and when the line ends with
// an empty `{}` or `[]` pair, which opened and closed on this same line and
// must not touch the stack at all.
func endTransition(line []byte) byte {
	cleaned := bytes.TrimSuffix(line, commaBytes)
	if len(cleaned) <= 1 {
		return 0
	}
	last := cleaned[len(cleaned)-1]
	if isClosingBracket(last) && cleaned[len(cleaned)-2] == openingBracket(last) {
		// The pair cancels out.
		return 0
	}
	return last
}
