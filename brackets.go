package jsonlineage

import (
	"fmt"

	"github.com/Salaah01/json-lineage/internal/scanner"
)

// openingBracket returns the opening counterpart of a closing bracket, or 0
// if c is not a closing bracket.
func openingBracket(c byte) byte {
	switch c {
	case ']':
		return '['
	case '}':
		return '{'
	}
	return 0
}

func isOpeningBracket(c byte) bool {
	return c == '[' || c == '{'
}

func isClosingBracket(c byte) bool {
	return c == ']' || c == '}'
}

// A BracketStack records the brackets that have been opened but not yet
// closed.  Its depth is the single source of truth for how deeply nested the
// current position is and, in particular, for whether a top-level array
// element has just been completed (depth back to 1) or the outer array has
// just been closed (depth 0).
type BracketStack struct {
	stack []byte
}

// Push records an opening bracket as now open.
func (s *BracketStack) Push(c byte) {
	s.stack = append(s.stack, c)
}

// PopMatching removes the most recently opened bracket, checking that it is
// the opening counterpart of closing.  A mismatch, or an empty stack, means
// the input is not a well-formed JSON document.  This is not recoverable:
// carrying on would silently corrupt the output, so the returned
// *BracketMismatchError must abort the run.
func (s *BracketStack) PopMatching(closing byte, pos scanner.Pos) error {
	want := openingBracket(closing)
	if len(s.stack) == 0 {
		return &BracketMismatchError{Closing: closing, Want: want, Pos: pos}
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	if top != want {
		return &BracketMismatchError{Closing: closing, Want: want, Got: top, Pos: pos}
	}
	return nil
}

// Depth is the number of brackets currently open, counting the outermost
// array bracket.
func (s *BracketStack) Depth() int {
	return len(s.stack)
}

func (s *BracketStack) IsEmpty() bool {
	return len(s.stack) == 0
}

// Drain empties the stack and returns the brackets that were still open,
// most recently opened first.  Only used for diagnostics.
func (s *BracketStack) Drain() []byte {
	open := make([]byte, 0, len(s.stack))
	for i := len(s.stack) - 1; i >= 0; i-- {
		open = append(open, s.stack[i])
	}
	s.stack = s.stack[:0]
	return open
}

// A BracketMismatchError reports a closing bracket that does not match the
// most recently opened bracket, or that closes nothing at all.
type BracketMismatchError struct {
	Closing byte // the closing bracket found in the input
	Want    byte // the opening bracket it requires
	Got     byte // the bracket actually open, 0 if none was
	Pos     scanner.Pos
}

func (e *BracketMismatchError) Error() string {
	if e.Got == 0 {
		return fmt.Sprintf(
			"line %d col %d: unexpected %q: there is no open bracket to close",
			e.Pos.Line+1, e.Pos.Col, e.Closing,
		)
	}
	return fmt.Sprintf(
		"line %d col %d: mismatched brackets: %q closes %q but %q is open",
		e.Pos.Line+1, e.Pos.Col, e.Closing, e.Want, e.Got,
	)
}
