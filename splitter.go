package jsonlineage

import (
	"errors"
	"fmt"

	"github.com/Salaah01/json-lineage/internal/scanner"
)

// ErrTruncated reports input that ended while elements were still open.
var ErrTruncated = errors.New("unexpected end of input")

// readArrayStart consumes the first byte of the input and checks that it
// opens a top-level array.  No leading whitespace is allowed: the document
// must begin with '['.
func readArrayStart(s *scanner.Scanner) error {
	b, err := s.Read()
	if err != nil {
		return err
	}
	if b == scanner.EOF {
		return errors.New("empty input: the document must start with '['")
	}
	if b != '[' {
		return fmt.Errorf("the first character of the input must be '[', not %q", b)
	}
	return nil
}

func truncatedError(stack *BracketStack) error {
	depth := stack.Depth()
	return fmt.Errorf("%w: %d open bracket(s) left unclosed: %q", ErrTruncated, depth, stack.Drain())
}
