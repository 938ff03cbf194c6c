package jsonlineage

import (
	"bufio"
	"io"
)

// Options configures a conversion.
type Options struct {
	// Messy selects the exact byte-at-a-time splitter, which tolerates
	// input that is not pretty-printed, for example several elements on a
	// single line.  It is considerably slower than the default line-based
	// splitter.
	Messy bool
}

// NewSource returns a Source producing the top-level elements of the JSON
// array read from r.
func NewSource(r io.Reader, opts Options) Source {
	if opts.Messy {
		return NewByteSplitter(r)
	}
	return NewLineSplitter(r)
}

// Convert reads a JSON array from r and writes it to w in JSON Lines
// format, one element per line, as the elements are recognized.  It returns
// the first error encountered: a malformed document, a read failure or a
// write failure.
func Convert(r io.Reader, w io.Writer, opts Options) error {
	var produceErr error
	out := bufio.NewWriter(w)
	elements := StartStream(NewSource(r, opts), func(err error) {
		produceErr = err
	})
	encoder := &JSONLEncoder{Printer: &LinePrinter{Writer: out}}
	if err := ConsumeStream(elements, encoder); err != nil {
		return err
	}
	// The element channel is closed, so the produce error is settled.
	// Elements recognized before the error are flushed regardless: output
	// is emitted as the input is read, not held back on failure.
	flushErr := out.Flush()
	if produceErr != nil {
		return produceErr
	}
	return flushErr
}
