package jsonlineage

import (
	"bytes"
	"regexp"
	"slices"
)

// An Element is the normalized text of one top-level array element, ready to
// be written out as a single JSON Lines record.  It is the original source
// text of the element, not re-serialized JSON.
type Element []byte

// lineBreakRun matches a maximal run of whitespace containing at least one
// line break.  Such runs are pretty-printer formatting between tokens and
// collapse to nothing.
var lineBreakRun = regexp.MustCompile(`\s*\n\s*`)

var commaBytes = []byte{','}

// An ElementBuffer accumulates the raw text of the element currently being
// assembled.  Its size is proportional to one element's serialized size,
// never to the whole input.
type ElementBuffer struct {
	buf bytes.Buffer
}

// AppendByte appends a single byte of element text.
func (b *ElementBuffer) AppendByte(c byte) {
	b.buf.WriteByte(c)
}

// Append appends a chunk of element text.
func (b *ElementBuffer) Append(p []byte) {
	b.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (b *ElementBuffer) Len() int {
	return b.buf.Len()
}

// Render returns the buffered text as a single line: every whitespace run
// spanning a line break collapses to nothing, then exactly one leading and
// one trailing separator comma (the commas that separated the element from
// its siblings in the source array) are stripped.  Render does not modify
// the buffer, so rendering twice without appends yields the same result.
func (b *ElementBuffer) Render() Element {
	out := lineBreakRun.ReplaceAll(b.buf.Bytes(), nil)
	out = bytes.TrimPrefix(out, commaBytes)
	out = bytes.TrimSuffix(out, commaBytes)
	// The buffer's storage is reused after Clear, so the rendering must not
	// alias it.
	return Element(slices.Clone(out))
}

// Clear empties the buffer so it can accumulate the next element.
func (b *ElementBuffer) Clear() {
	b.buf.Reset()
}
