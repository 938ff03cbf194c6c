// Package jsonlineage converts a single pretty-printed JSON array into JSON
// Lines: one compact line per top-level array element, emitted as soon as
// the element is recognized, without ever holding the whole document in
// memory.
//
// Two splitting strategies are provided:
//
//   - LineSplitter works on whole lines.  It is fast because it makes one
//     decision per line edge, but it assumes the input is pretty-printed
//     with at most one nesting change at each end of a line.
//   - ByteSplitter works byte by byte and tracks string literals and escape
//     sequences, so it handles any layout, including several elements on a
//     single line, at the cost of one decision per byte.
//
// Splitters produce elements on a channel (see Source and StartStream) and
// sinks such as JSONLEncoder consume them, so the core is usable without
// capturing standard output.  Convert wires a whole pipeline in one call.
//
// The jsonl command in cmd/jsonl exposes the pipeline as a command line
// tool.  You can install it with:
//
//	go install github.com/Salaah01/json-lineage/cmd/jsonl
package jsonlineage
