package jsonlineage

import (
	"fmt"
	"io"
)

// The Printer interface is used to output JSON Lines records.
//
// PrintBytes() outputs bytes at the current position
// NewLine() terminates the current record
//
// The methods do not return an error because for this program it's assumed
// to be an exceptional case that outputting results in an error and the only
// sensible outcome is to stop.  Instead, implementations are expected to
// panic with a *PrinterError when they encounter an error.  A user of the
// Printer interface can use
//
//	func printingFunction(p Printer) (err error) {
//	    defer CatchPrinterError(&err)
//	    return doSomePrinting(p)
//	}
//
// to capture such errors.
type Printer interface {
	PrintBytes([]byte)
	NewLine()
}

// CatchPrinterError can be used to capture panics caused by a Printer
// because of an error encountered while attempting to send output.  See the
// Printer interface documentation for details.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if ok {
			*err = perr
		} else {
			panic(r)
		}
	}
}

// A PrinterError contains an error that occurred while a Printer
// implementation was sending some output.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

// LinePrinter implements a Printer which uses an io.Writer to send output.
// If Flusher is not nil it is flushed after every line, so that output
// appears promptly when writing to a terminal.
type LinePrinter struct {
	io.Writer
	Flusher interface{ Flush() error }
}

var _ Printer = &LinePrinter{}

// PrintBytes sends the given bytes verbatim to the printer's writer.
func (p *LinePrinter) PrintBytes(b []byte) {
	_, err := p.Write(b)
	if err != nil {
		panic(wrapError(err))
	}
}

// NewLine outputs '\n', ending the current record.
func (p *LinePrinter) NewLine() {
	_, err := p.Write(newLineBytes)
	if err != nil {
		panic(wrapError(err))
	}
	if p.Flusher != nil {
		if err := p.Flusher.Flush(); err != nil {
			panic(wrapError(err))
		}
	}
}

func wrapError(err error) *PrinterError {
	return &PrinterError{Err: err}
}

var newLineBytes = []byte{'\n'}
