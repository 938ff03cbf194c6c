package jsonlineage

// A JSONLEncoder outputs each element it consumes as one line, in stream
// order, using the given Printer instance.  With a non-nil Colorizer the
// line is colorized for terminal display.
type JSONLEncoder struct {
	Printer
	*Colorizer
}

var _ Sink = &JSONLEncoder{}

// Consume writes the elements from the given channel, one per line.
//
// An error can be returned if the Printer could not perform some writing
// operation.  A typical example is an attempt to write to a closed pipe.
func (e *JSONLEncoder) Consume(in <-chan Element) (err error) {
	defer CatchPrinterError(&err)
	for el := range in {
		e.Colorizer.PrintElement(e.Printer, el)
		e.Printer.NewLine()
	}
	return nil
}
