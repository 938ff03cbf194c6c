package jsonlineage

// A Source produces the top-level elements of the outer array, in input
// order, on a channel.  Both splitters implement it.
type Source interface {
	Produce(out chan<- Element) error
}

// A Sink consumes a stream of elements.  Use the ConsumeStream function to
// apply it.
type Sink interface {
	Consume(in <-chan Element) error
}

// StartStream uses the source to start producing elements and returns a new
// channel where they are produced.  This is always fast because the source
// runs in a goroutine.
//
// As a source can fail, a handleError function can be provided.  It is
// called, if non-nil, before the returned channel is closed.
func StartStream(source Source, handleError func(error)) <-chan Element {
	out := make(chan Element)
	go func() {
		defer close(out)
		err := source.Produce(out)
		if err != nil && handleError != nil {
			handleError(err)
		}
	}()
	return out
}

// ConsumeStream feeds the incoming elements to the sink.
func ConsumeStream(in <-chan Element, sink Sink) error {
	return sink.Consume(in)
}

// An AccumulatorSink collects the elements it consumes.  Used in tests.
type AccumulatorSink struct {
	elements []Element
}

var _ Sink = &AccumulatorSink{}

func (s *AccumulatorSink) Consume(in <-chan Element) error {
	for el := range in {
		s.elements = append(s.elements, el)
	}
	return nil
}

// Elements returns the elements consumed so far.
func (s *AccumulatorSink) Elements() []Element {
	return s.elements
}
