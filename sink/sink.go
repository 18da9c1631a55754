package sink

import "errors"

// ErrSink marks failures opening, writing, or rotating a destination. Sink
// errors are surfaced to the caller that attached the sink; a logging layer
// that silently drops its own destination is worse than one that fails loudly.
var ErrSink = errors.New("sink error")

// Sink persists or displays one rendered log line per Write call. The sink
// appends the trailing newline itself.
type Sink interface {
	Write(line string) error
	Close() error
	Name() string
}
