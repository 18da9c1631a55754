package advlog

import (
	"advlog/format"
	"advlog/sink"
)

// Error kinds surfaced by this package, re-exported from the packages that
// own them so callers can errors.Is against a single import.
var (
	// ErrConfiguration marks invalid manager or formatter settings, such as
	// a merged file strategy with no shared file configured.
	ErrConfiguration = format.ErrConfiguration

	// ErrFormat marks an invalid formatter layout, surfaced at construction.
	ErrFormat = format.ErrFormat

	// ErrSink marks a destination that cannot be opened, written, or
	// rotated. Never swallowed: it propagates from Register and Initialize.
	ErrSink = sink.ErrSink
)
