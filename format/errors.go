package format

import "errors"

var (
	// ErrConfiguration marks invalid formatter settings such as an unknown
	// alignment or level name. Surfaced at construction, not per emission.
	ErrConfiguration = errors.New("configuration error")

	// ErrFormat marks an unsupported field name in a column layout. Also
	// surfaced at construction so misconfiguration fails fast.
	ErrFormat = errors.New("format error")
)
