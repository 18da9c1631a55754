package format

import (
	"path/filepath"
	"strconv"
	"time"
)

// Extra is one caller-supplied key/value pair attached to a single emission.
// Extras keep their emission order so rendered output is deterministic.
type Extra struct {
	Key   string
	Value any
}

// Record is an immutable per-emission snapshot consumed by a formatter.
type Record struct {
	Time     time.Time
	Level    Level
	Logger   string
	File     string
	Line     int
	Function string
	Message  string
	Extras   []Extra
}

// Location renders the source position as "file:line" using the base file
// name, or an empty string when the record carries no source information.
func (r Record) Location() string {
	if r.File == "" {
		return ""
	}
	return filepath.Base(r.File) + ":" + strconv.Itoa(r.Line)
}

// Extra returns the value for key and whether it is present.
func (r Record) Extra(key string) (any, bool) {
	for _, extra := range r.Extras {
		if extra.Key == key {
			return extra.Value, true
		}
	}
	return nil, false
}
