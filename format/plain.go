package format

import "strings"

// Plain renders "timestamp [LEVEL] message" with no column padding and no
// color. It is the fallback representation used when a richer formatter fails.
type Plain struct {
	timeLayout string
}

// NewPlain builds the plain formatter.
func NewPlain() *Plain {
	return &Plain{timeLayout: defaultTimeLayout}
}

func (f *Plain) Format(rec Record) string {
	var b strings.Builder
	if !rec.Time.IsZero() {
		b.WriteString(rec.Time.Format(f.timeLayout))
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteString(rec.Level.String())
	b.WriteString("] ")
	b.WriteString(rec.Message)
	return b.String()
}

// Fallback renders the minimal "LEVEL message" representation emitted when a
// formatter panics or otherwise cannot render a record. It never fails.
func Fallback(rec Record) string {
	return rec.Level.String() + " " + rec.Message
}
