package format

import "strings"

// Indented wraps another formatter and indents the continuation lines of
// multi-line messages so they hang under the first line. Line count and order
// are preserved.
type Indented struct {
	inner  Formatter
	indent string
}

// NewIndented wraps inner with continuation-line indentation of indentSize
// spaces. A nil inner falls back to the standard aligned style.
func NewIndented(inner Formatter, indentSize int) *Indented {
	if inner == nil {
		inner, _ = NewAligned(StandardConfig())
	}
	if indentSize < 0 {
		indentSize = 0
	}
	return &Indented{inner: inner, indent: strings.Repeat(" ", indentSize)}
}

func (f *Indented) Format(rec Record) string {
	lines := strings.Split(rec.Message, "\n")
	if len(lines) == 1 {
		return f.inner.Format(rec)
	}

	head := rec
	head.Message = lines[0]
	out := make([]string, 0, len(lines))
	out = append(out, f.inner.Format(head))
	for _, line := range lines[1:] {
		out = append(out, f.indent+line)
	}
	return strings.Join(out, "\n")
}
