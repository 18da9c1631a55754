package format

import "github.com/fatih/color"

// ColorTable maps levels to color names. A level absent from the table, or a
// color name the terminal layer does not know, renders without color.
type ColorTable map[Level]string

// DefaultColors returns the standard level→color mapping.
func DefaultColors() ColorTable {
	return ColorTable{
		LevelDebug:    "dim",
		LevelInfo:     "green",
		LevelWarning:  "yellow",
		LevelError:    "red",
		LevelCritical: "bold_red",
	}
}

// The terminal decision is made by whoever constructs a Color formatter, so
// each instance is forced on rather than left to the package's own stdout
// sniffing.
func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var colorsByName = map[string]*color.Color{
	"dim":      enabled(color.Faint),
	"gray":     enabled(color.Faint),
	"green":    enabled(color.FgGreen),
	"yellow":   enabled(color.FgYellow),
	"red":      enabled(color.FgRed),
	"bold_red": enabled(color.FgHiRed, color.Bold),
	"blue":     enabled(color.FgBlue),
	"magenta":  enabled(color.FgMagenta),
	"cyan":     enabled(color.FgCyan),
	"white":    enabled(color.FgWhite),
}

// Color wraps another formatter and colors each rendered line according to
// the record's level.
type Color struct {
	inner  Formatter
	colors ColorTable
}

// NewColor wraps inner with level-based coloring. A nil table uses
// DefaultColors; a nil inner falls back to the standard aligned style.
func NewColor(inner Formatter, colors ColorTable) *Color {
	if inner == nil {
		inner, _ = NewAligned(StandardConfig())
	}
	if colors == nil {
		colors = DefaultColors()
	}
	return &Color{inner: inner, colors: colors}
}

func (f *Color) Format(rec Record) string {
	line := f.inner.Format(rec)
	name, ok := f.colors[rec.Level]
	if !ok {
		return line
	}
	c, ok := colorsByName[name]
	if !ok {
		return line
	}
	return c.Sprint(line)
}
