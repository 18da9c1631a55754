package format

import "strings"

// Styles understood by the factory.
const (
	StyleStandard = "standard"
	StyleTable    = "table"
	StyleCompact  = "compact"
	StyleColumn   = "column"
)

// New returns a preconfigured formatter for the named style. An unrecognized
// style degrades to the standard style instead of failing; availability wins
// over strictness here because the result is only a layout choice.
func New(style string) Formatter {
	f, _ := NewWithConfig(style, defaultConfig(style))
	return f
}

// NewWithConfig builds the named style from an explicit configuration.
// Configuration problems (bad alignment, unknown column field) are reported;
// an unrecognized style still degrades to standard.
func NewWithConfig(style string, cfg Config) (Formatter, error) {
	switch normalizeStyle(style) {
	case StyleCompact:
		return NewCompact(cfg)
	case StyleTable, StyleColumn:
		return NewAligned(cfg)
	default:
		return NewAligned(cfg)
	}
}

func defaultConfig(style string) Config {
	switch normalizeStyle(style) {
	case StyleTable:
		return TableConfig()
	case StyleCompact:
		return CompactConfig()
	case StyleColumn:
		return ColumnConfig()
	default:
		return StandardConfig()
	}
}

func normalizeStyle(style string) string {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleTable:
		return StyleTable
	case StyleCompact:
		return StyleCompact
	case StyleColumn:
		return StyleColumn
	default:
		return StyleStandard
	}
}
