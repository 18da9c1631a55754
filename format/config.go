package format

import (
	"fmt"
	"strings"
)

// Alignment controls where padding is added when a field is narrower than its
// configured width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// ParseAlignment maps "left", "right", or "center" to an Alignment. Unknown
// values are configuration errors.
func ParseAlignment(value string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left", "":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	default:
		return AlignLeft, fmt.Errorf("%w: unknown alignment %q", ErrConfiguration, value)
	}
}

func (a Alignment) valid() bool {
	switch a {
	case AlignLeft, AlignRight, AlignCenter:
		return true
	default:
		return false
	}
}

// FieldConfig describes one fixed column of a rendered line.
type FieldConfig struct {
	Show  bool
	Width int // minimum display width; 0 emits the field at natural length
	Align Alignment
}

// Field names accepted by the column layout.
const (
	FieldTime     = "time"
	FieldLevel    = "level"
	FieldLogger   = "logger"
	FieldLocation = "location"
	FieldMessage  = "message"
)

// Config is the immutable value object behind every formatter instance. Build
// one from a *Config constructor below, adjust it, and hand it to a formatter;
// many records may be formatted through the same Config concurrently.
type Config struct {
	Time     FieldConfig
	Level    FieldConfig
	Logger   FieldConfig
	Location FieldConfig

	TimeLayout    string
	Separator     string
	IndentSize    int
	IncludeExtras bool

	// Columns orders the column style's fields. Ignored by other styles.
	Columns []string

	// Colors maps levels to color names for the color formatter.
	Colors ColorTable
}

const defaultTimeLayout = "2006-01-02 15:04:05"

// StandardConfig returns the aligned style defaults: timestamp, level, and
// source location columns followed by an unbounded message.
func StandardConfig() Config {
	return Config{
		Time:       FieldConfig{Show: true, Width: 19, Align: AlignLeft},
		Level:      FieldConfig{Show: true, Width: 8, Align: AlignLeft},
		Logger:     FieldConfig{Show: false, Width: 12, Align: AlignLeft},
		Location:   FieldConfig{Show: true, Width: 25, Align: AlignLeft},
		TimeLayout: defaultTimeLayout,
		Separator:  " | ",
	}
}

// TableConfig returns the table style defaults: every fixed field enabled with
// pipe separators so rows from one logger line up as columns.
func TableConfig() Config {
	cfg := StandardConfig()
	cfg.Logger.Show = true
	return cfg
}

// CompactConfig returns the compact style defaults: single-letter level,
// clock-only timestamp, single-space separators.
func CompactConfig() Config {
	return Config{
		Time:       FieldConfig{Show: true, Width: 8, Align: AlignLeft},
		Level:      FieldConfig{Show: true},
		TimeLayout: "15:04:05",
		Separator:  " ",
	}
}

// ColumnConfig returns the column style defaults with an explicit ordering.
func ColumnConfig() Config {
	cfg := StandardConfig()
	cfg.Columns = []string{FieldTime, FieldLevel, FieldLocation, FieldMessage}
	return cfg
}

func (c Config) withDefaults() Config {
	if c.TimeLayout == "" {
		c.TimeLayout = defaultTimeLayout
	}
	if c.Separator == "" {
		c.Separator = " | "
	}
	return c
}

func (c Config) validate() error {
	for _, field := range []FieldConfig{c.Time, c.Level, c.Logger, c.Location} {
		if !field.Align.valid() {
			return fmt.Errorf("%w: invalid alignment %d", ErrConfiguration, field.Align)
		}
		if field.Width < 0 {
			return fmt.Errorf("%w: negative field width %d", ErrConfiguration, field.Width)
		}
	}
	for _, column := range c.Columns {
		switch column {
		case FieldTime, FieldLevel, FieldLogger, FieldLocation, FieldMessage:
		default:
			return fmt.Errorf("%w: unsupported field %q", ErrFormat, column)
		}
	}
	return nil
}
