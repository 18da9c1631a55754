package format

import "strings"

// Formatter renders one record into a text line (or several, for multi-line
// messages). Implementations are safe for concurrent use.
type Formatter interface {
	Format(rec Record) string
}

// Aligned renders fixed-width columns followed by an unbounded message field.
// The standard, table, and column styles are all Aligned instances with
// different Config defaults.
type Aligned struct {
	cfg Config
}

// NewAligned builds an aligned formatter. The zero Config is usable; call
// StandardConfig and friends for the preconfigured styles.
func NewAligned(cfg Config) (*Aligned, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Aligned{cfg: cfg}, nil
}

// Config returns the formatter's immutable configuration.
func (f *Aligned) Config() Config {
	return f.cfg
}

func (f *Aligned) Format(rec Record) string {
	columns := f.cfg.Columns
	if len(columns) == 0 {
		columns = []string{FieldTime, FieldLevel, FieldLogger, FieldLocation, FieldMessage}
	}

	parts := make([]string, 0, len(columns)+1)
	sawMessage := false
	for _, column := range columns {
		switch column {
		case FieldTime:
			if f.cfg.Time.Show {
				parts = append(parts, pad(rec.Time.Format(f.cfg.TimeLayout), f.cfg.Time.Width, f.cfg.Time.Align))
			}
		case FieldLevel:
			if f.cfg.Level.Show {
				parts = append(parts, pad(rec.Level.String(), f.cfg.Level.Width, f.cfg.Level.Align))
			}
		case FieldLogger:
			if f.cfg.Logger.Show {
				parts = append(parts, pad(rec.Logger, f.cfg.Logger.Width, f.cfg.Logger.Align))
			}
		case FieldLocation:
			if f.cfg.Location.Show {
				parts = append(parts, pad(rec.Location(), f.cfg.Location.Width, f.cfg.Location.Align))
			}
		case FieldMessage:
			parts = append(parts, rec.Message)
			sawMessage = true
		}
	}
	if !sawMessage {
		parts = append(parts, rec.Message)
	}

	line := strings.Join(parts, f.cfg.Separator)
	if f.cfg.IncludeExtras {
		line = appendExtras(line, rec.Extras)
	}
	return line
}

func appendExtras(line string, extras []Extra) string {
	if len(extras) == 0 {
		return line
	}
	var b strings.Builder
	b.WriteString(line)
	for _, extra := range extras {
		if extra.Key == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(extra.Key)
		b.WriteByte('=')
		b.WriteString(formatExtra(extra.Value))
	}
	return b.String()
}
