package format

import "strings"

// Compact renders a dense single-space layout with a bracketed single-letter
// level marker: "[I] 15:04:05 message".
type Compact struct {
	cfg Config
}

// NewCompact builds a compact formatter from cfg; zero fields take the
// CompactConfig defaults.
func NewCompact(cfg Config) (*Compact, error) {
	if cfg.Separator == "" {
		cfg.Separator = " "
	}
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = "15:04:05"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Compact{cfg: cfg}, nil
}

func (f *Compact) Format(rec Record) string {
	parts := make([]string, 0, 4)
	parts = append(parts, "["+rec.Level.Letter()+"]")
	if f.cfg.Time.Show {
		parts = append(parts, pad(rec.Time.Format(f.cfg.TimeLayout), f.cfg.Time.Width, f.cfg.Time.Align))
	}
	if f.cfg.Logger.Show {
		parts = append(parts, pad(rec.Logger, f.cfg.Logger.Width, f.cfg.Logger.Align))
	}
	parts = append(parts, rec.Message)

	line := strings.Join(parts, f.cfg.Separator)
	if f.cfg.IncludeExtras {
		line = appendExtras(line, rec.Extras)
	}
	return line
}
