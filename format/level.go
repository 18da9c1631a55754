package format

import (
	"fmt"
	"strings"
)

// Level orders log severities from Debug (lowest) to Critical (highest).
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// String returns the upper-case level word used in rendered output.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Letter returns the single-character marker used by the compact style.
func (l Level) Letter() string {
	switch l {
	case LevelDebug:
		return "D"
	case LevelInfo:
		return "I"
	case LevelWarning:
		return "W"
	case LevelError:
		return "E"
	case LevelCritical:
		return "C"
	default:
		return "?"
	}
}

// ParseLevel maps a level name to a Level. Unknown names fall back to Info so
// a bad setting degrades to sensible output instead of failing an emission.
func ParseLevel(value string) Level {
	level, err := ParseLevelStrict(value)
	if err != nil {
		return LevelInfo
	}
	return level
}

// ParseLevelStrict maps a level name to a Level and reports unknown names as
// configuration errors. Use it where misconfiguration should fail fast.
func ParseLevelStrict(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("%w: unknown level %q", ErrConfiguration, value)
	}
}
