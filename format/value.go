package format

import (
	"fmt"
	"strconv"
	"time"
)

// formatExtra renders an extra value for text output. Strings that contain
// spaces, '=' or quotes are quoted so key=value pairs stay parseable.
func formatExtra(value any) string {
	switch v := value.(type) {
	case string:
		return maybeQuote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format(defaultTimeLayout)
	case error:
		return maybeQuote(v.Error())
	default:
		return maybeQuote(fmt.Sprint(v))
	}
}

func maybeQuote(s string) string {
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return false
}
