package format

import (
	"encoding/json"
	"time"
)

// Fixed keys emitted by the JSON formatter. Extras never displace them: on a
// key collision the fixed value wins.
const (
	jsonKeyTimestamp = "timestamp"
	jsonKeyLevel     = "level"
	jsonKeyLogger    = "logger"
	jsonKeyMessage   = "message"
	jsonKeyLocation  = "location"
)

// JSON renders one JSON object per record on a single line.
type JSON struct {
	includeExtras bool
	showLocation  bool
}

// NewJSON builds a JSON formatter. When includeExtras is true, every extra is
// merged at the top level of the emitted object.
func NewJSON(includeExtras bool) *JSON {
	return &JSON{includeExtras: includeExtras}
}

// NewJSONWithLocation builds a JSON formatter that also emits a "location"
// key carrying the source file and line.
func NewJSONWithLocation(includeExtras bool) *JSON {
	return &JSON{includeExtras: includeExtras, showLocation: true}
}

func (f *JSON) Format(rec Record) string {
	payload := make(map[string]any, 5+len(rec.Extras))
	if f.includeExtras {
		for _, extra := range rec.Extras {
			if extra.Key == "" {
				continue
			}
			payload[extra.Key] = jsonValue(extra.Value)
		}
	}

	payload[jsonKeyTimestamp] = rec.Time.Format(time.RFC3339)
	payload[jsonKeyLevel] = rec.Level.String()
	payload[jsonKeyLogger] = rec.Logger
	payload[jsonKeyMessage] = rec.Message
	if f.showLocation {
		payload[jsonKeyLocation] = rec.Location()
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		// A non-marshalable extra value; fall back to the fixed keys only.
		encoded, _ = json.Marshal(map[string]any{
			jsonKeyTimestamp: rec.Time.Format(time.RFC3339),
			jsonKeyLevel:     rec.Level.String(),
			jsonKeyLogger:    rec.Logger,
			jsonKeyMessage:   rec.Message,
		})
	}
	return string(encoded)
}

func jsonValue(value any) any {
	switch v := value.(type) {
	case error:
		return v.Error()
	case time.Duration:
		return v.String()
	default:
		return value
	}
}
