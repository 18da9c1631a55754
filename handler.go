package advlog

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"advlog/format"
	"advlog/sink"
)

// LevelCritical extends slog's levels above Error for failures the process
// cannot recover from.
const LevelCritical = slog.Level(12)

func slogLevel(level format.Level) slog.Level {
	switch level {
	case format.LevelDebug:
		return slog.LevelDebug
	case format.LevelWarning:
		return slog.LevelWarn
	case format.LevelError:
		return slog.LevelError
	case format.LevelCritical:
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}

func recordLevel(level slog.Level) format.Level {
	switch {
	case level >= LevelCritical:
		return format.LevelCritical
	case level >= slog.LevelError:
		return format.LevelError
	case level >= slog.LevelWarn:
		return format.LevelWarning
	case level >= slog.LevelInfo:
		return format.LevelInfo
	default:
		return format.LevelDebug
	}
}

// sinkHandler bridges slog records to one formatter/sink pair. Formatting is
// pure; the sink serializes its own writes, so the handler holds no lock.
type sinkHandler struct {
	name      string
	formatter format.Formatter
	out       sink.Sink
	level     *slog.LevelVar
	source    bool
	attrs     []format.Extra
	groups    []string
}

func newSinkHandler(name string, formatter format.Formatter, out sink.Sink, level *slog.LevelVar, source bool) slog.Handler {
	if formatter == nil || out == nil {
		return noopHandler{}
	}
	if level == nil {
		level = new(slog.LevelVar)
	}
	return &sinkHandler{name: name, formatter: formatter, out: out, level: level, source: source}
}

func (h *sinkHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *sinkHandler) Handle(_ context.Context, record slog.Record) error {
	rec := format.Record{
		Time:    record.Time,
		Level:   recordLevel(record.Level),
		Logger:  h.name,
		Message: record.Message,
	}
	if h.source && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		rec.File = frame.File
		rec.Line = frame.Line
		rec.Function = frame.Function
	}

	extras := make([]format.Extra, 0, len(h.attrs)+record.NumAttrs())
	extras = append(extras, h.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		extras = appendAttr(extras, h.groups, attr)
		return true
	})
	rec.Extras = extras

	return h.out.Write(h.render(rec))
}

// render never lets a formatter failure reach the emitting caller: a panic
// during formatting degrades to the minimal level+message representation.
func (h *sinkHandler) render(rec format.Record) (line string) {
	defer func() {
		if r := recover(); r != nil {
			line = format.Fallback(rec)
		}
	}()
	return h.formatter.Format(rec)
}

func (h *sinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, attr := range attrs {
		clone.attrs = appendAttr(clone.attrs, clone.groups, attr)
	}
	return clone
}

func (h *sinkHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	if name != "" {
		clone.groups = append(clone.groups, name)
	}
	return clone
}

func (h *sinkHandler) clone() *sinkHandler {
	clone := &sinkHandler{
		name:      h.name,
		formatter: h.formatter,
		out:       h.out,
		level:     h.level,
		source:    h.source,
	}
	if len(h.attrs) > 0 {
		clone.attrs = append([]format.Extra(nil), h.attrs...)
	}
	if len(h.groups) > 0 {
		clone.groups = append([]string(nil), h.groups...)
	}
	return clone
}

func appendAttr(dst []format.Extra, groups []string, attr slog.Attr) []format.Extra {
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		next := groups
		if attr.Key != "" {
			next = append(append([]string(nil), groups...), attr.Key)
		}
		for _, member := range attr.Value.Group() {
			dst = appendAttr(dst, next, member)
		}
		return dst
	}
	key := attr.Key
	if len(groups) > 0 && key != "" {
		key = strings.Join(groups, ".") + "." + key
	}
	if key == "" {
		return dst
	}
	return append(dst, format.Extra{Key: key, Value: attr.Value.Any()})
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (noopHandler) WithAttrs([]slog.Attr) slog.Handler        { return noopHandler{} }
func (noopHandler) WithGroup(string) slog.Handler             { return noopHandler{} }

// NewNop returns a logger that discards everything, for wiring that cannot
// fail and for tests.
func NewNop() *slog.Logger {
	return slog.New(noopHandler{})
}
