package advlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"advlog/format"
	"advlog/sink"
)

// FileStrategy decides how a registered logger's output maps to files.
type FileStrategy string

const (
	// StrategySeparate attaches a dedicated file sink owned by the handle.
	StrategySeparate FileStrategy = "separate"
	// StrategyMerged attaches the manager's shared file sink.
	StrategyMerged FileStrategy = "merged"
	// StrategyNone attaches no file sink.
	StrategyNone FileStrategy = "none"
)

// Options fixes a Manager's shared resources and per-logger defaults. The
// snapshot applies to loggers registered afterward; changing a Manager's
// options later does not retroactively rewire existing handles.
type Options struct {
	// SharedConsole makes every registered logger that wants console output
	// write through one console sink instead of a private one.
	SharedConsole bool

	// ConsoleWriter overrides the console destination; defaults to stderr.
	ConsoleWriter io.Writer

	// SharedFile, when set, is opened once and attached to every logger
	// registered with StrategyMerged.
	SharedFile     string
	SharedFileMode sink.FileMode

	// UseColor forces level-based coloring on console output. When unset,
	// color is applied only when the console stream is an interactive
	// terminal.
	UseColor bool

	// Defaults applied to registrations that leave the field unset.
	Level        format.Level
	Style        string
	ShowLocation bool

	// SessionID, when set, is attached to every record as a session_id extra.
	SessionID string
}

// Registration describes one named logger. The zero value attaches a console
// sink, no file, and the manager's default level and style.
type Registration struct {
	FileStrategy FileStrategy
	FilePath     string
	FileMode     sink.FileMode

	// DisableConsole opts out of console output; by default every handle
	// writes to the console (shared or private).
	DisableConsole bool

	Level         format.Level
	HasLevel      bool // distinguishes an explicit Debug (zero value) from "use default"
	Style         string
	IncludeExtras bool
}

// Handle binds a logical logger name to its sinks and strategy. Handles are
// owned by the Manager that registered them; identity is the name.
type Handle struct {
	name        string
	logger      *slog.Logger
	level       *slog.LevelVar
	fileSink    *sink.File
	consoleSink *sink.Console
	ownsFile    bool
	ownsConsole bool
	strategy    FileStrategy
}

// Name returns the logical logger name the handle is registered under.
func (h *Handle) Name() string { return h.name }

// Logger returns the slog logger wired to the handle's sinks.
func (h *Handle) Logger() *slog.Logger { return h.logger }

// FilePath returns the path of the handle's file sink, or "" without one.
func (h *Handle) FilePath() string {
	if h.fileSink == nil {
		return ""
	}
	return h.fileSink.Path()
}

// Strategy returns the file strategy the handle was registered with.
func (h *Handle) Strategy() FileStrategy { return h.strategy }

// SetLevel changes the handle's minimum level. Safe while logging.
func (h *Handle) SetLevel(level format.Level) {
	h.level.Set(slogLevel(level))
}

// Debug logs at debug level. Args follow slog conventions.
func (h *Handle) Debug(msg string, args ...any) { h.logger.Debug(msg, args...) }

// Info logs at info level.
func (h *Handle) Info(msg string, args ...any) { h.logger.Info(msg, args...) }

// Warning logs at warning level.
func (h *Handle) Warning(msg string, args ...any) { h.logger.Warn(msg, args...) }

// Error logs at error level.
func (h *Handle) Error(msg string, args ...any) { h.logger.Error(msg, args...) }

// Critical logs above error level for unrecoverable failures.
func (h *Handle) Critical(msg string, args ...any) {
	h.logger.Log(context.Background(), LevelCritical, msg, args...)
}

func (h *Handle) close() error {
	var firstErr error
	if h.ownsFile && h.fileSink != nil {
		if err := h.fileSink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if h.ownsConsole && h.consoleSink != nil {
		if err := h.consoleSink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Manager is the registry mapping names to handles. Construct one per
// context and pass it by reference; there is no hidden process-wide instance
// behind it. All mutating operations serialize under one mutex so two
// goroutines cannot race a duplicate registration for the same name.
type Manager struct {
	mu            sync.Mutex
	opts          Options
	handles       map[string]*Handle
	sharedConsole *sink.Console
	sharedFile    *sink.File
	closed        bool
}

// NewManager builds a registry. The shared file, when configured, is opened
// eagerly so a broken destination fails here instead of at first emission.
func NewManager(opts Options) (*Manager, error) {
	m := &Manager{opts: opts, handles: make(map[string]*Handle)}
	if opts.SharedConsole {
		m.sharedConsole = sink.NewConsole(opts.ConsoleWriter)
	}
	if strings.TrimSpace(opts.SharedFile) != "" {
		file, err := sink.NewFile(opts.SharedFile, sink.FileOptions{Mode: opts.SharedFileMode})
		if err != nil {
			return nil, err
		}
		m.sharedFile = file
	}
	return m, nil
}

// Register creates (or returns) the handle for name. Registration is
// idempotent by name: a repeat call returns the existing handle unchanged and
// ignores the new arguments; strategies are never merged after the fact.
func (m *Manager) Register(name string, reg Registration) (*Handle, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty logger name", ErrConfiguration)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, fmt.Errorf("%w: manager is closed", ErrConfiguration)
	}
	if existing, ok := m.handles[name]; ok {
		return existing, nil
	}

	handle, err := m.buildHandle(name, reg)
	if err != nil {
		return nil, err
	}
	m.handles[name] = handle
	return handle, nil
}

// RegisterGroup registers every name with the same settings and returns the
// handles keyed by name. Names already registered keep their existing handle.
func (m *Manager) RegisterGroup(names []string, reg Registration) (map[string]*Handle, error) {
	group := make(map[string]*Handle, len(names))
	for _, name := range names {
		handle, err := m.Register(name, reg)
		if err != nil {
			return group, err
		}
		group[name] = handle
	}
	return group, nil
}

// buildHandle wires formatter, sinks, and slog plumbing. Caller holds the
// mutex.
func (m *Manager) buildHandle(name string, reg Registration) (*Handle, error) {
	style := reg.Style
	if style == "" {
		style = m.opts.Style
	}
	baseFormatter := format.New(style)
	if reg.IncludeExtras {
		cfg := formatConfigFor(style)
		cfg.IncludeExtras = true
		formatter, err := format.NewWithConfig(style, cfg)
		if err != nil {
			return nil, err
		}
		baseFormatter = formatter
	}

	level := m.opts.Level
	if reg.HasLevel {
		level = reg.Level
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slogLevel(level))

	handle := &Handle{name: name, level: levelVar, strategy: reg.FileStrategy}
	if handle.strategy == "" {
		handle.strategy = StrategyNone
	}

	handlers := make([]slog.Handler, 0, 2)

	if !reg.DisableConsole {
		console := m.sharedConsole
		if console == nil {
			console = sink.NewConsole(m.opts.ConsoleWriter)
			handle.ownsConsole = true
		}
		handle.consoleSink = console
		consoleFormatter := baseFormatter
		if m.opts.UseColor || console.IsTerminal() {
			consoleFormatter = format.NewColor(baseFormatter, nil)
		}
		handlers = append(handlers, newSinkHandler(name, consoleFormatter, console, levelVar, m.opts.ShowLocation))
	}

	switch handle.strategy {
	case StrategySeparate:
		if strings.TrimSpace(reg.FilePath) == "" {
			return nil, fmt.Errorf("%w: separate file strategy for %q needs a file path", ErrConfiguration, name)
		}
		file, err := sink.NewFile(reg.FilePath, sink.FileOptions{Mode: reg.FileMode})
		if err != nil {
			return nil, err
		}
		handle.fileSink = file
		handle.ownsFile = true
		handlers = append(handlers, newSinkHandler(name, baseFormatter, file, levelVar, m.opts.ShowLocation))
	case StrategyMerged:
		if m.sharedFile == nil {
			return nil, fmt.Errorf("%w: merged file strategy for %q but no shared file configured", ErrConfiguration, name)
		}
		handle.fileSink = m.sharedFile
		handlers = append(handlers, newSinkHandler(name, baseFormatter, m.sharedFile, levelVar, m.opts.ShowLocation))
	case StrategyNone:
	default:
		return nil, fmt.Errorf("%w: unknown file strategy %q", ErrConfiguration, reg.FileStrategy)
	}

	logger := slog.New(newFanoutHandler(handlers...))
	if m.opts.SessionID != "" {
		logger = logger.With(slog.String("session_id", m.opts.SessionID))
	}
	handle.logger = logger
	return handle, nil
}

// Logger returns the cached logger for name, registering it with default
// settings when absent. Registration failures degrade to a discard logger;
// use Register directly when they matter.
func (m *Manager) Logger(name string) *slog.Logger {
	handle, err := m.Register(name, Registration{})
	if err != nil {
		return NewNop()
	}
	return handle.Logger()
}

// Get looks a handle up by name with no side effects.
func (m *Manager) Get(name string) (*Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	handle, ok := m.handles[name]
	return handle, ok
}

// Unregister detaches name's handle, closes the sinks it owns, and removes
// the mapping. Shared sinks stay open for the remaining handles.
// Unregistering a name that was never registered is a no-op.
func (m *Manager) Unregister(name string) {
	m.mu.Lock()
	handle, ok := m.handles[name]
	delete(m.handles, name)
	m.mu.Unlock()
	if ok {
		_ = handle.close()
	}
}

// Reset drops the cached handle for name so the next Register builds a fresh
// one. Equivalent to Unregister; the separate name documents intent for
// callers using the registry as a per-name logger cache.
func (m *Manager) Reset(name string) {
	m.Unregister(name)
}

// List returns a snapshot of all registered handles keyed by name.
func (m *Manager) List() map[string]*Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*Handle, len(m.handles))
	for name, handle := range m.handles {
		out[name] = handle
	}
	return out
}

// Names returns the registered names in sorted order.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.handles))
	for name := range m.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close unregisters every handle and closes the shared sinks. The manager
// rejects registrations afterward.
func (m *Manager) Close() error {
	m.mu.Lock()
	handles := m.handles
	m.handles = make(map[string]*Handle)
	sharedFile := m.sharedFile
	sharedConsole := m.sharedConsole
	m.sharedFile = nil
	m.sharedConsole = nil
	m.closed = true
	m.mu.Unlock()

	var firstErr error
	for _, handle := range handles {
		if err := handle.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if sharedFile != nil {
		if err := sharedFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if sharedConsole != nil {
		if err := sharedConsole.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func formatConfigFor(style string) format.Config {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case format.StyleTable:
		return format.TableConfig()
	case format.StyleCompact:
		return format.CompactConfig()
	case format.StyleColumn:
		return format.ColumnConfig()
	default:
		return format.StandardConfig()
	}
}
