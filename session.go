package advlog

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"advlog/format"
	"advlog/logfile"
	"advlog/sink"
)

// SessionOptions configures the one-call session surface. A session is a
// Manager plus a resolved log file: append mode resumes the file a previous
// run left behind, write mode starts it over.
type SessionOptions struct {
	// OutputDir is the root directory for session logs.
	OutputDir string

	// SessionName names the log file; runs sharing a name and a day share a
	// file. Defaults to "session".
	SessionName string

	// LogFile overrides the resolved path entirely when set.
	LogFile string

	// FileMode defaults to append so restarted runs continue their file.
	FileMode sink.FileMode

	Level        string
	Style        string
	ShowLocation bool
	UseColor     bool

	// SharedConsole routes every session logger through one console sink.
	SharedConsole bool

	// RetentionDays prunes session logs older than this many days at open
	// time. Zero keeps everything.
	RetentionDays int
}

// OpenSession builds a Manager wired for session logging: a shared file at
// the resolved path, a console, a fresh session id on every record, and
// optional retention pruning. Unlike Initialize it is not once-guarded, so
// tests and multi-session programs can open as many as they need.
func OpenSession(opts SessionOptions) (*Manager, error) {
	level, err := format.ParseLevelStrict(opts.Level)
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(opts.LogFile)
	if path == "" {
		path = logfile.Session(opts.OutputDir, opts.SessionName)
	}
	if opts.RetentionDays > 0 && opts.OutputDir != "" {
		sink.Cleanup(opts.OutputDir, "*.log", time.Duration(opts.RetentionDays)*24*time.Hour)
	}

	manager, err := NewManager(Options{
		SharedConsole:  opts.SharedConsole,
		SharedFile:     path,
		SharedFileMode: opts.FileMode,
		UseColor:       opts.UseColor,
		Level:          level,
		Style:          opts.Style,
		ShowLocation:   opts.ShowLocation,
		SessionID:      uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("open session %q: %w", opts.SessionName, err)
	}
	return manager, nil
}

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
	initializeOnce sync.Once
	initializeErr  error
)

// Initialize establishes the process-wide default session exactly once.
// Repeat calls return the first call's result unchanged; resuming a previous
// run's file is achieved by a new process calling Initialize with the same
// log file in append mode.
func Initialize(opts SessionOptions) error {
	initializeOnce.Do(func() {
		manager, err := OpenSession(opts)
		if err != nil {
			initializeErr = err
			return
		}
		defaultMu.Lock()
		defaultManager = manager
		defaultMu.Unlock()
	})
	return initializeErr
}

// Default returns the process-wide manager, creating a console-only one when
// Initialize was never called.
func Default() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		manager, err := NewManager(Options{SharedConsole: true})
		if err != nil {
			// Console-only construction cannot fail; keep the API total.
			manager = &Manager{handles: make(map[string]*Handle)}
		}
		defaultManager = manager
	}
	return defaultManager
}

// GetLogger registers name against the default manager (merged into the
// session file when one exists) and returns its logger. Errors degrade to a
// console-only logger so callers at emission sites stay simple; use
// Default().Register directly when registration failures matter.
func GetLogger(name string) *slog.Logger {
	manager := Default()
	strategy := StrategyNone
	manager.mu.Lock()
	if manager.sharedFile != nil {
		strategy = StrategyMerged
	}
	manager.mu.Unlock()

	handle, err := manager.Register(name, Registration{FileStrategy: strategy})
	if err != nil {
		return NewNop()
	}
	return handle.Logger()
}
