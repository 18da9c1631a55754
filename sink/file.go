package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FileMode selects how an existing log file is treated on open.
type FileMode string

const (
	// ModeWrite truncates the file, starting the log from scratch.
	ModeWrite FileMode = "write"
	// ModeAppend continues an existing file, preserving prior runs.
	ModeAppend FileMode = "append"
)

// FileOptions configures a file sink.
type FileOptions struct {
	Mode FileMode // defaults to ModeAppend

	// MaxSize enables rotation: once the file would exceed MaxSize bytes the
	// current file is renamed to ".1" (older backups shifting to ".2" and so
	// on) and a fresh file is opened. Requires BackupCount >= 1.
	MaxSize     int64
	BackupCount int
}

// File writes lines to a single path, rotating by size when configured.
type File struct {
	mu      sync.Mutex
	path    string
	opts    FileOptions
	file    *os.File
	written int64
}

// NewFile opens (or creates) the file at path. The parent directory is
// created as needed. Open failures are reported immediately rather than on
// first write so a broken destination fails loudly at attach time.
func NewFile(path string, opts FileOptions) (*File, error) {
	if opts.Mode == "" {
		opts.Mode = ModeAppend
	}
	if opts.Mode != ModeWrite && opts.Mode != ModeAppend {
		return nil, fmt.Errorf("%w: unknown file mode %q", ErrSink, opts.Mode)
	}
	if opts.MaxSize > 0 && opts.BackupCount < 1 {
		return nil, fmt.Errorf("%w: rotation needs backup_count >= 1", ErrSink)
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	f := &File{path: path, opts: opts}
	if err := f.open(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) open() error {
	flags := os.O_CREATE | os.O_WRONLY
	if f.opts.Mode == ModeWrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	file, err := os.OpenFile(f.path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open log file %s: %v", ErrSink, f.path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("%w: stat log file %s: %v", ErrSink, f.path, err)
	}
	f.file = file
	f.written = info.Size()
	return nil
}

func (f *File) Write(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return fmt.Errorf("%w: write to closed sink %s", ErrSink, f.path)
	}

	payload := []byte(line + "\n")
	if f.opts.MaxSize > 0 && f.written > 0 && f.written+int64(len(payload)) > f.opts.MaxSize {
		if err := f.rotate(); err != nil {
			return err
		}
	}
	n, err := f.file.Write(payload)
	f.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w: write log file %s: %v", ErrSink, f.path, err)
	}
	return nil
}

// rotate shifts path -> path.1 -> path.2 ... up to BackupCount, discarding
// the oldest backup, then reopens a fresh file. Caller holds the mutex.
func (f *File) rotate() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("%w: close before rotate %s: %v", ErrSink, f.path, err)
	}
	f.file = nil

	oldest := f.backupPath(f.opts.BackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: discard oldest backup %s: %v", ErrSink, oldest, err)
	}
	for i := f.opts.BackupCount - 1; i >= 1; i-- {
		src := f.backupPath(i)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := os.Rename(src, f.backupPath(i+1)); err != nil {
			return fmt.Errorf("%w: rotate backup %s: %v", ErrSink, src, err)
		}
	}
	if err := os.Rename(f.path, f.backupPath(1)); err != nil {
		return fmt.Errorf("%w: rotate %s: %v", ErrSink, f.path, err)
	}

	mode := f.opts.Mode
	f.opts.Mode = ModeWrite
	err := f.open()
	f.opts.Mode = mode
	return err
}

func (f *File) backupPath(index int) string {
	return f.path + "." + strconv.Itoa(index)
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	if err != nil {
		return fmt.Errorf("%w: close log file %s: %v", ErrSink, f.path, err)
	}
	return nil
}

func (f *File) Name() string {
	return f.path
}

// Path returns the destination path backing the sink.
func (f *File) Path() string {
	return f.path
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: ensure log directory %s: %v", ErrSink, dir, err)
	}
	return nil
}
