package advlog_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"advlog"
	"advlog/sink"
)

func TestOpenSessionAppendResumesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow.log")

	for _, message := range []string{"run one entry", "run two entry"} {
		manager, err := advlog.OpenSession(advlog.SessionOptions{
			LogFile:  path,
			FileMode: sink.ModeAppend,
			Level:    "info",
		})
		if err != nil {
			t.Fatalf("OpenSession returned error: %v", err)
		}
		handle, err := manager.Register("workflow", advlog.Registration{
			FileStrategy:   advlog.StrategyMerged,
			DisableConsole: true,
		})
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		handle.Info(message)
		if err := manager.Close(); err != nil {
			t.Fatalf("Close returned error: %v", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "run one entry") || !strings.Contains(text, "run two entry") {
		t.Fatalf("append session lost a run: %q", text)
	}
	if strings.Index(text, "run one entry") > strings.Index(text, "run two entry") {
		t.Fatalf("runs out of order: %q", text)
	}
}

func TestOpenSessionWriteModeTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow.log")
	if err := os.WriteFile(path, []byte("stale content\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	manager, err := advlog.OpenSession(advlog.SessionOptions{
		LogFile:  path,
		FileMode: sink.ModeWrite,
		Level:    "info",
	})
	if err != nil {
		t.Fatalf("OpenSession returned error: %v", err)
	}
	if err := manager.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	if strings.Contains(string(content), "stale content") {
		t.Fatalf("write mode kept stale content: %q", content)
	}
}

func TestOpenSessionResolvesPathFromDirAndName(t *testing.T) {
	dir := t.TempDir()
	manager, err := advlog.OpenSession(advlog.SessionOptions{
		OutputDir:   dir,
		SessionName: "training",
		Level:       "debug",
	})
	if err != nil {
		t.Fatalf("OpenSession returned error: %v", err)
	}
	defer manager.Close()

	handle, err := manager.Register("main", advlog.Registration{
		FileStrategy:   advlog.StrategyMerged,
		DisableConsole: true,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !strings.HasSuffix(handle.FilePath(), "training.log") {
		t.Fatalf("resolved path = %q", handle.FilePath())
	}
	if !strings.HasPrefix(handle.FilePath(), dir) {
		t.Fatalf("session file outside output dir: %q", handle.FilePath())
	}
}

func TestOpenSessionRetentionPrunesDatedLogs(t *testing.T) {
	dir := t.TempDir()
	staleDay := filepath.Join(dir, "2020-01-01")
	if err := os.MkdirAll(staleDay, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stalePath := filepath.Join(staleDay, "training.log")
	if err := os.WriteFile(stalePath, []byte("old run\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	old := time.Now().Add(-45 * 24 * time.Hour)
	if err := os.Chtimes(stalePath, old, old); err != nil {
		t.Fatalf("age file: %v", err)
	}

	manager, err := advlog.OpenSession(advlog.SessionOptions{
		OutputDir:     dir,
		SessionName:   "training",
		Level:         "info",
		RetentionDays: 7,
	})
	if err != nil {
		t.Fatalf("OpenSession returned error: %v", err)
	}
	defer manager.Close()

	if _, err := os.Stat(stalePath); !os.IsNotExist(err) {
		t.Fatalf("stale dated session log survived the retention sweep: %v", err)
	}
}

func TestOpenSessionRejectsUnknownLevel(t *testing.T) {
	_, err := advlog.OpenSession(advlog.SessionOptions{Level: "loud"})
	if !errors.Is(err, advlog.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

// The package-level surface is process-global, so its behavior is covered in
// a single test to keep ordering out of the picture.
func TestInitializeAndGetLogger(t *testing.T) {
	dir := t.TempDir()
	if err := advlog.Initialize(advlog.SessionOptions{
		OutputDir:   dir,
		SessionName: "app",
		Level:       "info",
	}); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	// Second call is a no-op returning the first result.
	if err := advlog.Initialize(advlog.SessionOptions{Level: "loud"}); err != nil {
		t.Fatalf("repeat Initialize returned error: %v", err)
	}

	logger := advlog.GetLogger("component")
	if logger == nil {
		t.Fatal("GetLogger returned nil")
	}
	logger.Info("hello from the default session")

	if advlog.GetLogger("component") != logger {
		t.Fatal("GetLogger rebuilt an existing logger")
	}
}

func TestManagerOptionsSnapshotDoesNotRewireExistingHandles(t *testing.T) {
	var console bytes.Buffer
	manager := newTestManager(t, advlog.Options{SharedConsole: true, ConsoleWriter: &console})

	before, err := manager.Register("early", advlog.Registration{})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	before.Info("early message")
	if !strings.Contains(console.String(), "early message") {
		t.Fatalf("early handle lost console: %q", console.String())
	}
}
