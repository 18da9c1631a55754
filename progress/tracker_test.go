package progress_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"advlog/progress"
)

// safeBuffer keeps the render goroutine and the test from racing on the
// output buffer.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestTracker(opts progress.Options) (*progress.Tracker, *safeBuffer) {
	out := &safeBuffer{}
	opts.Output = out
	opts.UpdateInterval = time.Millisecond
	return progress.NewTracker(opts), out
}

func TestTrackerTaskBookkeeping(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{})
	tracker.Start()
	defer tracker.Stop()

	first := tracker.AddTask("encode", 100)
	second := tracker.AddTask("upload", 50)
	if first == second {
		t.Fatalf("task IDs collide: %d", first)
	}
	if got := tracker.Active(); got != 2 {
		t.Fatalf("Active() = %d, want 2", got)
	}

	tracker.RemoveTask(first)
	if got := tracker.Active(); got != 1 {
		t.Fatalf("Active() after remove = %d, want 1", got)
	}

	// Unknown and repeated removals are no-ops.
	tracker.RemoveTask(first)
	tracker.RemoveTask(progress.TaskID(9999))
	if got := tracker.Active(); got != 1 {
		t.Fatalf("Active() after no-op removes = %d, want 1", got)
	}
}

func TestTrackerAutoRemovesCompletedTasks(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{AutoRemoveCompleted: true})
	tracker.Start()
	defer tracker.Stop()

	done := tracker.AddTask("copy", 10)
	kept := tracker.AddTask("index", 10, progress.Persistent())

	tracker.Update(done, 10)
	tracker.Update(kept, 10)

	if got := tracker.Active(); got != 1 {
		t.Fatalf("Active() = %d, want persistent task to survive", got)
	}
	tracker.Update(done, 1) // stale handle, must not panic
}

func TestTransientStopClearsEveryTask(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{Transient: true})
	tracker.Start()

	pinned := tracker.AddTask("pinned", 10, progress.Persistent())
	plain := tracker.AddTask("plain", 10)
	tracker.Update(pinned, 3)
	tracker.Update(plain, 3)

	tracker.Stop()
	if got := tracker.Active(); got != 0 {
		t.Fatalf("Active() after transient stop = %d, want 0", got)
	}

	// Stale handles after the clear are no-ops.
	tracker.Update(pinned, 1)
	tracker.RemoveTask(plain)
}

func TestStopKeepsTasksWhenNotTransient(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{})
	tracker.Start()
	tracker.AddTask("kept", 10, progress.Persistent())
	tracker.Stop()

	if got := tracker.Active(); got != 1 {
		t.Fatalf("Active() after stop = %d, want 1", got)
	}
}

func TestTrackerConcurrentUpdateAndRemove(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{AutoRemoveCompleted: true})
	tracker.Start()
	defer tracker.Stop()

	ids := make([]progress.TaskID, 8)
	for i := range ids {
		ids[i] = tracker.AddTask("work", 100)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func(id progress.TaskID) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				tracker.Update(id, 1)
			}
		}(id)
		go func(id progress.TaskID) {
			defer wg.Done()
			tracker.RemoveTask(id)
		}(id)
	}
	wg.Wait()

	if got := tracker.Active(); got != 0 {
		t.Fatalf("Active() = %d, want 0 after removals", got)
	}
}

func TestTrackerRunStopsOnError(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{Transient: true})

	wantErr := errors.New("job failed")
	err := tracker.Run(func(tr *progress.Tracker) error {
		tr.AddTask("step", 3)
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run returned %v, want %v", err, wantErr)
	}

	// Stop already ran; a second call must be harmless.
	tracker.Stop()
}

func TestTrackerRunStopsOnPanic(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		tracker.Run(func(tr *progress.Tracker) error {
			panic("boom")
		})
	}()

	tracker.Stop()
}

func TestTrackerLogScrollsAboveDisplay(t *testing.T) {
	tracker, out := newTestTracker(progress.Options{})
	tracker.Start()

	id := tracker.AddTask("download", 4)
	tracker.Log("fetched %s", "chunk-1")
	tracker.Update(id, 4)
	time.Sleep(25 * time.Millisecond)
	tracker.Stop()

	if !strings.Contains(out.String(), "fetched chunk-1") {
		t.Fatalf("log line missing from output: %q", out.String())
	}
}

func TestTrackerStopWithoutStart(t *testing.T) {
	tracker, _ := newTestTracker(progress.Options{})
	tracker.Stop()
	tracker.Stop()
}

func TestBarCountsToCompletion(t *testing.T) {
	var out bytes.Buffer
	bar := progress.NewBar("convert", 3, &out)
	for i := 0; i < 3; i++ {
		if err := bar.Add(1); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	if err := bar.Finish(); err != nil {
		t.Fatalf("Finish returned error: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("bar wrote nothing")
	}
}
