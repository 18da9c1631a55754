package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// TaskID identifies one row in the live display.
type TaskID int64

// Options configures a Tracker.
type Options struct {
	// Output defaults to stderr.
	Output io.Writer

	// Transient clears the whole display when the scope ends, regardless of
	// per-task persistence.
	Transient bool

	// AutoRemoveCompleted drops finished tasks from the display as they
	// complete. Persistent tasks are exempt.
	AutoRemoveCompleted bool

	// UpdateInterval controls how often the display repaints.
	UpdateInterval time.Duration
}

// TaskOption adjusts one task at creation time.
type TaskOption func(*task)

// Persistent exempts a task from auto-removal on completion. It does not
// survive transient cleanup: a transient scope clears the whole display.
func Persistent() TaskOption {
	return func(t *task) { t.persistent = true }
}

type task struct {
	tracker    *progress.Tracker
	persistent bool
	removed    bool
}

// Tracker coordinates tasks against one live display.
type Tracker struct {
	mu      sync.Mutex
	pw      progress.Writer
	opts    Options
	nextID  TaskID
	tasks   map[TaskID]*task
	started bool
}

// NewTracker builds a tracker. Call Start (or Run) before adding tasks.
func NewTracker(opts Options) *Tracker {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.UpdateInterval <= 0 {
		opts.UpdateInterval = 100 * time.Millisecond
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(opts.Output)
	pw.SetAutoStop(false)
	pw.SetUpdateFrequency(opts.UpdateInterval)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetStyle(progress.StyleDefault)

	return &Tracker{pw: pw, opts: opts, tasks: make(map[TaskID]*task)}
}

// Start begins rendering the live display.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true
	go t.pw.Render()
}

// Stop ends the live display. In transient mode every task, persistent or
// not, is finalized and dropped so the display clears rather than freezing
// mid-render. Stop is idempotent and safe on a tracker that never started.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}
	t.started = false
	if t.opts.Transient {
		for _, tk := range t.tasks {
			tk.removed = true
			if !tk.tracker.IsDone() {
				tk.tracker.MarkAsDone()
			}
		}
		t.tasks = make(map[TaskID]*task)
	}
	t.mu.Unlock()
	t.pw.Stop()
}

// Run starts the display, invokes fn, and stops the display on every exit
// path including panics.
func (t *Tracker) Run(fn func(*Tracker) error) error {
	t.Start()
	defer t.Stop()
	return fn(t)
}

// AddTask appends a row with the given label and total units and returns its
// handle.
func (t *Tracker) AddTask(label string, total int64, opts ...TaskOption) TaskID {
	tk := &task{tracker: &progress.Tracker{Message: label, Total: total}}
	for _, opt := range opts {
		opt(tk)
	}

	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.tasks[id] = tk
	t.mu.Unlock()

	t.pw.AppendTracker(tk.tracker)
	return id
}

// Update advances a task by the given number of units. Advancing past the
// total completes the task; completed non-persistent tasks leave the display
// when auto-removal is on. Unknown IDs are ignored.
func (t *Tracker) Update(id TaskID, advance int64) {
	t.mu.Lock()
	tk, ok := t.tasks[id]
	if !ok || tk.removed {
		t.mu.Unlock()
		return
	}
	tk.tracker.Increment(advance)
	autoRemove := t.opts.AutoRemoveCompleted && !tk.persistent && tk.tracker.IsDone()
	t.mu.Unlock()
	if autoRemove {
		t.RemoveTask(id)
	}
}

// SetValue sets a task's absolute position.
func (t *Tracker) SetValue(id TaskID, value int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tk, ok := t.tasks[id]
	if !ok || tk.removed {
		return
	}
	tk.tracker.SetValue(value)
}

// RemoveTask finalizes a task and drops it from the display. Removing an
// unknown or already-removed ID is a no-op.
func (t *Tracker) RemoveTask(id TaskID) {
	t.mu.Lock()
	tk, ok := t.tasks[id]
	if ok {
		tk.removed = true
		delete(t.tasks, id)
	}
	t.mu.Unlock()
	if ok && !tk.tracker.IsDone() {
		tk.tracker.MarkAsDone()
	}
}

// Active reports how many tasks the facade still tracks.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tasks)
}

// Log prints a line above the live display.
func (t *Tracker) Log(format string, args ...any) {
	t.pw.Log(format, args...)
}
