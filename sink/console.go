package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Console writes lines to a terminal or any other stream. Writes are
// serialized under the sink's own mutex; the console adds no buffering.
type Console struct {
	mu   sync.Mutex
	w    io.Writer
	name string
	tty  bool
}

// NewConsole wraps w as a console sink. A nil writer defaults to stderr.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	c := &Console{w: w, name: "console"}
	if f, ok := w.(*os.File); ok {
		c.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return c
}

// IsTerminal reports whether the underlying stream is an interactive
// terminal, which callers use to decide whether color output is worthwhile.
func (c *Console) IsTerminal() bool {
	return c.tty
}

func (c *Console) Write(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, line+"\n"); err != nil {
		return fmt.Errorf("%w: console write: %v", ErrSink, err)
	}
	return nil
}

// Close is a no-op; the console does not own its stream.
func (c *Console) Close() error {
	return nil
}

func (c *Console) Name() string {
	return c.name
}
