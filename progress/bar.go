package progress

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Bar is a single-task convenience for plain loops that do not need the
// multi-task display. It degrades gracefully on non-terminal writers.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar builds a single progress bar with the given label and total units.
// A nil writer defaults to stderr.
func NewBar(label string, total int64, w io.Writer) *Bar {
	if w == nil {
		w = os.Stderr
	}
	return &Bar{
		bar: progressbar.NewOptions64(total,
			progressbar.OptionSetDescription(label),
			progressbar.OptionSetWriter(w),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Add advances the bar by n units.
func (b *Bar) Add(n int) error {
	return b.bar.Add(n)
}

// Finish completes the bar and clears it from the writer.
func (b *Bar) Finish() error {
	return b.bar.Finish()
}
