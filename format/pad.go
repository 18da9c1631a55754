package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// pad widens text to at least width display cells. Width is a floor, not a
// ceiling: text wider than the column comes back unchanged. Center alignment
// gives the extra cell, when the padding is odd, to the right side.
func pad(text string, width int, align Alignment) string {
	if width <= 0 {
		return text
	}
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}
