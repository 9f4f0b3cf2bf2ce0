package tui

import "github.com/charmbracelet/x/ansi"

// truncate clips s to max terminal cells, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return ansi.Truncate(s, max, "…")
}

// inBounds reports whether (x, y) falls inside the rectangle at (left, top).
func inBounds(x, y, left, top, width, height int) bool {
	return x >= left && x < left+width && y >= top && y < top+height
}
