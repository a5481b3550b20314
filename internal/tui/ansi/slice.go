package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SliceHorizontal returns at most width columns of s starting at visual
// column start. Escape sequences are preserved.
func SliceHorizontal(s string, start, width int) string {
	if width <= 0 {
		return ""
	}
	if start <= 0 {
		return ansi.Truncate(s, width, "")
	}
	head := ansi.Truncate(s, start+width, "")
	return ansi.TruncateLeft(head, start, "")
}

// PadExact pads or clips s to exactly w columns.
func PadExact(s string, w int) string {
	if w <= 0 {
		return ""
	}
	vw := ansi.StringWidth(s)
	switch {
	case vw > w:
		return ansi.Truncate(s, w, "")
	case vw < w:
		return s + strings.Repeat(" ", w-vw)
	}
	return s
}

// TruncateToWidth truncates s to width with an ellipsis if needed.
func TruncateToWidth(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

// Center places s in the middle of w columns.
func Center(s string, w int) string {
	s = TruncateToWidth(s, w)
	gap := w - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Overlay writes s over base starting at column col. Columns beyond the
// width of base are dropped.
func Overlay(base, s string, col int) string {
	w := ansi.StringWidth(base)
	if col < 0 || col >= w {
		return base
	}
	if col+ansi.StringWidth(s) > w {
		s = ansi.Truncate(s, w-col, "")
	}
	left := ansi.Truncate(base, col, "")
	right := ansi.TruncateLeft(base, col+ansi.StringWidth(s), "")
	return left + s + right
}
