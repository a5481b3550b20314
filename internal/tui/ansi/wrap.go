package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapLine wraps a single line to width, breaking long paths at slashes
// where possible. At most limit lines are returned; limit <= 0 means no limit.
func WrapLine(s string, width, limit int) []string {
	if width <= 0 {
		return []string{""}
	}
	wrapped := ansi.Wrap(s, width, "/")
	lines := strings.Split(wrapped, "\n")
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
		lines[limit-1] = TruncateToWidth(lines[limit-1]+"…", width)
	}
	return lines
}
