package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/focalview/internal/tui/ansi"
)

// RenderOverlay renders the finder: a divider, the input, up to rows
// ranked matches and a status line.
func (e *Engine) RenderOverlay(width, rows int, dividerColor string) []string {
	if !e.active || width <= 0 {
		return nil
	}

	lines := make([]string, 0, rows+3)

	// Divider
	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color(dividerColor)).
		Render(strings.Repeat("─", width))
	lines = append(lines, divider)

	// Input
	lines = append(lines, ansi.PadExact(e.InputView(), width))

	// Matches, windowed around the current one
	first := 0
	if rows > 0 && e.index >= rows {
		first = e.index - rows + 1
	}
	for i := first; i < len(e.matches) && i < first+rows; i++ {
		m := e.matches[i]
		line := "  " + e.highlighter.Highlight(m.Str, m.MatchedIndexes, i == e.index)
		lines = append(lines, ansi.PadExact(line, width))
	}

	// Status
	status := "Type to filter (enter: select, esc: close)"
	if e.query != "" {
		if len(e.matches) == 0 {
			status = "No matches (esc: close)"
		} else {
			status = fmt.Sprintf(
				"Match %d of %d  (Enter: select, ↑/↓: move, Esc: close)",
				e.CurrentMatchIndex(),
				e.MatchCount(),
			)
		}
	}

	statusStyled := lipgloss.NewStyle().Faint(true).Render(status)
	lines = append(lines, ansi.PadExact(statusStyled, width))

	return lines
}
