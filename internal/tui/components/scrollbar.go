package components

import (
	"math"
	"strings"

	"github.com/interpretive-systems/focalview/internal/scrollbar"
	"github.com/interpretive-systems/focalview/internal/theme"
	"github.com/interpretive-systems/focalview/internal/tui/ansi"
)

const scrollHint = "scroll for more →"

// RenderScrollbar draws the "‹ track ›" row. trackCols is the track width
// in columns and cellW converts the pixel state to columns.
func RenderScrollbar(st scrollbar.State, trackCols int, cellW float64, t theme.Theme) string {
	if trackCols <= 0 {
		return ""
	}
	start, width := ThumbSpan(st, trackCols, cellW)

	var b strings.Builder
	b.WriteString(button("‹", st.LeftDisabled, t))
	b.WriteByte(' ')
	b.WriteString(t.DividerText(strings.Repeat("─", start)))
	b.WriteString(t.ThumbText(strings.Repeat("━", width)))
	b.WriteString(t.DividerText(strings.Repeat("─", trackCols-start-width)))
	b.WriteByte(' ')
	b.WriteString(button("›", st.RightDisabled, t))
	return b.String()
}

// ThumbSpan converts the thumb geometry to a starting column and width
// inside the track.
func ThumbSpan(st scrollbar.State, trackCols int, cellW float64) (start, width int) {
	if cellW <= 0 {
		cellW = 1
	}
	width = int(math.Round(st.ThumbWidth / cellW))
	if width < 1 {
		width = 1
	}
	if width > trackCols {
		width = trackCols
	}
	start = int(math.Round(st.ThumbLeft / cellW))
	if start > trackCols-width {
		start = trackCols - width
	}
	if start < 0 {
		start = 0
	}
	return start, width
}

// RenderHint draws the right-aligned scroll hint, or a blank row once it
// has been dismissed.
func RenderHint(st scrollbar.State, width int, t theme.Theme) string {
	if st.HintHidden || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	hint := ansi.TruncateToWidth(scrollHint, width)
	return strings.Repeat(" ", width-len([]rune(hint))) + t.MutedText(hint)
}

func button(glyph string, disabled bool, t theme.Theme) string {
	if disabled {
		return t.MutedText(glyph)
	}
	return t.AccentText(glyph)
}
