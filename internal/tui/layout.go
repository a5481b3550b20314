package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/focalview/internal/theme"
	"github.com/interpretive-systems/focalview/internal/tui/components"
)

// Screen rows above the panels.
const (
	rowStrip = 2 + iota
	rowTrack
	rowHint
	rowPanelRule
	rowPanelLabel
	rowPanelImage
)

// fixedRows counts every row that is not panel or zoom image area.
const fixedRows = 12

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Regions are the hit-testable areas of one viewer screen.
type Regions struct {
	Strip    Rect
	Track    Rect
	Prev     Rect
	Next     Rect
	Panels   []Rect
	Zooms    []Rect
	Widths   []int
	ZoomRow  int
	Slider   Rect
	Controls Rect
}

// Layout manages screen layout calculations.
type Layout struct {
	width  int
	height int
}

// NewLayout creates a new layout manager.
func NewLayout() *Layout {
	return &Layout{}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// imageRows splits the free rows between source and zoom panels.
func (l *Layout) imageRows() (src, zoom int) {
	free := l.height - fixedRows
	src = free / 2
	if src < 1 {
		src = 1
	}
	zoom = free - src
	if zoom < 1 {
		zoom = 1
	}
	return src, zoom
}

// Regions computes the screen regions for a viewer with n panels.
func (l *Layout) Regions(n int) Regions {
	if n < 1 {
		n = 1
	}
	inner := l.width - 4
	if inner < 1 {
		inner = 1
	}
	src, zoom := l.imageRows()
	widths := panelWidths(l.width, n)

	r := Regions{
		Strip:  Rect{X: 2, Y: rowStrip, W: inner, H: 1},
		Track:  Rect{X: 2, Y: rowTrack, W: inner, H: 1},
		Prev:   Rect{X: 0, Y: rowTrack, W: 1, H: 1},
		Next:   Rect{X: l.width - 1, Y: rowTrack, W: 1, H: 1},
		Widths: widths,
	}
	r.ZoomRow = rowPanelImage + src
	x := 0
	for _, w := range widths {
		r.Panels = append(r.Panels, Rect{X: x, Y: rowPanelImage, W: w, H: src})
		r.Zooms = append(r.Zooms, Rect{X: x, Y: r.ZoomRow + 1, W: w, H: zoom})
		x += w + components.PanelGap
	}
	sliderRow := r.ZoomRow + 1 + zoom
	r.Slider = Rect{X: 0, Y: sliderRow, W: l.width, H: 1}
	r.Controls = Rect{X: 0, Y: sliderRow + 1, W: l.width, H: 1}
	return r
}

func panelWidths(width, n int) []int {
	avail := width - (n-1)*components.PanelGap
	if avail < n {
		avail = n
	}
	out := make([]int, n)
	for i := range out {
		out[i] = avail / n
		if i < avail%n {
			out[i]++
		}
	}
	return out
}

// RenderFrame renders the main frame with top bar, rules, body and bottom
// bar.
func (l *Layout) RenderFrame(topLeft, topRight string, body []string, bottomBar string, t theme.Theme) string {
	var b strings.Builder

	// Row 1: Top bar
	b.WriteString(l.renderTopBar(topLeft, topRight))
	b.WriteByte('\n')

	// Row 2: Horizontal rule
	hr := t.DividerText(strings.Repeat("─", l.width))
	b.WriteString(hr)
	b.WriteByte('\n')

	// Body
	rows := l.height - 4
	for i := 0; i < rows; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		b.WriteString(padToWidth(line, l.width))
		b.WriteByte('\n')
	}

	// Bottom rule and bar
	b.WriteString(hr)
	b.WriteByte('\n')
	b.WriteString(bottomBar)

	return b.String()
}

func (l *Layout) renderTopBar(left, right string) string {
	rightW := lipgloss.Width(right)
	if rightW >= l.width {
		return ansi.Truncate(right, l.width, "…")
	}

	avail := l.width - rightW - 1
	if lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	} else if lipgloss.Width(left) < avail {
		left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
	}

	return left + " " + right
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
