package components

import (
	"math"
	"strings"

	"github.com/interpretive-systems/focalview/internal/theme"
	"github.com/interpretive-systems/focalview/internal/tui/ansi"
)

const (
	minThumbCols = 8
	maxThumbCols = 22
	// easing is the share of the remaining distance covered per frame.
	easing = 0.4
)

// ThumbStrip is the horizontally scrolling row of item thumbnails. It
// reports its geometry in pixels (columns times the cell width) so the
// scrollbar works on the same units as the rest of the viewer.
type ThumbStrip struct {
	labels    []string
	cellW     float64
	thumbCols int
	viewCols  int
	selected  int

	left      float64
	target    float64
	animating bool
}

// NewThumbStrip creates a strip for labels with cells cellWidth pixels wide.
func NewThumbStrip(labels []string, cellWidth int) *ThumbStrip {
	if cellWidth <= 0 {
		cellWidth = 8
	}
	cols := minThumbCols
	for _, l := range labels {
		if w := len(l) + 2; w > cols {
			cols = w
		}
	}
	if cols > maxThumbCols {
		cols = maxThumbCols
	}
	return &ThumbStrip{
		labels:    labels,
		cellW:     float64(cellWidth),
		thumbCols: cols,
		selected:  -1,
	}
}

// SetViewport sets the visible width in columns.
func (s *ThumbStrip) SetViewport(cols int) {
	if cols < 0 {
		cols = 0
	}
	s.viewCols = cols
	s.SetScrollLeft(s.left)
}

// ThumbCols returns the width of one thumbnail in columns.
func (s *ThumbStrip) ThumbCols() int { return s.thumbCols }

func (s *ThumbStrip) ClientWidth() float64 { return float64(s.viewCols) * s.cellW }

func (s *ThumbStrip) ScrollWidth() float64 {
	return float64(len(s.labels)*s.thumbCols) * s.cellW
}

func (s *ThumbStrip) ScrollLeft() float64 { return s.left }

// SetScrollLeft jumps to v, cancelling any smooth scroll.
func (s *ThumbStrip) SetScrollLeft(v float64) {
	s.left = s.clamp(v)
	s.target = s.left
	s.animating = false
}

// ScrollBy moves by delta pixels. Smooth scrolls accumulate onto the
// pending target and are advanced by Step.
func (s *ThumbStrip) ScrollBy(delta float64, smooth bool) {
	from := s.left
	if s.animating {
		from = s.target
	}
	if !smooth {
		s.SetScrollLeft(from + delta)
		return
	}
	s.target = s.clamp(from + delta)
	s.animating = s.target != s.left
}

// Animating reports whether a smooth scroll is in progress.
func (s *ThumbStrip) Animating() bool { return s.animating }

// Step advances a smooth scroll by one frame and reports whether more
// frames are needed.
func (s *ThumbStrip) Step() bool {
	if !s.animating {
		return false
	}
	d := s.target - s.left
	if math.Abs(d) <= s.cellW {
		s.left = s.target
		s.animating = false
		return false
	}
	s.left += d * easing
	return true
}

func (s *ThumbStrip) clamp(v float64) float64 {
	limit := s.ScrollWidth() - s.ClientWidth()
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}

// SetSelected marks item i as the current one.
func (s *ThumbStrip) SetSelected(i int) { s.selected = i }

// Selected returns the marked item, or -1.
func (s *ThumbStrip) Selected() int { return s.selected }

// ItemAt returns the item under viewport column col, or -1.
func (s *ThumbStrip) ItemAt(col int) int {
	if col < 0 || col >= s.viewCols {
		return -1
	}
	i := (col + s.leftCols()) / s.thumbCols
	if i >= len(s.labels) {
		return -1
	}
	return i
}

// EnsureVisible scrolls the least distance that brings item i fully into
// view.
func (s *ThumbStrip) EnsureVisible(i int) {
	if i < 0 || i >= len(s.labels) {
		return
	}
	start := float64(i*s.thumbCols) * s.cellW
	end := start + float64(s.thumbCols)*s.cellW
	switch {
	case start < s.left:
		s.SetScrollLeft(start)
	case end > s.left+s.ClientWidth():
		s.SetScrollLeft(end - s.ClientWidth())
	}
}

func (s *ThumbStrip) leftCols() int {
	return int(math.Round(s.left / s.cellW))
}

// Render draws the visible part of the strip.
func (s *ThumbStrip) Render(t theme.Theme) string {
	if s.viewCols <= 0 {
		return ""
	}
	var b strings.Builder
	for i, l := range s.labels {
		cell := ansi.PadExact(" "+ansi.TruncateToWidth(l, s.thumbCols-2)+" ", s.thumbCols)
		if i == s.selected {
			cell = t.ActiveText(cell)
		}
		b.WriteString(cell)
	}
	return ansi.PadExact(ansi.SliceHorizontal(b.String(), s.leftCols(), s.viewCols), s.viewCols)
}
