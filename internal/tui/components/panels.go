package components

import (
	"fmt"
	"path"
	"strings"

	"github.com/interpretive-systems/focalview/internal/magnifier"
	"github.com/interpretive-systems/focalview/internal/theme"
	"github.com/interpretive-systems/focalview/internal/tui/ansi"
	"github.com/interpretive-systems/focalview/internal/viewer"
)

// PanelGap is the number of blank columns between panels.
const PanelGap = 1

const zoomPlaceholder = "hover an image to magnify"

// LensBox is the lens indicator in panel cells.
type LensBox struct {
	Slot       string
	Col, Row   int
	Cols, Rows int
}

// RenderSources draws a label row followed by imgRows image rows for each
// source panel. Panel i is widths[i] columns wide.
func RenderSources(imgs []viewer.SlotImage, widths []int, imgRows int, hovered string, lens *LensBox, t theme.Theme) []string {
	cols := make([][]string, len(imgs))
	for i, img := range imgs {
		w := widthAt(widths, i)
		label := ansi.PadExact(" "+img.Label, w)
		if img.ID == hovered {
			label = t.AccentText(label)
		}
		body := imageRows(img.URL, w, imgRows, "·", t)
		if lens != nil && lens.Slot == img.ID {
			drawLens(body, *lens, w, t)
		}
		cols[i] = append([]string{label}, body...)
	}
	return joinColumns(cols, widths, imgRows+1)
}

// RenderZooms draws the zoom panels for views, or a placeholder while
// nothing is hovered. The output is a label row plus rows image rows.
func RenderZooms(views []magnifier.View, widths []int, rows int, zoom float64, t theme.Theme) []string {
	total := 0
	for i := range widths {
		total += widths[i]
		if i > 0 {
			total += PanelGap
		}
	}
	if len(views) == 0 {
		out := make([]string, rows+1)
		for i := range out {
			out[i] = strings.Repeat(" ", total)
		}
		out[(rows+1)/2] = t.MutedText(ansi.Center(zoomPlaceholder, total))
		return out
	}
	cols := make([][]string, len(views))
	for i, v := range views {
		w := widthAt(widths, i)
		label := t.LensText(ansi.PadExact(fmt.Sprintf(" %s ×%.1f", v.Label, zoom), w))
		body := texture(w, rows, "░", t)
		mid := rows / 2
		setRow(body, mid-1, ansi.Center(path.Base(v.URL), w))
		setRow(body, mid, ansi.Center(fmt.Sprintf("at %.0f,%.0f", v.Left, v.Top), w))
		setRow(body, mid+1, ansi.Center(fmt.Sprintf("%.0fx%.0f", v.Width, v.Height), w))
		cols[i] = append([]string{label}, body...)
	}
	return joinColumns(cols, widths, rows+1)
}

func imageRows(url string, w, rows int, fill string, t theme.Theme) []string {
	body := texture(w, rows, fill, t)
	lines := ansi.WrapLine(url, w-2, rows)
	top := (rows - len(lines)) / 2
	for i, l := range lines {
		setRow(body, top+i, ansi.Center(l, w))
	}
	return body
}

func texture(w, rows int, fill string, t theme.Theme) []string {
	body := make([]string, rows)
	for i := range body {
		body[i] = t.MutedText(strings.Repeat(fill, w))
	}
	return body
}

func setRow(body []string, i int, s string) {
	if i >= 0 && i < len(body) {
		body[i] = s
	}
}

func drawLens(body []string, l LensBox, w int, t theme.Theme) {
	cols := l.Cols
	if cols > w {
		cols = w
	}
	col := l.Col - cols/2
	if col < 0 {
		col = 0
	}
	if col+cols > w {
		col = w - cols
	}
	row := l.Row - l.Rows/2
	for r := row; r < row+l.Rows; r++ {
		if r < 0 || r >= len(body) {
			continue
		}
		body[r] = ansi.Overlay(body[r], t.LensText(strings.Repeat("▒", cols)), col)
	}
}

func widthAt(widths []int, i int) int {
	if i < len(widths) {
		return widths[i]
	}
	return 0
}

func joinColumns(cols [][]string, widths []int, rows int) []string {
	gap := strings.Repeat(" ", PanelGap)
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for i, c := range cols {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := ""
			if r < len(c) {
				cell = c[r]
			}
			b.WriteString(ansi.PadExact(cell, widthAt(widths, i)))
		}
		out[r] = b.String()
	}
	return out
}
