package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/interpretive-systems/focalview/internal/theme"
)

const sliderPrefix = "Frame "

// SliderTrack returns the starting column and width of the slider track in
// a row of width columns.
func SliderTrack(width int) (start, cols int) {
	start = len(sliderPrefix)
	cols = width - start - 5
	if cols < 2 {
		cols = 2
	}
	return start, cols
}

// RenderSlider draws the frame slider with its numeric readout.
func RenderSlider(value, lo, hi, width int, readout string, t theme.Theme) string {
	_, cols := SliderTrack(width)
	knob := 0
	if hi > lo {
		knob = int(math.Round(float64(value-lo) * float64(cols-1) / float64(hi-lo)))
	}
	knob = max(0, min(knob, cols-1))
	track := t.DividerText(strings.Repeat("─", knob)) +
		t.AccentText("●") +
		t.DividerText(strings.Repeat("─", cols-knob-1))
	return sliderPrefix + track + fmt.Sprintf(" %4s", readout)
}

// SliderValueAt maps a click at col to a frame value. ok is false outside
// the track.
func SliderValueAt(col, lo, hi, width int) (value int, ok bool) {
	start, cols := SliderTrack(width)
	c := col - start
	if c < 0 || c >= cols || hi < lo {
		return 0, false
	}
	return lo + int(math.Round(float64(c)*float64(hi-lo)/float64(cols-1))), true
}
