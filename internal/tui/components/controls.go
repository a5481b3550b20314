package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/focalview/internal/theme"
	"github.com/interpretive-systems/focalview/internal/tui/ansi"
	"github.com/interpretive-systems/focalview/internal/viewer"
)

// Control identifies a button in the controls row.
type Control int

const (
	ControlNone Control = iota
	ControlPlay
	ControlPause
	ControlReset
	ControlZoomOut
	ControlZoomIn
	ControlMethod
)

type controlSpan struct {
	control Control
	label   string
}

func controlSpans(snap viewer.Snapshot) []controlSpan {
	var spans []controlSpan
	if snap.HasPlayer {
		spans = append(spans,
			controlSpan{ControlPlay, "[play]"},
			controlSpan{ControlPause, "[pause]"},
			controlSpan{ControlReset, "[reset]"},
		)
	}
	spans = append(spans,
		controlSpan{ControlZoomOut, "[-]"},
		controlSpan{ControlZoomIn, "[+]"},
	)
	if snap.MethodLabel != "" {
		spans = append(spans, controlSpan{ControlMethod, "[method: " + snap.MethodLabel + "]"})
	}
	return spans
}

// RenderControls draws the playback, zoom and method buttons followed by
// the zoom readout.
func RenderControls(snap viewer.Snapshot, width int, t theme.Theme) string {
	var b strings.Builder
	for i, s := range controlSpans(snap) {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch {
		case s.control == ControlPlay && snap.Playing,
			s.control == ControlPause && snap.HasPlayer && !snap.Playing:
			b.WriteString(t.ActiveText(s.label))
		default:
			b.WriteString(t.AccentText(s.label))
		}
	}
	b.WriteString("  ")
	b.WriteString(t.MutedText(fmt.Sprintf("zoom %.1f× lens %dpx", snap.Zoom, snap.Lens)))
	return ansi.PadExact(b.String(), width)
}

// ControlAt returns the button under column col.
func ControlAt(snap viewer.Snapshot, col int) Control {
	x := 0
	for _, s := range controlSpans(snap) {
		w := lipgloss.Width(s.label)
		if col >= x && col < x+w {
			return s.control
		}
		x += w + 1
	}
	return ControlNone
}
