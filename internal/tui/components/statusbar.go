package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	message    string
	keyBuffer  string
	lastReload time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetMessage replaces the transient message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// SetKeyBuffer updates the count prefix display.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// SetLastReload records when the config file was last reloaded.
func (s *StatusBar) SetLastReload(t time.Time) {
	s.lastReload = t
}

// Render renders the status bar. position is shown on the right.
func (s *StatusBar) Render(width int, position string) string {
	leftText := "?: help  q: quit"
	if s.keyBuffer != "" {
		leftText = s.keyBuffer
	}
	if s.message != "" {
		leftText += "  |  " + s.message
	}

	rightText := position
	if !s.lastReload.IsZero() {
		rightText += "  reloaded: " + s.lastReload.Format("15:04:05")
	}
	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
	right := lipgloss.NewStyle().Faint(true).Render(rightText)

	// Ensure right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + right
}
