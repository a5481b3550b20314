package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpView is the scrollable help screen shown in place of the panels.
type HelpView struct {
	viewport viewport.Model
}

// NewHelpView creates an empty help view.
func NewHelpView() *HelpView {
	return &HelpView{viewport: viewport.New(0, 0)}
}

// SetSize updates the viewport dimensions.
func (h *HelpView) SetSize(width, height int) {
	h.viewport.Width = width
	h.viewport.Height = height
}

// SetContent replaces the help text and scrolls back to the top.
func (h *HelpView) SetContent(lines []string) {
	h.viewport.SetContent(strings.Join(lines, "\n"))
	h.viewport.GotoTop()
}

// Update forwards scroll keys and wheel events to the viewport.
func (h *HelpView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return cmd
}

// Lines returns the visible help rows.
func (h *HelpView) Lines() []string {
	return strings.Split(h.viewport.View(), "\n")
}
