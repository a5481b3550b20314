package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyHandler_ViewerSwitchAndCounts(t *testing.T) {
	k := NewKeyHandler()
	if a, _ := k.Handle(runes("1")); a != ActionDatasetViewer {
		t.Fatalf("lone 1 should switch viewer, got %v", a)
	}
	if a, _ := k.Handle(runes("3")); a != ActionNone || k.KeyBuffer() != "3" {
		t.Fatalf("3 should start a count")
	}
	k.Handle(runes("1"))
	a, n := k.Handle(tea.KeyMsg{Type: tea.KeyRight})
	if a != ActionFrameNext || n != 31 {
		t.Fatalf("expected next frame x31, got %v x%d", a, n)
	}
	if k.KeyBuffer() != "" {
		t.Fatalf("count should clear after use")
	}
}

func TestKeyHandler_Bindings(t *testing.T) {
	k := NewKeyHandler()
	cases := map[string]KeyAction{
		" ": ActionTogglePlay,
		"r": ActionReset,
		"+": ActionZoomIn,
		"-": ActionZoomOut,
		"m": ActionCycleMethod,
		"[": ActionStripLeft,
		"]": ActionStripRight,
		"/": ActionOpenFinder,
		"?": ActionToggleHelp,
		"q": ActionQuit,
	}
	for key, want := range cases {
		if got, _ := k.Handle(runes(key)); got != want {
			t.Fatalf("key %q: got %v want %v", key, got, want)
		}
	}
	if a, _ := k.Handle(tea.KeyMsg{Type: tea.KeyTab}); a != ActionNextViewer {
		t.Fatalf("tab should cycle viewers")
	}
}
