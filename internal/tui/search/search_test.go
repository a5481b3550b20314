package search

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func typeString(e *Engine, s string) {
	for _, r := range s {
		e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func stacks() []string {
	return []string{"img_00_position_01", "img_02_position_03", "img_17_position_09", "kitchen"}
}

func TestEngine_EmptyQueryListsAll(t *testing.T) {
	e := New()
	e.SetItems(stacks())
	if e.MatchCount() != 4 {
		t.Fatalf("expected all items, got %d", e.MatchCount())
	}
	if cur, _ := e.Current(); cur != "img_00_position_01" {
		t.Fatalf("unexpected first item %q", cur)
	}
}

func TestEngine_FuzzyFilterAndChoose(t *testing.T) {
	e := New()
	e.SetItems(stacks())
	e.Activate()
	typeString(e, "17p09")
	if e.MatchCount() != 1 {
		t.Fatalf("expected one match, got %d", e.MatchCount())
	}
	chosen, _ := e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if chosen != "img_17_position_09" {
		t.Fatalf("unexpected choice %q", chosen)
	}
	if e.IsActive() {
		t.Fatalf("enter should close the finder")
	}
}

func TestEngine_NavigateWraps(t *testing.T) {
	e := New()
	e.SetItems(stacks())
	e.Previous()
	if cur, _ := e.Current(); cur != "kitchen" {
		t.Fatalf("previous from first should wrap, got %q", cur)
	}
	e.Next()
	if e.CurrentMatchIndex() != 1 {
		t.Fatalf("next should wrap to 1, got %d", e.CurrentMatchIndex())
	}
}

func TestEngine_NoMatches(t *testing.T) {
	e := New()
	e.SetItems(stacks())
	e.Activate()
	typeString(e, "zzz")
	if chosen, _ := e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); chosen != "" {
		t.Fatalf("nothing should be chosen, got %q", chosen)
	}
}

func TestRenderOverlay(t *testing.T) {
	e := New()
	e.SetItems(stacks())
	if e.RenderOverlay(60, 3, "240") != nil {
		t.Fatalf("inactive finder must not render")
	}
	e.Activate()
	typeString(e, "kit")
	lines := e.RenderOverlay(60, 3, "240")
	plain := ansi.Strip(strings.Join(lines, "\n"))
	if !strings.Contains(plain, "kitchen") || !strings.Contains(plain, "Match 1 of 1") {
		t.Fatalf("unexpected overlay %q", plain)
	}
}

func TestHighlight_MarksMatchedBytes(t *testing.T) {
	h := NewHighlighter()
	out := h.Highlight("abc", []int{1}, false)
	if out != "a"+matchStartSeq+"b"+matchEndSeq+"c" {
		t.Fatalf("unexpected highlight %q", out)
	}
	if ansi.Strip(h.Highlight("abc", []int{0, 2}, true)) != "abc" {
		t.Fatalf("highlight must not change the text")
	}
}
