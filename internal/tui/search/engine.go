// Package search is the fuzzy item finder opened with "/".
package search

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// Engine manages the finder input and its ranked matches.
type Engine struct {
	query       string
	items       []string
	matches     fuzzy.Matches
	index       int // Current match index
	input       textinput.Model
	active      bool
	highlighter *Highlighter
}

// New creates a new finder.
func New() *Engine {
	ti := textinput.New()
	ti.Placeholder = "Find item"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return &Engine{
		highlighter: NewHighlighter(),
		input:       ti,
	}
}

// SetItems replaces the candidates and resets the query.
func (e *Engine) SetItems(items []string) {
	e.items = items
	e.input.SetValue("")
	e.query = ""
	e.index = 0
	e.recomputeMatches()
}

// Activate opens the finder.
func (e *Engine) Activate() {
	e.active = true
	e.input.Focus()
}

// Deactivate closes the finder.
func (e *Engine) Deactivate() {
	e.active = false
	e.input.Blur()
}

// IsActive returns whether the finder is open.
func (e *Engine) IsActive() bool {
	return e.active
}

// HandleKey processes key input while the finder is open. chosen is the
// picked item when the key confirmed a selection.
func (e *Engine) HandleKey(msg tea.KeyMsg) (chosen string, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.Deactivate()
		return "", nil
	case "enter":
		item, ok := e.Current()
		e.Deactivate()
		if !ok {
			return "", nil
		}
		return item, nil
	case "down", "ctrl+n":
		e.Next()
		return "", nil
	case "up", "ctrl+p":
		e.Previous()
		return "", nil
	}

	e.input, cmd = e.input.Update(msg)
	if v := e.input.Value(); v != e.query {
		e.query = v
		e.index = 0
		e.recomputeMatches()
	}
	return "", cmd
}

// Query returns the current query.
func (e *Engine) Query() string {
	return e.query
}

// recomputeMatches ranks the items against the query. An empty query
// matches everything in catalog order.
func (e *Engine) recomputeMatches() {
	if e.query == "" {
		e.matches = make(fuzzy.Matches, len(e.items))
		for i, it := range e.items {
			e.matches[i] = fuzzy.Match{Str: it, Index: i}
		}
	} else {
		e.matches = fuzzy.Find(e.query, e.items)
	}
	if e.index >= len(e.matches) {
		e.index = 0
	}
}

// Next advances to the next match.
func (e *Engine) Next() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index + 1) % len(e.matches)
}

// Previous moves to the previous match.
func (e *Engine) Previous() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index - 1 + len(e.matches)) % len(e.matches)
}

// Current returns the highlighted match.
func (e *Engine) Current() (string, bool) {
	if len(e.matches) == 0 {
		return "", false
	}
	return e.matches[e.index].Str, true
}

// MatchCount returns the number of matches.
func (e *Engine) MatchCount() int {
	return len(e.matches)
}

// CurrentMatchIndex returns the current match index (1-based).
func (e *Engine) CurrentMatchIndex() int {
	if len(e.matches) == 0 {
		return 0
	}
	return e.index + 1
}

// InputView returns the text input view.
func (e *Engine) InputView() string {
	return e.input.View()
}
