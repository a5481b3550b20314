package search

import (
	"strings"
	"unicode/utf8"
)

const (
	// Matched characters: bold underline
	matchStartSeq = "\x1b[1;4m"
	// Current row: black on yellow
	currentRowStartSeq = "\x1b[30;43m"
	// Reset all styles
	matchEndSeq = "\x1b[0m"
)

// Highlighter marks the characters a fuzzy match consumed.
type Highlighter struct{}

// NewHighlighter creates a new highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Highlight wraps the bytes of s at idx in match styling. A current row is
// drawn reversed as a whole. s must be plain text.
func (h *Highlighter) Highlight(s string, idx []int, current bool) string {
	marked := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		marked[i] = struct{}{}
	}

	var b strings.Builder
	if current {
		b.WriteString(currentRowStartSeq)
	}
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if _, ok := marked[i]; ok {
			b.WriteString(matchStartSeq)
			b.WriteString(s[i : i+size])
			b.WriteString(matchEndSeq)
			if current {
				b.WriteString(currentRowStartSeq)
			}
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	if current {
		b.WriteString(matchEndSeq)
	}
	return b.String()
}
