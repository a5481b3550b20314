package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/focalview/internal/config"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AccentColor  string
	DividerColor string
	MutedColor   string
	ThumbColor   string
	LensColor    string
}

func darkTheme() Theme {
	return Theme{
		AccentColor:  "63",
		DividerColor: "240",
		MutedColor:   "245",
		ThumbColor:   "111",
		LensColor:    "214",
	}
}

func lightTheme() Theme {
	return Theme{
		AccentColor:  "27",
		DividerColor: "244",
		MutedColor:   "242",
		ThumbColor:   "25",
		LensColor:    "166",
	}
}

// Get returns the named base theme; anything but "light" is dark.
func Get(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

// DefaultTheme returns the dark theme.
func DefaultTheme() Theme {
	return darkTheme()
}

// FromConfig merges config overrides onto the named base theme, keeping
// defaults for empty fields.
func FromConfig(c config.ThemeConfig) Theme {
	t := Get(c.Name)
	if c.AccentColor != "" {
		t.AccentColor = c.AccentColor
	}
	if c.DividerColor != "" {
		t.DividerColor = c.DividerColor
	}
	if c.MutedColor != "" {
		t.MutedColor = c.MutedColor
	}
	if c.ThumbColor != "" {
		t.ThumbColor = c.ThumbColor
	}
	if c.LensColor != "" {
		t.LensColor = c.LensColor
	}
	return t
}

func (t Theme) AccentText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentColor)).Bold(true).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

func (t Theme) MutedText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.MutedColor)).Faint(true).Render(s)
}

func (t Theme) ThumbText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ThumbColor)).Render(s)
}

func (t Theme) LensText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.LensColor)).Bold(true).Render(s)
}

// ActiveText renders a selected item.
func (t Theme) ActiveText(s string) string {
	return lipgloss.NewStyle().Reverse(true).Render(s)
}
