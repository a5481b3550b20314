package tui

import (
	"github.com/interpretive-systems/focalview/internal/config"
	"github.com/interpretive-systems/focalview/internal/theme"
	"github.com/interpretive-systems/focalview/internal/tui/components"
	"github.com/interpretive-systems/focalview/internal/tui/search"
	"github.com/interpretive-systems/focalview/internal/viewer"
)

// State holds all application state.
type State struct {
	Config config.Config
	Theme  theme.Theme

	// Viewers and their thumbnail strips, by tab
	Viewers []*viewer.Viewer
	Strips  []*components.ThumbStrip
	Active  int

	// UI State
	Width    int
	Height   int
	ShowHelp bool

	// Components
	StatusBar *components.StatusBar
	Finder    *search.Engine
	Help      *components.HelpView
}

// NewState creates initial application state with both viewers.
func NewState(cfg config.Config) *State {
	s := &State{
		Config:    cfg,
		Theme:     theme.FromConfig(cfg.Theme),
		StatusBar: components.NewStatusBar(),
		Finder:    search.New(),
		Help:      components.NewHelpView(),
	}
	opts := viewer.OptionsFromConfig(cfg)
	for _, spec := range []viewer.Spec{viewer.DatasetSpec(cfg), viewer.FocalSpec(cfg)} {
		strip := components.NewThumbStrip(spec.Catalog.Keys(), cfg.Cell.Width)
		v := viewer.New(spec, strip, opts)
		strip.SetSelected(v.ItemIndex())
		s.Viewers = append(s.Viewers, v)
		s.Strips = append(s.Strips, strip)
	}
	return s
}

// Viewer returns the active viewer.
func (s *State) Viewer() *viewer.Viewer {
	return s.Viewers[s.Active]
}

// Strip returns the thumbnail strip of the active viewer.
func (s *State) Strip() *components.ThumbStrip {
	return s.Strips[s.Active]
}

// ViewerIndex returns the tab of the named viewer, or -1.
func (s *State) ViewerIndex(name string) int {
	for i, v := range s.Viewers {
		if v.Name() == name {
			return i
		}
	}
	return -1
}

// CellSize returns the pixel size of one terminal cell.
func (s *State) CellSize() (w, h float64) {
	w, h = float64(s.Config.Cell.Width), float64(s.Config.Cell.Height)
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 16
	}
	return w, h
}
