// Package magnifier keeps N aligned zoom panels focused on the same
// normalized point of their source images.
package magnifier

import "math"

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Source is one displayed source image.
type Source struct {
	ID    string
	Label string
	URL   string
	// Size is the size the source is displayed at.
	Size Size
}

// View is the computed placement of one zoom target inside its panel.
type View struct {
	SourceID string
	Label    string
	URL      string
	Width    float64
	Height   float64
	Left     float64
	Top      float64
}

// Config holds the zoom constants.
type Config struct {
	LensBase    float64
	DefaultZoom float64
	MinZoom     float64
	MaxZoom     float64
	Panel       Size
}

// DefaultConfig returns the stock zoom constants.
func DefaultConfig() Config {
	return Config{
		LensBase:    200,
		DefaultZoom: 3.0,
		MinZoom:     1.5,
		MaxZoom:     8,
		Panel:       Size{W: 200, H: 200},
	}
}

// Magnifier tracks the pointer over one source and positions every zoom
// target around the same focus point.
type Magnifier struct {
	cfg  Config
	zoom float64
	lens int

	hovering bool
	hoverID  string
	targets  []Source

	havePointer bool
	lastX       float64
	lastY       float64
	lastW       float64
	lastH       float64
	relX        float64
	relY        float64

	views []View
}

// New creates a magnifier at the configured default zoom.
func New(cfg Config) *Magnifier {
	if cfg.LensBase <= 0 {
		cfg.LensBase = DefaultConfig().LensBase
	}
	if cfg.DefaultZoom <= 0 {
		cfg.DefaultZoom = DefaultConfig().DefaultZoom
	}
	m := &Magnifier{cfg: cfg}
	m.SetZoomFactor(cfg.DefaultZoom)
	return m
}

// LensSize returns the on-image lens edge length in pixels.
func (m *Magnifier) LensSize() int {
	return m.lens
}

// ZoomFactor returns the current zoom factor.
func (m *Magnifier) ZoomFactor() float64 {
	return m.zoom
}

// Hovering reports whether a source image is hovered.
func (m *Magnifier) Hovering() bool {
	return m.hovering
}

// HoveredID returns the ID of the hovered source, or "".
func (m *Magnifier) HoveredID() string {
	if !m.hovering {
		return ""
	}
	return m.hoverID
}

// Focus returns the normalized focus point. ok is false unless hovering
// with a known pointer position.
func (m *Magnifier) Focus() (relX, relY float64, ok bool) {
	if !m.hovering || !m.havePointer {
		return 0, 0, false
	}
	return m.relX, m.relY, true
}

// Pointer returns the last pointer position relative to the hovered image.
func (m *Magnifier) Pointer() (x, y float64, ok bool) {
	if !m.hovering || !m.havePointer {
		return 0, 0, false
	}
	return m.lastX, m.lastY, true
}

// Views returns the current zoom target placements. It is empty while not
// hovering.
func (m *Magnifier) Views() []View {
	if !m.hovering {
		return nil
	}
	return m.views
}

// HoverEnter starts a hover over sourceID and snapshots the current source
// URLs into the zoom targets.
func (m *Magnifier) HoverEnter(sourceID string, sources []Source) {
	m.hovering = true
	m.hoverID = sourceID
	m.havePointer = false
	m.copySources(sources)
}

// RefreshSources re-copies source URLs while hovering so the zoom view
// follows frame and method changes.
func (m *Magnifier) RefreshSources(sources []Source) {
	if !m.hovering {
		return
	}
	m.copySources(sources)
	if m.havePointer {
		m.update()
	}
}

func (m *Magnifier) copySources(sources []Source) {
	m.targets = append(m.targets[:0], sources...)
	m.views = make([]View, len(m.targets))
	for i, s := range m.targets {
		m.views[i] = View{SourceID: s.ID, Label: s.Label, URL: s.URL}
	}
}

// HoverMove records a pointer position relative to the hovered image of
// size (w, h) and repositions every zoom target. It is a no-op when not
// hovering or when the image has no size yet.
func (m *Magnifier) HoverMove(x, y, w, h float64) []View {
	if !m.hovering || w == 0 || h == 0 {
		return m.Views()
	}
	m.lastX, m.lastY = x, y
	m.lastW, m.lastH = w, h
	m.havePointer = true
	m.update()
	return m.views
}

// HoverExit hides the zoom panels and clears pointer state.
func (m *Magnifier) HoverExit() {
	m.hovering = false
	m.hoverID = ""
	m.havePointer = false
	m.lastX, m.lastY = 0, 0
	m.relX, m.relY = 0, 0
	m.views = nil
}

// SetZoomFactor updates the zoom and lens size. While hovering with a
// known pointer the targets are recomputed immediately. Non-positive
// factors are ignored; others are clamped to the configured range.
func (m *Magnifier) SetZoomFactor(z float64) {
	if z <= 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return
	}
	if m.cfg.MinZoom > 0 && z < m.cfg.MinZoom {
		z = m.cfg.MinZoom
	}
	if m.cfg.MaxZoom > 0 && z > m.cfg.MaxZoom {
		z = m.cfg.MaxZoom
	}
	m.zoom = z
	m.lens = int(math.Round(m.cfg.LensBase / z))
	if m.hovering && m.havePointer {
		m.update()
	}
}

// SetPanel changes the zoom panel viewport size.
func (m *Magnifier) SetPanel(p Size) {
	m.cfg.Panel = p
	if m.hovering && m.havePointer {
		m.update()
	}
}

// Panel returns the zoom panel viewport size.
func (m *Magnifier) Panel() Size {
	return m.cfg.Panel
}

// update positions every target around (relX, relY). Coordinates are not
// clamped to [0,1].
func (m *Magnifier) update() {
	m.relX = m.lastX / m.lastW
	m.relY = m.lastY / m.lastH
	for i, s := range m.targets {
		zw := s.Size.W * m.zoom
		zh := s.Size.H * m.zoom
		m.views[i] = View{
			SourceID: s.ID,
			Label:    s.Label,
			URL:      s.URL,
			Width:    zw,
			Height:   zh,
			Left:     -(m.relX*zw - m.cfg.Panel.W/2),
			Top:      -(m.relY*zh - m.cfg.Panel.H/2),
		}
	}
}
