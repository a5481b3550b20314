package scrollbar

import "math"

// Container is the native horizontal scroll container the scrollbar mirrors.
// All values are in pixels.
type Container interface {
	ClientWidth() float64
	ScrollWidth() float64
	ScrollLeft() float64
	SetScrollLeft(v float64)
	// ScrollBy moves the offset by delta. Smooth requests eased motion; the
	// container may apply it immediately.
	ScrollBy(delta float64, smooth bool)
}

// Track is the geometry of the synthetic scrollbar track.
type Track struct {
	Left  float64
	Width float64
}

// Contains reports whether x falls on the track.
func (t Track) Contains(x float64) bool {
	return x >= t.Left && x < t.Left+t.Width
}

// Config holds the scrollbar tuning constants.
type Config struct {
	MinThumbWidth float64
	Step          float64
	EndEpsilon    float64
	HintThreshold float64
}

// DefaultConfig returns the stock constants.
func DefaultConfig() Config {
	return Config{
		MinThumbWidth: 30,
		Step:          300,
		EndEpsilon:    5,
		HintThreshold: 10,
	}
}

// State is the rendered state of the scrollbar after a recompute.
type State struct {
	ThumbWidth    float64
	ThumbLeft     float64
	Fraction      float64
	LeftDisabled  bool
	RightDisabled bool
	AtEnd         bool
	HintHidden    bool
}

// Scrollbar mirrors and controls a Container's horizontal position.
type Scrollbar struct {
	cfg   Config
	c     Container
	track Track
	state State

	hintHidden bool

	dragging      bool
	dragPointer   float64
	dragThumbLeft float64
}

// New creates a scrollbar bound to c.
func New(c Container, cfg Config) *Scrollbar {
	if cfg.MinThumbWidth <= 0 {
		cfg.MinThumbWidth = DefaultConfig().MinThumbWidth
	}
	if cfg.Step <= 0 {
		cfg.Step = DefaultConfig().Step
	}
	return &Scrollbar{cfg: cfg, c: c}
}

// SetTrack updates the track geometry and recomputes.
func (s *Scrollbar) SetTrack(t Track) State {
	s.track = t
	return s.Recompute()
}

// Track returns the current track geometry.
func (s *Scrollbar) Track() Track {
	return s.track
}

// State returns the last computed state.
func (s *Scrollbar) State() State {
	return s.state
}

// Dragging reports whether a thumb drag is in progress.
func (s *Scrollbar) Dragging() bool {
	return s.dragging
}

// maxScroll returns Wc - Wv, which is <= 0 when nothing overflows.
func (s *Scrollbar) maxScroll() float64 {
	return s.c.ScrollWidth() - s.c.ClientWidth()
}

// Recompute derives the thumb and control state from the container metrics.
// It is a no-op while the container has no laid-out content.
func (s *Scrollbar) Recompute() State {
	if s.c == nil {
		return s.state
	}
	wv := s.c.ClientWidth()
	wc := s.c.ScrollWidth()
	left := s.c.ScrollLeft()
	if wc <= 0 || wv <= 0 {
		return s.state
	}

	thumb := math.Max(s.cfg.MinThumbWidth, wv*wv/wc)

	maxScroll := wc - wv
	fraction := 0.0
	if maxScroll > 0 {
		fraction = left / maxScroll
	}
	maxThumbLeft := s.track.Width - thumb
	if maxThumbLeft < 0 {
		maxThumbLeft = 0
	}

	noOverflow := maxScroll <= 0
	if left > s.cfg.HintThreshold || noOverflow {
		s.hintHidden = true
	}

	s.state = State{
		ThumbWidth:    thumb,
		ThumbLeft:     fraction * maxThumbLeft,
		Fraction:      fraction,
		LeftDisabled:  left <= 0 || noOverflow,
		RightDisabled: left >= maxScroll || noOverflow,
		AtEnd:         left >= maxScroll-s.cfg.EndEpsilon || noOverflow,
		HintHidden:    s.hintHidden,
	}
	return s.state
}

// OnThumb reports whether x lies on the thumb.
func (s *Scrollbar) OnThumb(x float64) bool {
	start := s.track.Left + s.state.ThumbLeft
	return x >= start && x < start+s.state.ThumbWidth
}

// JumpTo scrolls to the position of a click on the track at clickX.
func (s *Scrollbar) JumpTo(clickX float64) State {
	if s.track.Width <= 0 {
		return s.state
	}
	percent := (clickX - s.track.Left) / s.track.Width
	s.setOffset(percent * s.maxScroll())
	return s.Recompute()
}

// BeginDrag starts a thumb drag at pointerX.
func (s *Scrollbar) BeginDrag(pointerX float64) {
	s.dragging = true
	s.dragPointer = pointerX
	s.dragThumbLeft = s.state.ThumbLeft
}

// Drag moves the thumb with the pointer. It is a no-op outside a drag.
func (s *Scrollbar) Drag(pointerX float64) State {
	if !s.dragging {
		return s.state
	}
	maxLeft := s.track.Width - s.state.ThumbWidth
	if maxLeft <= 0 {
		return s.state
	}
	newLeft := s.dragThumbLeft + (pointerX - s.dragPointer)
	newLeft = math.Max(0, math.Min(newLeft, maxLeft))
	s.setOffset(newLeft / maxLeft * s.maxScroll())
	return s.Recompute()
}

// EndDrag finishes a thumb drag.
func (s *Scrollbar) EndDrag() {
	s.dragging = false
}

// ScrollBy nudges the container by delta.
func (s *Scrollbar) ScrollBy(delta float64, smooth bool) State {
	s.c.ScrollBy(delta, smooth)
	return s.Recompute()
}

// Nudge scrolls one step left (dir < 0) or right (dir > 0) with easing.
func (s *Scrollbar) Nudge(dir int) State {
	switch {
	case dir < 0:
		return s.ScrollBy(-s.cfg.Step, true)
	case dir > 0:
		return s.ScrollBy(s.cfg.Step, true)
	}
	return s.state
}

// setOffset writes v to the container clamped to the scrollable range.
func (s *Scrollbar) setOffset(v float64) {
	limit := s.maxScroll()
	if limit <= 0 || v < 0 {
		v = 0
	} else if v > limit {
		v = limit
	}
	s.c.SetScrollLeft(v)
}
