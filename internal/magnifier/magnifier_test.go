package magnifier

import (
	"math"
	"testing"
)

func testSources() []Source {
	return []Source{
		{ID: "input", Label: "Input", URL: "a/start.jpg", Size: Size{W: 320, H: 240}},
		{ID: "method", Label: "NAF", URL: "naf/frame_3.jpg", Size: Size{W: 320, H: 240}},
		{ID: "ours", Label: "Ours", URL: "ours/frame_3.jpg", Size: Size{W: 320, H: 240}},
		{ID: "gt", Label: "GT", URL: "gt/frame_3.jpg", Size: Size{W: 320, H: 240}},
	}
}

func TestHoverMove_AllTargetsAligned(t *testing.T) {
	m := New(DefaultConfig())
	m.HoverEnter("ours", testSources())

	for _, p := range [][2]float64{{0, 0}, {160, 120}, {319, 1}, {80, 200}} {
		views := m.HoverMove(p[0], p[1], 320, 240)
		if len(views) != 4 {
			t.Fatalf("expected 4 views, got %d", len(views))
		}
		relX, relY, ok := m.Focus()
		if !ok {
			t.Fatalf("expected focus while hovering")
		}
		first := views[0]
		for _, v := range views {
			if v.Width != first.Width || v.Height != first.Height {
				t.Fatalf("scale differs: %+v vs %+v", v, first)
			}
			if v.Left != first.Left || v.Top != first.Top {
				t.Fatalf("offsets differ: %+v vs %+v", v, first)
			}
			// the panel centre maps back to the shared focus point
			cx := (100 - v.Left) / v.Width
			cy := (100 - v.Top) / v.Height
			if math.Abs(cx-relX) > 1e-9 || math.Abs(cy-relY) > 1e-9 {
				t.Fatalf("panel centre (%v,%v) != focus (%v,%v)", cx, cy, relX, relY)
			}
		}
		seen := map[string]bool{}
		for _, v := range views {
			if seen[v.URL] {
				t.Fatalf("duplicate URL %q", v.URL)
			}
			seen[v.URL] = true
		}
	}
}

func TestHoverMove_OffsetFormula(t *testing.T) {
	m := New(DefaultConfig())
	m.HoverEnter("input", testSources())
	v := m.HoverMove(80, 60, 320, 240)[0]
	// zoomed 960x720, rel 0.25, panel 200
	if v.Width != 960 || v.Height != 720 {
		t.Fatalf("unexpected zoomed size %vx%v", v.Width, v.Height)
	}
	if v.Left != -(0.25*960-100) || v.Top != -(0.25*720-100) {
		t.Fatalf("unexpected offsets (%v, %v)", v.Left, v.Top)
	}
}

func TestHoverMove_NotHoveringIsNoop(t *testing.T) {
	m := New(DefaultConfig())
	if views := m.HoverMove(10, 10, 100, 100); views != nil {
		t.Fatalf("expected no views when not hovering, got %v", views)
	}
	if _, _, ok := m.Focus(); ok {
		t.Fatalf("focus must be invalid when not hovering")
	}
}

func TestHoverMove_ZeroSizeGuarded(t *testing.T) {
	m := New(DefaultConfig())
	m.HoverEnter("input", testSources())
	m.HoverMove(10, 10, 0, 100)
	if _, _, ok := m.Focus(); ok {
		t.Fatalf("zero-width image must not produce a focus point")
	}
	for _, v := range m.Views() {
		if math.IsNaN(v.Left) || math.IsInf(v.Left, 0) {
			t.Fatalf("non-finite offset %v", v.Left)
		}
	}
}

func TestHoverExit_ClearsPointer(t *testing.T) {
	m := New(DefaultConfig())
	m.HoverEnter("input", testSources())
	m.HoverMove(50, 50, 320, 240)
	m.HoverExit()
	if m.Hovering() || m.Views() != nil || m.HoveredID() != "" {
		t.Fatalf("expected cleared state after exit")
	}
	if _, _, ok := m.Pointer(); ok {
		t.Fatalf("pointer must be cleared after exit")
	}
	// late zoom change after exit does nothing
	m.SetZoomFactor(5)
	if m.Views() != nil {
		t.Fatalf("zoom change after exit produced views")
	}
}

func TestSetZoomFactor_MidHover(t *testing.T) {
	m := New(DefaultConfig())
	if m.LensSize() != 67 {
		t.Fatalf("expected lens 67 at 3x, got %d", m.LensSize())
	}
	m.HoverEnter("gt", testSources())
	m.HoverMove(160, 120, 320, 240)
	before := m.Views()[0]

	m.SetZoomFactor(6)
	if m.LensSize() != 33 {
		t.Fatalf("expected lens 33 at 6x, got %d", m.LensSize())
	}
	after := m.Views()[0]
	if after.Width != 1920 || after.Height != 1440 {
		t.Fatalf("expected 6x size without pointer motion, got %vx%v", after.Width, after.Height)
	}
	if after.Left == before.Left {
		t.Fatalf("offsets were not recomputed")
	}
	if after.Left != -(0.5*1920-100) || after.Top != -(0.5*1440-100) {
		t.Fatalf("unexpected offsets (%v, %v)", after.Left, after.Top)
	}
}

func TestSetZoomFactor_IgnoresInvalidAndClamps(t *testing.T) {
	m := New(DefaultConfig())
	m.SetZoomFactor(0)
	m.SetZoomFactor(-2)
	if m.ZoomFactor() != 3 {
		t.Fatalf("non-positive zoom changed factor to %v", m.ZoomFactor())
	}
	m.SetZoomFactor(100)
	if m.ZoomFactor() != 8 {
		t.Fatalf("expected clamp to 8, got %v", m.ZoomFactor())
	}
	if m.LensSize() != 25 {
		t.Fatalf("expected lens 25, got %d", m.LensSize())
	}
}

func TestRefreshSources_FollowsFrame(t *testing.T) {
	m := New(DefaultConfig())
	m.HoverEnter("input", testSources())
	m.HoverMove(10, 20, 320, 240)

	next := testSources()
	next[1].URL = "naf/frame_4.jpg"
	m.RefreshSources(next)
	if got := m.Views()[1].URL; got != "naf/frame_4.jpg" {
		t.Fatalf("expected refreshed URL, got %q", got)
	}
	if m.Views()[1].Width == 0 {
		t.Fatalf("refresh dropped placement")
	}
}

func TestHoverEnter_SnapshotsSources(t *testing.T) {
	m := New(DefaultConfig())
	src := testSources()
	m.HoverEnter("input", src)
	src[0].URL = "mutated"
	if m.Views()[0].URL != "a/start.jpg" {
		t.Fatalf("targets must hold a copy of the source URLs")
	}
}
