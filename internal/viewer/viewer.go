// Package viewer is the per-instance viewer component: selection state,
// thumbnail scrollbar, magnifier and frame player behind one set of
// handler methods. The dataset and focal-stack viewers are two instances
// of it with different Specs.
package viewer

import (
	"strconv"

	"github.com/interpretive-systems/focalview/internal/config"
	"github.com/interpretive-systems/focalview/internal/magnifier"
	"github.com/interpretive-systems/focalview/internal/playback"
	"github.com/interpretive-systems/focalview/internal/scrollbar"
	"github.com/interpretive-systems/focalview/internal/tuilog"
)

// Options carries the component tuning shared by both instances.
type Options struct {
	Scrollbar scrollbar.Config
	Zoom      magnifier.Config
	ZoomStep  float64
}

// OptionsFromConfig maps the loaded config onto component options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Scrollbar: scrollbar.Config{
			MinThumbWidth: cfg.Scrollbar.MinThumb,
			Step:          cfg.Scrollbar.Step,
			EndEpsilon:    cfg.Scrollbar.EndEpsilon,
			HintThreshold: cfg.Scrollbar.HintThreshold,
		},
		Zoom: magnifier.Config{
			LensBase:    cfg.Zoom.LensBase,
			DefaultZoom: cfg.Zoom.Default,
			MinZoom:     cfg.Zoom.Min,
			MaxZoom:     cfg.Zoom.Max,
			Panel:       magnifier.Size{W: cfg.Zoom.PanelWidth, H: cfg.Zoom.PanelHeight},
		},
		ZoomStep: cfg.Zoom.Step,
	}
}

// Viewer is one viewer instance.
type Viewer struct {
	spec     Spec
	item     string
	method   string
	player   *playback.Player
	scroll   *scrollbar.Scrollbar
	mag      *magnifier.Magnifier
	zoomStep float64
	sizes    map[string]magnifier.Size
}

// New creates a viewer over spec. strip is the thumbnail container the
// scrollbar mirrors. The first item is selected.
func New(spec Spec, strip scrollbar.Container, opts Options) *Viewer {
	step := opts.ZoomStep
	if step <= 0 {
		step = 0.5
	}
	v := &Viewer{
		spec:     spec,
		player:   playback.New(spec.MinFrame, spec.MaxFrame, spec.Interval),
		scroll:   scrollbar.New(strip, opts.Scrollbar),
		mag:      magnifier.New(opts.Zoom),
		zoomStep: step,
		sizes:    make(map[string]magnifier.Size, len(spec.Slots)),
	}
	if len(spec.Methods) > 0 {
		v.method = spec.Methods[0].Key
	}
	v.item = spec.Catalog.First()
	if spec.ResetFrameOnSelect {
		v.player.Seek(spec.MinFrame)
	} else {
		v.player.Seek(spec.Catalog.DefaultFrame(v.item))
	}
	return v
}

// Name returns the instance name.
func (v *Viewer) Name() string { return v.spec.Name }

// Spec returns the instance parameters.
func (v *Viewer) Spec() Spec { return v.spec }

// Scrollbar returns the thumbnail scrollbar.
func (v *Viewer) Scrollbar() *scrollbar.Scrollbar { return v.scroll }

// Magnifier returns the zoom subsystem.
func (v *Viewer) Magnifier() *magnifier.Magnifier { return v.mag }

// Player returns the frame player.
func (v *Viewer) Player() *playback.Player { return v.player }

// Selection returns the current selection.
func (v *Viewer) Selection() Selection {
	return Selection{Item: v.item, Frame: v.player.Position(), Method: v.method}
}

// Init starts auto-play when the instance is configured to. ok reports
// whether a tick chain must be scheduled for tok.
func (v *Viewer) Init() (tok playback.Token, ok bool) {
	if !v.spec.Autoplay || !v.spec.StartPlaying {
		return 0, false
	}
	return v.player.Start()
}

// Select changes the current item. For instances that reset the frame on
// selection a running player restarts, and ok reports a new tick chain.
func (v *Viewer) Select(key string) (tok playback.Token, ok bool) {
	if key == "" {
		return 0, false
	}
	v.item = key
	if v.spec.ResetFrameOnSelect {
		v.player.Seek(v.spec.MinFrame)
		if v.player.Playing() {
			tok = v.player.Restart()
			ok = true
		}
	} else {
		v.player.Seek(v.spec.Catalog.DefaultFrame(key))
	}
	tuilog.Debug("select", "viewer", v.spec.Name, "item", key, "frame", v.player.Position())
	v.refreshZoom()
	return tok, ok
}

// SelectIndex selects the item at ordinal i.
func (v *Viewer) SelectIndex(i int) (playback.Token, bool) {
	return v.Select(v.spec.Catalog.At(i))
}

// ItemIndex returns the ordinal of the current item, or -1.
func (v *Viewer) ItemIndex() int {
	i, ok := v.spec.Catalog.Index(v.item)
	if !ok {
		return -1
	}
	return i
}

// SetFrame applies a manual frame choice. Auto-play is cancelled before
// the frame changes so no pending tick can overwrite it.
func (v *Viewer) SetFrame(n int) int {
	v.player.Stop()
	pos := v.player.Set(n)
	v.refreshZoom()
	return pos
}

// StepFrame moves the frame manually by delta.
func (v *Viewer) StepFrame(delta int) int {
	return v.SetFrame(v.player.Position() + delta)
}

// Play starts auto-play. ok reports a new tick chain for tok.
func (v *Viewer) Play() (tok playback.Token, ok bool) {
	if !v.spec.Autoplay {
		return 0, false
	}
	return v.player.Start()
}

// Pause stops auto-play.
func (v *Viewer) Pause() {
	v.player.Stop()
}

// TogglePlay flips between playing and paused.
func (v *Viewer) TogglePlay() (playback.Token, bool) {
	if v.player.Playing() {
		v.Pause()
		return 0, false
	}
	return v.Play()
}

// Reset rewinds to the first frame moving forward and plays.
func (v *Viewer) Reset() (tok playback.Token, ok bool) {
	if !v.spec.Autoplay {
		v.SetFrame(v.spec.MinFrame)
		return 0, false
	}
	tok = v.player.Reset()
	v.refreshZoom()
	return tok, true
}

// Tick applies one auto-play step for tok. Stale tokens are ignored.
func (v *Viewer) Tick(tok playback.Token) bool {
	if _, ok := v.player.Tick(tok); !ok {
		return false
	}
	v.refreshZoom()
	return true
}

// Method returns the current comparison method key.
func (v *Viewer) Method() string { return v.method }

// MethodLabel returns the display label of the current method.
func (v *Viewer) MethodLabel() string {
	for _, m := range v.spec.Methods {
		if m.Key == v.method {
			return m.Label
		}
	}
	return v.method
}

// SetMethod switches the comparison method. Unknown keys are ignored.
func (v *Viewer) SetMethod(key string) bool {
	for _, m := range v.spec.Methods {
		if m.Key == key {
			v.method = key
			v.refreshZoom()
			return true
		}
	}
	return false
}

// CycleMethod switches to the next method.
func (v *Viewer) CycleMethod() {
	n := len(v.spec.Methods)
	if n < 2 {
		return
	}
	for i, m := range v.spec.Methods {
		if m.Key == v.method {
			v.SetMethod(v.spec.Methods[(i+1)%n].Key)
			return
		}
	}
}

// SetSlotSize records the displayed size of a slot's image.
func (v *Viewer) SetSlotSize(id string, s magnifier.Size) {
	v.sizes[id] = s
}

// Sources returns the current source images in slot order.
func (v *Viewer) Sources() []magnifier.Source {
	sel := v.Selection()
	out := make([]magnifier.Source, 0, len(v.spec.Slots))
	for _, s := range v.spec.Slots {
		label := s.Label
		if s.MethodLabel {
			label = v.MethodLabel()
		}
		out = append(out, magnifier.Source{
			ID:    s.ID,
			Label: label,
			URL:   s.URL(sel),
			Size:  v.sizes[s.ID],
		})
	}
	return out
}

// HoverEnter starts magnifying over slot id.
func (v *Viewer) HoverEnter(id string) {
	v.mag.HoverEnter(id, v.Sources())
}

// HoverMove forwards a pointer position over the hovered slot.
func (v *Viewer) HoverMove(x, y, w, h float64) []magnifier.View {
	return v.mag.HoverMove(x, y, w, h)
}

// HoverExit stops magnifying.
func (v *Viewer) HoverExit() {
	v.mag.HoverExit()
}

// SetZoom changes the zoom factor.
func (v *Viewer) SetZoom(z float64) {
	v.mag.SetZoomFactor(z)
}

// ZoomBy changes the zoom factor by steps.
func (v *Viewer) ZoomBy(steps int) {
	v.mag.SetZoomFactor(v.mag.ZoomFactor() + float64(steps)*v.zoomStep)
}

func (v *Viewer) refreshZoom() {
	v.mag.RefreshSources(v.Sources())
}

// SlotImage is the displayed image of one slot.
type SlotImage struct {
	ID    string
	Label string
	URL   string
}

// Snapshot is a consistent render state. Image URLs, slider value and
// readout are all derived from the same selection.
type Snapshot struct {
	Name        string
	Title       string
	Item        string
	ItemIndex   int
	Caption     string
	Frame       int
	MinFrame    int
	MaxFrame    int
	Slider      int
	Readout     string
	MethodLabel string
	Images      []SlotImage
	HasPlayer   bool
	Playing     bool
	Direction   int
	Zoom        float64
	Lens        int
	Hovering    bool
	HoveredID   string
	Views       []magnifier.View
	Scroll      scrollbar.State
}

// Snapshot captures the render state.
func (v *Viewer) Snapshot() Snapshot {
	sel := v.Selection()
	srcs := v.Sources()
	imgs := make([]SlotImage, len(srcs))
	for i, s := range srcs {
		imgs[i] = SlotImage{ID: s.ID, Label: s.Label, URL: s.URL}
	}
	caption := sel.Item
	if v.spec.Caption != nil {
		caption = v.spec.Caption(sel)
	}
	var method string
	if len(v.spec.Methods) > 0 {
		method = v.MethodLabel()
	}
	return Snapshot{
		Name:        v.spec.Name,
		Title:       v.spec.Title,
		Item:        sel.Item,
		ItemIndex:   v.ItemIndex(),
		Caption:     caption,
		Frame:       sel.Frame,
		MinFrame:    v.spec.MinFrame,
		MaxFrame:    v.spec.MaxFrame,
		Slider:      sel.Frame,
		Readout:     strconv.Itoa(sel.Frame),
		MethodLabel: method,
		Images:      imgs,
		HasPlayer:   v.spec.Autoplay,
		Playing:     v.player.Playing(),
		Direction:   v.player.Direction(),
		Zoom:        v.mag.ZoomFactor(),
		Lens:        v.mag.LensSize(),
		Hovering:    v.mag.Hovering(),
		HoveredID:   v.mag.HoveredID(),
		Views:       v.mag.Views(),
		Scroll:      v.scroll.State(),
	}
}
