package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/focalview/internal/config"
	"github.com/interpretive-systems/focalview/internal/magnifier"
	"github.com/interpretive-systems/focalview/internal/playback"
	"github.com/interpretive-systems/focalview/internal/scrollbar"
	"github.com/interpretive-systems/focalview/internal/theme"
	"github.com/interpretive-systems/focalview/internal/tui/ansi"
	"github.com/interpretive-systems/focalview/internal/tui/components"
	"github.com/interpretive-systems/focalview/internal/tuilog"
	"github.com/interpretive-systems/focalview/internal/viewer"
)

// Options configures a TUI session.
type Options struct {
	Config config.Config
	// Start names the viewer shown first.
	Start string
	// ConfigPath is reloaded on change when Watch is set.
	ConfigPath string
	Watch      bool
	// Probe checks referenced assets on startup.
	Probe bool
}

// Program is the Bubble Tea model hosting both viewers.
type Program struct {
	state      *State
	layout     *Layout
	keyHandler *KeyHandler
	probe      bool
}

// New builds the program model.
func New(opts Options) Program {
	s := NewState(opts.Config)
	if i := s.ViewerIndex(opts.Start); i >= 0 {
		s.Active = i
	}
	return Program{
		state:      s,
		layout:     NewLayout(),
		keyHandler: NewKeyHandler(),
		probe:      opts.Probe,
	}
}

// Run instantiates and runs the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if opts.Watch && opts.ConfigPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := config.Watch(ctx, opts.ConfigPath, config.DefaultDebounce,
				func(cfg config.Config) { p.Send(configMsg{cfg: cfg}) },
				func(err error) { p.Send(configMsg{err: err}) },
			)
			if err != nil {
				tuilog.Warn("config watch stopped", "path", opts.ConfigPath, "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (p Program) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range p.state.Viewers {
		if tok, ok := v.Init(); ok {
			cmds = append(cmds, playTick(i, tok, v.Player().Interval()))
		}
		if p.probe {
			cmds = append(cmds, probeAssets(v.Name(), v.Spec().AllPaths()))
		}
	}
	return tea.Batch(cmds...)
}

func (p Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.state.Width, p.state.Height = msg.Width, msg.Height
		p.layout.SetSize(msg.Width, msg.Height)
		p.applyGeometry()
		return p, nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	case tea.MouseMsg:
		return p.handleMouse(msg)
	case playTickMsg:
		if msg.viewer < 0 || msg.viewer >= len(p.state.Viewers) {
			return p, nil
		}
		v := p.state.Viewers[msg.viewer]
		if !v.Tick(msg.token) {
			return p, nil
		}
		return p, playTick(msg.viewer, msg.token, v.Player().Interval())
	case scrollFrameMsg:
		if msg.viewer < 0 || msg.viewer >= len(p.state.Strips) {
			return p, nil
		}
		more := p.state.Strips[msg.viewer].Step()
		p.state.Viewers[msg.viewer].Scrollbar().Recompute()
		if more {
			return p, scrollFrame(msg.viewer)
		}
		return p, nil
	case probeMsg:
		p.handleProbe(msg)
		return p, nil
	case configMsg:
		p.handleConfig(msg)
		return p, nil
	}
	return p, nil
}

// applyGeometry reports the laid-out sizes to every viewer: strip
// viewport, scrollbar track, source image sizes and zoom panel size, all
// in pixels.
func (p Program) applyGeometry() {
	cw, ch := p.state.CellSize()
	src, zoom := p.layout.imageRows()
	p.state.Help.SetSize(p.state.Width, src+zoom+2)
	for i, v := range p.state.Viewers {
		r := p.layout.Regions(len(v.Spec().Slots))
		strip := p.state.Strips[i]
		strip.SetViewport(r.Strip.W)
		v.HoverExit()
		for j, slot := range v.Spec().Slots {
			rect := r.Panels[j]
			v.SetSlotSize(slot.ID, magnifier.Size{W: float64(rect.W) * cw, H: float64(rect.H) * ch})
		}
		if len(r.Zooms) > 0 {
			z := r.Zooms[0]
			v.Magnifier().SetPanel(magnifier.Size{W: float64(z.W) * cw, H: float64(z.H) * ch})
		}
		strip.EnsureVisible(v.ItemIndex())
		v.Scrollbar().SetTrack(scrollbar.Track{
			Left:  float64(r.Track.X) * cw,
			Width: float64(r.Track.W) * cw,
		})
	}
}

func (p Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := p.state
	if s.Finder.IsActive() {
		chosen, cmd := s.Finder.HandleKey(msg)
		if chosen != "" {
			return p, tea.Batch(cmd, p.selectItem(chosen))
		}
		return p, cmd
	}
	if s.ShowHelp {
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "?", "esc":
			s.ShowHelp = false
			return p, nil
		}
		return p, s.Help.Update(msg)
	}

	action, count := p.keyHandler.Handle(msg)
	s.StatusBar.SetKeyBuffer(p.keyHandler.KeyBuffer())
	v := s.Viewer()

	switch action {
	case ActionQuit:
		return p, tea.Quit
	case ActionToggleHelp:
		v.HoverExit()
		s.Help.SetContent(p.helpLines())
		s.ShowHelp = true
	case ActionOpenFinder:
		v.HoverExit()
		s.Finder.SetItems(v.Spec().Catalog.Keys())
		s.Finder.Activate()
		return p, textinput.Blink
	case ActionNextViewer:
		p.switchViewer((s.Active + 1) % len(s.Viewers))
	case ActionDatasetViewer:
		p.switchViewer(s.ViewerIndex(viewer.DatasetName))
	case ActionFocalViewer:
		p.switchViewer(s.ViewerIndex(viewer.FocalName))
	case ActionFramePrev:
		v.StepFrame(-count)
	case ActionFrameNext:
		v.StepFrame(count)
	case ActionFrameFirst:
		v.SetFrame(v.Spec().MinFrame)
	case ActionFrameLast:
		v.SetFrame(v.Spec().MaxFrame)
	case ActionTogglePlay:
		return p, p.startTicks(v.TogglePlay())
	case ActionReset:
		return p, p.startTicks(v.Reset())
	case ActionZoomIn:
		v.ZoomBy(count)
	case ActionZoomOut:
		v.ZoomBy(-count)
	case ActionCycleMethod:
		v.CycleMethod()
	case ActionStripLeft:
		return p, p.nudge(-1)
	case ActionStripRight:
		return p, p.nudge(1)
	case ActionItemPrev:
		return p, p.selectIndex(v.ItemIndex() - count)
	case ActionItemNext:
		return p, p.selectIndex(v.ItemIndex() + count)
	}
	return p, nil
}

func (p Program) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := p.state
	if s.ShowHelp {
		if tea.MouseEvent(msg).IsWheel() {
			return p, s.Help.Update(msg)
		}
		return p, nil
	}
	if s.Finder.IsActive() {
		return p, nil
	}
	v := s.Viewer()
	sb := v.Scrollbar()
	r := p.layout.Regions(len(v.Spec().Slots))
	cw, _ := s.CellSize()
	// Pointer x in pixels, at the centre of the cell.
	px := (float64(msg.X) + 0.5) * cw

	switch msg.Action {
	case tea.MouseActionRelease:
		if sb.Dragging() {
			sb.EndDrag()
		}
		return p, nil
	case tea.MouseActionMotion:
		if sb.Dragging() {
			sb.Drag(px)
			return p, nil
		}
		p.updateHover(msg.X, msg.Y, r)
		return p, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return p, p.wheel(msg.X, msg.Y, r, -1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return p, p.wheel(msg.X, msg.Y, r, 1)
	case tea.MouseButtonLeft:
	default:
		return p, nil
	}

	switch {
	case r.Prev.Contains(msg.X, msg.Y):
		if !sb.State().LeftDisabled {
			return p, p.nudge(-1)
		}
	case r.Next.Contains(msg.X, msg.Y):
		if !sb.State().RightDisabled {
			return p, p.nudge(1)
		}
	case r.Track.Contains(msg.X, msg.Y):
		if sb.OnThumb(px) {
			sb.BeginDrag(px)
		} else {
			sb.JumpTo(px)
		}
	case r.Strip.Contains(msg.X, msg.Y):
		if i := s.Strip().ItemAt(msg.X - r.Strip.X); i >= 0 {
			return p, p.selectIndex(i)
		}
	case r.Slider.Contains(msg.X, msg.Y):
		if n, ok := components.SliderValueAt(msg.X, v.Spec().MinFrame, v.Spec().MaxFrame, r.Slider.W); ok {
			v.SetFrame(n)
		}
	case r.Controls.Contains(msg.X, msg.Y):
		return p, p.pressControl(components.ControlAt(v.Snapshot(), msg.X))
	}
	return p, nil
}

func (p Program) pressControl(c components.Control) tea.Cmd {
	v := p.state.Viewer()
	switch c {
	case components.ControlPlay:
		return p.startTicks(v.Play())
	case components.ControlPause:
		v.Pause()
	case components.ControlReset:
		return p.startTicks(v.Reset())
	case components.ControlZoomIn:
		v.ZoomBy(1)
	case components.ControlZoomOut:
		v.ZoomBy(-1)
	case components.ControlMethod:
		v.CycleMethod()
	}
	return nil
}

// wheel scrolls the strip over the strip rows, steps frames over the
// slider and zooms over the panels.
func (p Program) wheel(x, y int, r Regions, dir int) tea.Cmd {
	v := p.state.Viewer()
	switch {
	case y == r.Strip.Y || y == r.Track.Y:
		return p.nudge(dir)
	case r.Slider.Contains(x, y):
		v.StepFrame(dir)
	case v.Magnifier().Hovering():
		v.ZoomBy(-dir)
	}
	return nil
}

// updateHover drives the magnifier from a pointer position in cells.
// Moving between panels exits the old hover before entering the new one.
func (p Program) updateHover(x, y int, r Regions) {
	v := p.state.Viewer()
	cw, ch := p.state.CellSize()
	for j, rect := range r.Panels {
		if !rect.Contains(x, y) || j >= len(v.Spec().Slots) {
			continue
		}
		id := v.Spec().Slots[j].ID
		if v.Magnifier().HoveredID() != id {
			v.HoverExit()
			v.HoverEnter(id)
		}
		v.HoverMove(
			(float64(x-rect.X)+0.5)*cw,
			(float64(y-rect.Y)+0.5)*ch,
			float64(rect.W)*cw,
			float64(rect.H)*ch,
		)
		return
	}
	if v.Magnifier().Hovering() {
		v.HoverExit()
	}
}

// nudge scrolls the active strip by one step. Only the first of several
// overlapping nudges starts a frame chain.
func (p Program) nudge(dir int) tea.Cmd {
	strip := p.state.Strip()
	animating := strip.Animating()
	p.state.Viewer().Scrollbar().Nudge(dir)
	if strip.Animating() && !animating {
		return scrollFrame(p.state.Active)
	}
	return nil
}

// startTicks schedules the tick chain of a new play session on the active
// viewer.
func (p Program) startTicks(tok playback.Token, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	v := p.state.Viewer()
	return playTick(p.state.Active, tok, v.Player().Interval())
}

func (p Program) selectItem(key string) tea.Cmd {
	v := p.state.Viewer()
	tok, ok := v.Select(key)
	strip := p.state.Strip()
	strip.SetSelected(v.ItemIndex())
	strip.EnsureVisible(v.ItemIndex())
	v.Scrollbar().Recompute()
	return p.startTicks(tok, ok)
}

func (p Program) selectIndex(i int) tea.Cmd {
	n := p.state.Viewer().Spec().Catalog.Len()
	if n == 0 {
		return nil
	}
	i = max(0, min(i, n-1))
	return p.selectItem(p.state.Viewer().Spec().Catalog.At(i))
}

func (p Program) switchViewer(i int) {
	if i < 0 || i >= len(p.state.Viewers) || i == p.state.Active {
		return
	}
	p.state.Viewer().HoverExit()
	p.state.Viewer().Scrollbar().EndDrag()
	p.state.Active = i
	tuilog.Debug("switch viewer", "viewer", p.state.Viewer().Name())
}

func (p Program) handleProbe(msg probeMsg) {
	if msg.err != nil {
		tuilog.Warn("asset probe", "viewer", msg.viewer, "err", msg.err)
		return
	}
	if len(msg.missing) == 0 {
		tuilog.Info("asset probe", "viewer", msg.viewer, "total", msg.total)
		return
	}
	tuilog.Warn("asset probe", "viewer", msg.viewer, "missing", len(msg.missing), "first", msg.missing[0])
	p.state.StatusBar.SetMessage(fmt.Sprintf("%s: %d of %d images missing", msg.viewer, len(msg.missing), msg.total))
}

// handleConfig applies a reloaded config. Only the theme is live; the
// catalogs and geometry keep the values the session started with.
func (p Program) handleConfig(msg configMsg) {
	if msg.err != nil {
		tuilog.Warn("config reload", "err", msg.err)
		p.state.StatusBar.SetMessage("config: " + msg.err.Error())
		return
	}
	p.state.Config.Theme = msg.cfg.Theme
	p.state.Theme = theme.FromConfig(msg.cfg.Theme)
	p.state.StatusBar.SetMessage("")
	p.state.StatusBar.SetLastReload(time.Now())
	tuilog.Info("config reloaded", "theme", msg.cfg.Theme.Name)
}

func (p Program) View() string {
	s := p.state
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	v := s.Viewer()
	snap := v.Snapshot()
	r := p.layout.Regions(len(snap.Images))
	cw, _ := s.CellSize()
	t := s.Theme

	body := []string{
		"  " + s.Strip().Render(t),
		components.RenderScrollbar(snap.Scroll, r.Track.W, cw, t),
		"  " + components.RenderHint(snap.Scroll, r.Track.W, t),
		t.DividerText(strings.Repeat("─", s.Width)),
	}
	src, zoom := p.layout.imageRows()
	switch {
	case s.ShowHelp:
		body = append(body, fitLines(s.Help.Lines(), src+zoom+2, s.Width)...)
	default:
		body = append(body, components.RenderSources(snap.Images, r.Widths, src, snap.HoveredID, p.lensBox(snap), t)...)
		if s.Finder.IsActive() {
			overlay := s.Finder.RenderOverlay(s.Width, max(0, zoom-2), t.DividerColor)
			body = append(body, fitLines(overlay, zoom+1, s.Width)...)
		} else {
			body = append(body, components.RenderZooms(snap.Views, r.Widths, zoom, snap.Zoom, t)...)
		}
	}
	body = append(body,
		components.RenderSlider(snap.Slider, snap.MinFrame, snap.MaxFrame, s.Width, snap.Readout, t),
		components.RenderControls(snap, s.Width, t),
	)

	return p.layout.RenderFrame(p.tabs(), p.topRight(snap), body, s.StatusBar.Render(s.Width, p.position(snap)), t)
}

// lensBox converts the magnifier pointer and lens size to panel cells.
func (p Program) lensBox(snap viewer.Snapshot) *components.LensBox {
	x, y, ok := p.state.Viewer().Magnifier().Pointer()
	if !ok {
		return nil
	}
	cw, ch := p.state.CellSize()
	return &components.LensBox{
		Slot: snap.HoveredID,
		Col:  int(x / cw),
		Row:  int(y / ch),
		Cols: max(1, int(math.Round(float64(snap.Lens)/cw))),
		Rows: max(1, int(math.Round(float64(snap.Lens)/ch))),
	}
}

func (p Program) tabs() string {
	var parts []string
	for i, v := range p.state.Viewers {
		label := fmt.Sprintf(" %d %s ", i+1, v.Spec().Title)
		if i == p.state.Active {
			label = p.state.Theme.ActiveText(label)
		} else {
			label = p.state.Theme.MutedText(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (p Program) topRight(snap viewer.Snapshot) string {
	idx := "-"
	if snap.ItemIndex >= 0 {
		idx = fmt.Sprint(snap.ItemIndex + 1)
	}
	n := p.state.Viewer().Spec().Catalog.Len()
	return fmt.Sprintf("%s  %s/%d", snap.Caption, idx, n)
}

func (p Program) position(snap viewer.Snapshot) string {
	pos := fmt.Sprintf("frame %d/%d", snap.Frame, snap.MaxFrame)
	if !snap.HasPlayer {
		return pos
	}
	if snap.Playing {
		arrow := "▸"
		if snap.Direction < 0 {
			arrow = "◂"
		}
		return pos + " " + arrow + " playing"
	}
	return pos + " paused"
}

func (p Program) helpLines() []string {
	return []string{
		"Keys",
		"  tab / 1 / 2      switch viewer",
		"  ← → / h l        previous / next frame (digits set a count)",
		"  g / G            first / last frame",
		"  space / p        play / pause",
		"  r                reset",
		"  + / -            zoom in / out",
		"  m                next comparison method",
		"  [ / ]            scroll thumbnails",
		"  ↑ ↓ / k j        previous / next item",
		"  /                find item",
		"  ? / esc          close help",
		"  q                quit",
		"",
		"Mouse: hover a source image to zoom, click a thumbnail to select it,",
		"drag or click the scrollbar, click the slider to pick a frame.",
		"Scroll this help with ↑ ↓, pgup / pgdown or the wheel.",
	}
}

func fitLines(lines []string, n, width int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(lines) {
			out[i] = ansi.PadExact(lines[i], width)
		} else {
			out[i] = ansi.PadExact("", width)
		}
	}
	return out
}
