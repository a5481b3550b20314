package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/focalview/internal/assets"
	"github.com/interpretive-systems/focalview/internal/playback"
)

const (
	scrollFrameInterval = 16 * time.Millisecond
	probeTimeout        = 30 * time.Second
)

// playTick schedules one auto-play step for tok after d.
func playTick(viewer int, tok playback.Token, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return playTickMsg{viewer: viewer, token: tok}
	})
}

// scrollFrame schedules the next smooth-scroll frame.
func scrollFrame(viewer int) tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{viewer: viewer}
	})
}

// probeAssets checks every path a viewer can reference.
func probeAssets(name string, paths []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		results, err := assets.Probe(ctx, "", paths, 0)
		return probeMsg{
			viewer:  name,
			total:   len(paths),
			missing: assets.Missing(results),
			err:     err,
		}
	}
}
