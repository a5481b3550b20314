package tui

import (
	"github.com/interpretive-systems/focalview/internal/config"
	"github.com/interpretive-systems/focalview/internal/playback"
)

// playTickMsg advances auto-play of one viewer. It carries the token of
// the play session that scheduled it.
type playTickMsg struct {
	viewer int
	token  playback.Token
}

// scrollFrameMsg advances a smooth strip scroll by one frame.
type scrollFrameMsg struct {
	viewer int
}

// probeMsg reports which referenced assets are missing.
type probeMsg struct {
	viewer  string
	total   int
	missing []string
	err     error
}

// configMsg carries a reloaded config file.
type configMsg struct {
	cfg config.Config
	err error
}
