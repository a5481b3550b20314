// Package playback implements the ping-pong frame auto-play state machine.
package playback

import "time"

// State is the play/pause state.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// DefaultInterval is the auto-play tick period.
const DefaultInterval = 500 * time.Millisecond

// Token identifies one run of the auto-play timer. Ticks carrying a token
// from an earlier run are ignored.
type Token uint64

// Player advances a bounded position back and forth while playing.
type Player struct {
	min, max int
	pos      int
	dir      int
	state    State
	interval time.Duration

	running bool
	token   Token
}

// New creates a paused player over [lo, hi].
func New(lo, hi int, interval time.Duration) *Player {
	if hi < lo {
		lo, hi = hi, lo
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Player{min: lo, max: hi, pos: lo, dir: 1, interval: interval}
}

// Interval returns the tick period.
func (p *Player) Interval() time.Duration { return p.interval }

// Position returns the current position.
func (p *Player) Position() int { return p.pos }

// Direction returns +1 or -1.
func (p *Player) Direction() int { return p.dir }

// State returns the current state.
func (p *Player) State() State { return p.state }

// Playing reports whether the player is playing.
func (p *Player) Playing() bool { return p.state == Playing }

// Token returns the token of the active run. It is only meaningful while
// playing.
func (p *Player) Token() Token { return p.token }

// Start begins playing. Starting while already running is a no-op and
// returns started == false with the active token.
func (p *Player) Start() (tok Token, started bool) {
	if p.running {
		return p.token, false
	}
	p.token++
	p.running = true
	p.state = Playing
	return p.token, true
}

// Stop pauses and invalidates the active token.
func (p *Player) Stop() {
	if p.running {
		p.token++
		p.running = false
	}
	p.state = Paused
}

// Reset forces direction +1 and position to the lower bound, then plays.
func (p *Player) Reset() Token {
	p.Stop()
	p.dir = 1
	p.pos = p.min
	tok, _ := p.Start()
	return tok
}

// Restart stops and starts again, returning a fresh token.
func (p *Player) Restart() Token {
	p.Stop()
	tok, _ := p.Start()
	return tok
}

// Tick advances one step if tok belongs to the active run. Reaching a
// boundary flips the direction and clamps the position to it.
func (p *Player) Tick(tok Token) (pos int, ok bool) {
	if !p.running || tok != p.token {
		return p.pos, false
	}
	next := p.pos + p.dir
	if next > p.max {
		p.dir = -1
		next = p.max
	} else if next < p.min {
		p.dir = 1
		next = p.min
	}
	p.pos = next
	return p.pos, true
}

// Set applies a manual position. Manual input always stops playback
// before the position changes.
func (p *Player) Set(pos int) int {
	p.Stop()
	p.pos = p.clamp(pos)
	return p.pos
}

// Seek moves the position without touching the play state.
func (p *Player) Seek(pos int) int {
	p.pos = p.clamp(pos)
	return p.pos
}

func (p *Player) clamp(pos int) int {
	if pos < p.min {
		return p.min
	}
	if pos > p.max {
		return p.max
	}
	return pos
}
