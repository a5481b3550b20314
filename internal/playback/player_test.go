package playback

import "testing"

func TestTick_BoundaryReflection(t *testing.T) {
	p := New(0, 8, 0)
	tok, started := p.Start()
	if !started {
		t.Fatalf("expected start")
	}
	var trace []int
	for i := 0; i < 40; i++ {
		pos, ok := p.Tick(tok)
		if !ok {
			t.Fatalf("tick %d rejected", i)
		}
		if pos < 0 || pos > 8 {
			t.Fatalf("position %d out of range at tick %d", pos, i)
		}
		trace = append(trace, pos)
	}
	for i := 0; i < 8; i++ {
		if trace[i] != i+1 {
			t.Fatalf("expected ascending run, got %v", trace[:9])
		}
	}
}

func TestTick_NineTicksFromZero(t *testing.T) {
	p := New(0, 8, 0)
	tok, _ := p.Start()
	for i := 0; i < 8; i++ {
		p.Tick(tok)
	}
	if p.Position() != 8 || p.Direction() != 1 {
		t.Fatalf("after 8 ticks want pos 8 dir +1, got %d %d", p.Position(), p.Direction())
	}
	p.Tick(tok)
	if p.Position() != 8 || p.Direction() != -1 {
		t.Fatalf("after 9 ticks want pos 8 dir -1, got %d %d", p.Position(), p.Direction())
	}
	p.Tick(tok)
	if p.Position() != 7 {
		t.Fatalf("expected descent to 7, got %d", p.Position())
	}
}

func TestTick_LowerBoundFlips(t *testing.T) {
	p := New(0, 8, 0)
	p.Seek(1)
	p.dir = -1
	tok, _ := p.Start()
	p.Tick(tok)
	p.Tick(tok)
	if p.Position() != 0 || p.Direction() != 1 {
		t.Fatalf("want pos 0 dir +1, got %d %d", p.Position(), p.Direction())
	}
}

func TestStart_Idempotent(t *testing.T) {
	p := New(0, 8, 0)
	first, started := p.Start()
	second, again := p.Start()
	if !started || again {
		t.Fatalf("second start should be a no-op")
	}
	if first != second {
		t.Fatalf("token changed on double start")
	}
}

func TestStop_InvalidatesToken(t *testing.T) {
	p := New(0, 8, 0)
	tok, _ := p.Start()
	p.Tick(tok)
	p.Stop()
	if _, ok := p.Tick(tok); ok {
		t.Fatalf("tick after stop must be ignored")
	}
	fresh, _ := p.Start()
	if _, ok := p.Tick(tok); ok {
		t.Fatalf("stale token accepted after restart")
	}
	if _, ok := p.Tick(fresh); !ok {
		t.Fatalf("fresh token rejected")
	}
}

func TestSet_ManualOverride(t *testing.T) {
	p := New(0, 8, 0)
	tok, _ := p.Start()
	p.Tick(tok)
	p.Tick(tok)

	if got := p.Set(5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if p.State() != Paused {
		t.Fatalf("manual set must pause, state=%v", p.State())
	}
	for i := 0; i < 3; i++ {
		p.Tick(tok)
	}
	if p.Position() != 5 {
		t.Fatalf("stale tick altered manual position: %d", p.Position())
	}
}

func TestSet_Clamps(t *testing.T) {
	p := New(0, 8, 0)
	if p.Set(12) != 8 || p.Set(-4) != 0 {
		t.Fatalf("expected clamping to [0,8]")
	}
}

func TestReset(t *testing.T) {
	p := New(0, 8, 0)
	old, _ := p.Start()
	for i := 0; i < 10; i++ {
		p.Tick(old)
	}
	tok := p.Reset()
	if p.Position() != 0 || p.Direction() != 1 || !p.Playing() {
		t.Fatalf("unexpected state after reset: pos=%d dir=%d %v", p.Position(), p.Direction(), p.State())
	}
	if tok == old {
		t.Fatalf("reset must issue a new token")
	}
	if _, ok := p.Tick(old); ok {
		t.Fatalf("pre-reset tick applied")
	}
}
