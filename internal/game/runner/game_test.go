package runner

import (
	"strings"
	"testing"

	"github.com/Yanthir84/PawRun/internal/config"
	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/registry"
)

// newSeededGame uses the full default config, random spawning included.
func newSeededGame(seed int64) *Game {
	g := New()
	g.SetConfig(config.DefaultRunnerConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestResetInitialState(t *testing.T) {
	g := newSeededGame(7)

	snap := g.Snapshot()
	if snap.Score != 0 || snap.GameOver || snap.Paused || snap.Tick != 0 {
		t.Fatalf("unexpected initial state: %+v", snap)
	}
	if snap.Speed != g.cfg.Difficulty.BaseSpeed {
		t.Fatalf("initial speed = %.2f, want base %.2f", snap.Speed, g.cfg.Difficulty.BaseSpeed)
	}
	if snap.Forward != 0 {
		t.Fatalf("initial forward = %.2f, want 0", snap.Forward)
	}
	if snap.Lane != 1 {
		t.Fatalf("initial lane = %d, want center", snap.Lane)
	}
	if snap.SpawnedTo < g.cfg.Track.LookAhead {
		t.Fatalf("initial window reaches %.1f, want at least %.1f", snap.SpawnedTo, g.cfg.Track.LookAhead)
	}
	if snap.SegmentCount == 0 || snap.EntityCount == 0 {
		t.Fatalf("initial world is empty: %+v", snap)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := newSeededGame(1234)
	b := newSeededGame(1234)

	// A fixed input script touching every action
	script := map[int]core.Action{
		10: core.ActionLaneLeft, 40: core.ActionJump,
		90: core.ActionLaneRight, 120: core.ActionSlide,
		200: core.ActionLaneRight, 260: core.ActionJump,
	}
	for tick := 0; tick < 600; tick++ {
		in := core.NewInputFrame()
		if act, ok := script[tick]; ok {
			in.Set(act)
		}
		a.Step(in)
		b.Step(in)

		if tick%100 == 0 && a.Snapshot() != b.Snapshot() {
			t.Fatalf("tick %d: runs diverged\n a=%+v\n b=%+v", tick, a.Snapshot(), b.Snapshot())
		}
	}
	if a.Snapshot() != b.Snapshot() {
		t.Fatalf("final snapshots differ\n a=%+v\n b=%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestDifferentSeedDifferentWorld(t *testing.T) {
	a := newSeededGame(1)
	b := newSeededGame(2)

	for tick := 0; tick < 300; tick++ {
		in := core.NewInputFrame()
		a.Step(in)
		b.Step(in)
	}
	if a.Snapshot() == b.Snapshot() {
		t.Fatal("different seeds produced identical runs")
	}
}

func TestResetRestartsIdentically(t *testing.T) {
	g := newSeededGame(99)
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})
	fresh := newSeededGame(99)

	if g.Snapshot() != fresh.Snapshot() {
		t.Fatalf("reset state differs from a fresh game\n got=%+v\nwant=%+v", g.Snapshot(), fresh.Snapshot())
	}
	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		g.Step(in)
		fresh.Step(in)
	}
	if g.Snapshot() != fresh.Snapshot() {
		t.Fatal("restarted run diverged from a fresh run with the same seed")
	}
}

func TestLongRunStaysBounded(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ObstacleChance = 0 // No collidables so the run never ends
	g := New()
	g.SetConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})

	maxSegments := int(cfg.Track.LookAhead/cfg.Track.SegmentLength) + 2
	prevForward := 0.0
	for tick := 1; tick <= 10000; tick++ {
		g.Step(core.NewInputFrame())

		if g.Distance() <= prevForward {
			t.Fatalf("tick %d: forward did not advance (%.3f -> %.3f)", tick, prevForward, g.Distance())
		}
		prevForward = g.Distance()

		if g.Speed() > cfg.Difficulty.MaxSpeed {
			t.Fatalf("tick %d: speed %.2f exceeds cap %.2f", tick, g.Speed(), cfg.Difficulty.MaxSpeed)
		}
		if tick%100 == 0 {
			if g.track.Len() > maxSegments {
				t.Fatalf("tick %d: %d segments active, want at most %d", tick, g.track.Len(), maxSegments)
			}
			if g.arena.Len() > 64 {
				t.Fatalf("tick %d: %d entities live, window is leaking", tick, g.arena.Len())
			}
		}
	}

	if g.Speed() != cfg.Difficulty.MaxSpeed {
		t.Fatalf("speed %.2f after 10000 ticks, want saturated at %.2f", g.Speed(), cfg.Difficulty.MaxSpeed)
	}
	if g.State().GameOver {
		t.Fatal("run ended without any collidable entities")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newScriptedGame(t)
	stepN(g, 30, core.NewInputFrame())

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	snap := g.Snapshot()
	stepN(g, 60, core.NewInputFrame())
	after := g.Snapshot()
	if after.Tick != snap.Tick || after.Forward != snap.Forward {
		t.Fatalf("simulation advanced while paused: %+v -> %+v", snap, after)
	}

	// The unpausing step itself runs a tick
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected unpaused state")
	}
	if g.Snapshot().Tick != snap.Tick+1 {
		t.Fatal("simulation did not resume after unpause")
	}
}

func TestSpeedRampIsMonotone(t *testing.T) {
	g := newSeededGame(3)
	prev := g.Speed()
	for i := 0; i < 1200; i++ {
		g.Step(core.NewInputFrame())
		if g.State().GameOver {
			break
		}
		if g.Speed() < prev {
			t.Fatalf("tick %d: speed decreased %.3f -> %.3f", i, prev, g.Speed())
		}
		prev = g.Speed()
	}
	if prev <= g.cfg.Difficulty.BaseSpeed {
		t.Fatal("speed never ramped above base")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newSeededGame(11)
	dst := core.NewScreen(80, 24)

	for i := 0; i < 90; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(dst)

	out := dst.String()
	if !strings.Contains(out, "Score:") {
		t.Fatal("HUD missing from rendered frame")
	}
	if !strings.ContainsRune(out, RunnerChar) &&
		!strings.ContainsRune(out, JumperChar) &&
		!strings.ContainsRune(out, SliderChar) {
		t.Fatal("player glyph missing from rendered frame")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newScriptedGame(t)
	insertLowObstacle(g, 1)
	stepN(g, 60, core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("setup: expected game over")
	}

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "WIPEOUT") {
		t.Fatal("game over overlay missing")
	}
}

func TestRegisteredInRegistry(t *testing.T) {
	if !registry.Exists("run") {
		t.Fatal("runner game not registered")
	}
	g, err := registry.Create("run")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "run" || g.Title() == "" {
		t.Fatalf("unexpected identity: id=%q title=%q", g.ID(), g.Title())
	}
}
