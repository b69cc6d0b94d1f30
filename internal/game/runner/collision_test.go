package runner

import (
	"testing"

	"github.com/Yanthir84/PawRun/internal/config"
	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/game/audio"
	"github.com/Yanthir84/PawRun/internal/game/entity"
)

// scriptedConfig returns a config with random spawning disabled and the speed
// ramp flattened, so tests can place entities by hand and predict exactly
// which tick the player crosses them.
func scriptedConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ObstacleChance = 0
	cfg.Spawn.SceneryChance = 0
	cfg.Difficulty.Ramp = 0
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newScriptedGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.SetConfig(scriptedConfig())
	g.Reset(testRuntime())
	return g
}

// At base speed 12 and 60 ticks/s the player advances 0.2 units per tick, so
// an entity at depth 6 is crossed around tick 30.
const scriptedDepth = 6.0

func insertLowObstacle(g *Game, lane int) entity.ID {
	x := entity.LaneOffset(lane, g.cfg.Lanes.Width)
	return g.arena.Insert(entity.Entity{
		Kind: entity.KindLowObstacle, Lane: lane,
		X: x, Depth: scriptedDepth,
		W: g.cfg.Lanes.Width * 0.8, H: 0.8, D: 0.8,
	})
}

func insertHighObstacle(g *Game, lane int) entity.ID {
	x := entity.LaneOffset(lane, g.cfg.Lanes.Width)
	return g.arena.Insert(entity.Entity{
		Kind: entity.KindHighObstacle, Lane: lane,
		X: x, Depth: scriptedDepth,
		W: g.cfg.Lanes.Width * 0.8, H: 1.2, D: 0.6, BaseY: 0.8,
	})
}

func insertCoin(g *Game, lane int) entity.ID {
	x := entity.LaneOffset(lane, g.cfg.Lanes.Width)
	return g.arena.Insert(entity.Entity{
		Kind: entity.KindCollectible, Lane: lane,
		X: x, Depth: scriptedDepth,
		W: 0.6, H: 0.6, D: 0.6, BaseY: 0.4,
	})
}

func stepN(g *Game, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRunningIntoLowObstacleEndsRun(t *testing.T) {
	g := newScriptedGame(t)

	gameOvers := 0
	finalScore := -1
	g.SetEvents(Events{OnGameOver: func(s int) {
		gameOvers++
		finalScore = s
	}})
	rec := &audio.Recorder{}
	g.SetAudioSink(rec)
	g.Reset(testRuntime())

	insertLowObstacle(g, entity.LaneCenter)
	stepN(g, 60, core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("expected game over after running into a low obstacle")
	}
	if gameOvers != 1 {
		t.Fatalf("OnGameOver fired %d times, want 1", gameOvers)
	}
	if finalScore != 0 {
		t.Fatalf("final score = %d, want 0", finalScore)
	}
	if rec.Count(audio.CueCrash) != 1 {
		t.Fatalf("crash cue played %d times, want 1", rec.Count(audio.CueCrash))
	}

	// The run stays frozen afterwards
	snap := g.Snapshot()
	stepN(g, 30, core.NewInputFrame())
	if g.Snapshot() != snap {
		t.Fatal("state changed after game over")
	}
	if gameOvers != 1 {
		t.Fatalf("OnGameOver fired again after the run ended: %d", gameOvers)
	}
}

func TestJumpClearsLowObstacle(t *testing.T) {
	g := newScriptedGame(t)
	insertLowObstacle(g, entity.LaneCenter)

	stepN(g, 20, core.NewInputFrame())
	g.Step(frame(core.ActionJump))
	stepN(g, 39, core.NewInputFrame())

	if g.State().GameOver {
		t.Fatal("jump over a low obstacle should not end the run")
	}
	if g.Distance() <= scriptedDepth {
		t.Fatalf("player should be past the obstacle, distance %.2f", g.Distance())
	}
}

func TestJumpDoesNotClearHighObstacle(t *testing.T) {
	g := newScriptedGame(t)
	insertHighObstacle(g, entity.LaneCenter)

	stepN(g, 20, core.NewInputFrame())
	g.Step(frame(core.ActionJump))
	stepN(g, 39, core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("jumping at a hanging obstacle should end the run")
	}
}

func TestSlidePassesHighObstacle(t *testing.T) {
	g := newScriptedGame(t)
	insertHighObstacle(g, entity.LaneCenter)

	stepN(g, 20, core.NewInputFrame())
	g.Step(frame(core.ActionSlide))
	stepN(g, 39, core.NewInputFrame())

	if g.State().GameOver {
		t.Fatal("slide under a high obstacle should not end the run")
	}
}

func TestSlideDoesNotClearLowObstacle(t *testing.T) {
	g := newScriptedGame(t)
	insertLowObstacle(g, entity.LaneCenter)

	stepN(g, 20, core.NewInputFrame())
	g.Step(frame(core.ActionSlide))
	stepN(g, 39, core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("sliding into a ground obstacle should end the run")
	}
}

func TestSteeringAroundObstacle(t *testing.T) {
	g := newScriptedGame(t)
	insertLowObstacle(g, entity.LaneCenter)

	g.Step(frame(core.ActionLaneLeft))
	stepN(g, 59, core.NewInputFrame())

	if g.State().GameOver {
		t.Fatal("obstacle in a different lane should not collide")
	}
}

func TestCollectCoin(t *testing.T) {
	g := newScriptedGame(t)

	scores := []int{}
	g.SetEvents(Events{OnScoreUpdate: func(s int) { scores = append(scores, s) }})
	rec := &audio.Recorder{}
	g.SetAudioSink(rec)
	g.Reset(testRuntime())

	id := insertCoin(g, entity.LaneLeft)
	g.Step(frame(core.ActionLaneLeft))
	stepN(g, 59, core.NewInputFrame())

	want := g.cfg.Spawn.CoinReward
	if g.State().Score != want {
		t.Fatalf("score = %d, want %d", g.State().Score, want)
	}
	if len(scores) != 1 || scores[0] != want {
		t.Fatalf("score events = %v, want [%d]", scores, want)
	}
	if _, ok := g.arena.Get(id); ok {
		t.Fatal("collected coin should be despawned")
	}
	if rec.Count(audio.CueCollect) != 1 {
		t.Fatalf("collect cue played %d times, want 1", rec.Count(audio.CueCollect))
	}
	if g.State().GameOver {
		t.Fatal("collecting a coin must not end the run")
	}
}

func TestMissedCoinDespawnsSilently(t *testing.T) {
	g := newScriptedGame(t)

	scores := 0
	g.SetEvents(Events{OnScoreUpdate: func(int) { scores++ }})
	g.Reset(testRuntime())

	// Coin in the left lane, player stays centered
	id := insertCoin(g, entity.LaneLeft)
	stepN(g, 300, core.NewInputFrame())

	if _, ok := g.arena.Get(id); ok {
		t.Fatal("missed coin should be culled once it falls behind")
	}
	if g.State().Score != 0 || scores != 0 {
		t.Fatalf("missed coin must not score, got score=%d events=%d", g.State().Score, scores)
	}
}

func TestSceneryNeverCollides(t *testing.T) {
	g := newScriptedGame(t)
	g.arena.Insert(entity.Entity{
		Kind: entity.KindScenery, Lane: -1,
		X: 0, Depth: scriptedDepth,
		W: 4.0, H: 2.5, D: 1.0,
	})

	stepN(g, 60, core.NewInputFrame())

	if g.State().GameOver {
		t.Fatal("scenery overlapping the player must not end the run")
	}
}
