// Package runner implements the endless-runner simulation: a character
// auto-advancing through a procedurally streamed three-lane corridor,
// steering and dodging obstacles while collecting coins. The Step method is
// the frame scheduler: each tick runs input, physics, streaming, culling and
// collision in a fixed order before the frame is presented.
package runner

import (
	"fmt"

	"github.com/Yanthir84/PawRun/internal/config"
	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/game/audio"
	"github.com/Yanthir84/PawRun/internal/game/camera"
	"github.com/Yanthir84/PawRun/internal/game/entity"
	"github.com/Yanthir84/PawRun/internal/game/player"
	"github.com/Yanthir84/PawRun/internal/game/track"
	"github.com/Yanthir84/PawRun/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game implements the runner game logic behind registry.Game.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	custom  *config.RunnerConfig
	dt      float64

	player  *player.Player
	track   *track.Streamer
	arena   *entity.Arena
	spawner *entity.Spawner
	camera  *camera.Camera

	speed    float64 // Forward speed, units/s; monotone up to the cap
	forward  float64 // Forward position, advances by speed each active tick
	score    int
	tick     uint64
	gameOver bool
	paused   bool

	finalReported bool // OnGameOver must fire exactly once per run

	events Events
	sink   audio.Sink
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{sink: audio.NullSink{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "run"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Paw Run"
}

// SetEvents installs the presentation callbacks. Call before Reset.
func (g *Game) SetEvents(e Events) {
	g.events = e
}

// SetAudioSink installs the audio cue sink. Call before Reset.
func (g *Game) SetAudioSink(sink audio.Sink) {
	if sink == nil {
		sink = audio.NullSink{}
	}
	g.sink = sink
}

// SetConfig overrides config loading for this instance. Used by tests and by
// hosts that manage configuration themselves.
func (g *Game) SetConfig(cfg config.RunnerConfig) {
	c := cfg
	g.custom = &c
}

// Reset initializes or restarts the run: score zero, speed at base, center
// lane, empty entity set, and a freshly regenerated initial segment window.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.Dt()

	cfg := g.loadConfig()
	g.cfg = cfg

	if g.arena == nil {
		g.arena = entity.NewArena(128)
	} else {
		g.arena.Reset()
	}

	g.spawner = entity.NewSpawner(runtime.Seed, cfg.Spawn, cfg.Lanes.Width, g.arena)
	g.track = track.NewStreamer(cfg.Track, g.spawner.Populate)
	g.player = player.New(cfg.Physics, cfg.Player, cfg.Lanes.Width, g.dt, g.sink)
	g.camera = camera.New(cfg.Camera, g.dt)

	g.speed = cfg.Difficulty.BaseSpeed
	g.forward = 0
	g.score = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.finalReported = false

	g.camera.Reset(g.player.Lateral(), g.forward)
	g.track.Reset()
}

func (g *Game) loadConfig() config.RunnerConfig {
	if g.custom != nil {
		return *g.custom
	}
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Step advances the simulation by one tick. The order is fixed: input, speed
// ramp, forward advance, player integration, world streaming and culling,
// camera, then collision against the already-advanced positions. Once the
// run has ended the simulation is frozen and Step is a no-op.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Input and accepted transitions
	g.player.Apply(in)

	// Difficulty ramp: the sole difficulty lever
	g.speed = g.cfg.Difficulty.NextSpeed(g.speed, g.dt)

	// Forward advance, then vertical/lateral integration
	g.forward += g.speed * g.dt
	g.player.Integrate()

	// Stream new world and discard what fell behind
	g.track.Advance(g.forward)
	for _, seg := range g.track.Cull(g.forward) {
		for _, id := range seg.Entities {
			g.arena.Remove(id) // Benign no-op if already gone
		}
	}
	g.cullEntities()

	g.camera.Follow(g.player.Lateral(), g.player.VerticalOffset(), g.forward)

	// Collisions run last, against this tick's advanced positions
	g.evaluateCollisions()

	return core.StepResult{State: g.State()}
}

// cullEntities silently despawns any entity that has crossed the cull
// threshold behind the player. No score effect, no notifications.
func (g *Game) cullEntities() {
	threshold := g.forward - g.cfg.Track.CullMargin
	g.arena.Each(func(e entity.Entity) {
		if e.Depth+e.D/2 < threshold {
			g.arena.Remove(e.ID)
		}
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Distance returns the forward distance traveled, for the HUD.
func (g *Game) Distance() float64 {
	return g.forward
}

// Speed returns the current forward speed in units per second.
func (g *Game) Speed() float64 {
	return g.speed
}

// DebugString summarizes the run for logs.
func (g *Game) DebugString() string {
	return fmt.Sprintf("tick=%d score=%d speed=%.1f forward=%.1f entities=%d segments=%d",
		g.tick, g.score, g.speed, g.forward, g.arena.Len(), g.track.Len())
}

// Register the game with the registry
func init() {
	registry.Register("run", func() registry.Game {
		return New()
	})
}
