package tui

import (
	"bytes"
	"testing"

	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/game/audio"
)

// cueGame records the audio sink handed to it.
type cueGame struct {
	sink audio.Sink
}

func (g *cueGame) ID() string                           { return "cue" }
func (g *cueGame) Title() string                        { return "Cue" }
func (g *cueGame) Reset(core.RuntimeConfig)             {}
func (g *cueGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *cueGame) Render(*core.Screen)                  {}
func (g *cueGame) State() core.GameState                { return core.GameState{} }
func (g *cueGame) SetAudioSink(s audio.Sink)            { g.sink = s }

// plainGame has no audio hook at all.
type plainGame struct{}

func (plainGame) ID() string                           { return "plain" }
func (plainGame) Title() string                        { return "Plain" }
func (plainGame) Reset(core.RuntimeConfig)             {}
func (plainGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (plainGame) Render(*core.Screen)                  {}
func (plainGame) State() core.GameState                { return core.GameState{} }

func TestInstallBellUsesGivenWriter(t *testing.T) {
	var remote bytes.Buffer
	g := &cueGame{}

	InstallBell(g, &remote)
	if g.sink == nil {
		t.Fatal("no sink installed")
	}

	g.sink.Play(audio.CueCrash)
	if remote.String() != "\a" {
		t.Fatalf("crash bell wrote %q to the session writer, want bell", remote.String())
	}
}

func TestInstallBellSkipsPlainGames(t *testing.T) {
	// Must not panic on games without an audio hook
	InstallBell(plainGame{}, &bytes.Buffer{})
}

func TestNewModelDoesNotInstallSink(t *testing.T) {
	g := &cueGame{}
	NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	// Sink wiring belongs to the entry points, which know the right writer
	if g.sink != nil {
		t.Fatal("NewModel installed an audio sink")
	}
}
