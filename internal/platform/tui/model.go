package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Yanthir84/PawRun/internal/core"
	"github.com/Yanthir84/PawRun/internal/flavor"
	"github.com/Yanthir84/PawRun/internal/game/audio"
	"github.com/Yanthir84/PawRun/internal/registry"
	"github.com/Yanthir84/PawRun/internal/storage"
)

// audioAware games accept an audio sink before Reset.
type audioAware interface {
	SetAudioSink(audio.Sink)
}

// distancer games report forward distance for run persistence and the HUD.
type distancer interface {
	Distance() float64
}

// debugStringer games summarize their state for logs.
type debugStringer interface {
	DebugString() string
}

// taglineMsg carries the resolved game-over tagline back into the model.
type taglineMsg string

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	flavorSrc  flavor.Source
	tagline    string
	logger     *log.Logger
	quitting   bool
	runSaved   bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		flavorSrc:  flavor.NewStatic(cfg.Seed),
		logger:     log.NewWithOptions(os.Stderr, log.Options{Prefix: "pawrun"}),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case taglineMsg:
		m.tagline = string(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reseed for the new run
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.tagline = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run on game over (once) and fetch a tagline
	var cmds []tea.Cmd
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
		cmds = append(cmds, fetchTaglineCmd(m.flavorSrc))
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// saveRun persists the finished run. Failures are logged, never fatal.
func (m *Model) saveRun() {
	if ds, ok := m.game.(debugStringer); ok {
		m.logger.Debug("run finished", "state", ds.DebugString())
	}

	if m.store == nil {
		return
	}

	distance := 0.0
	if d, ok := m.game.(distancer); ok {
		distance = d.Distance()
	}

	if _, err := m.store.SaveRun(m.game.ID(), m.gameState.Score, distance); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// fetchTaglineCmd resolves a game-over tagline off the tick loop. The fetch
// has a hard timeout and always yields a line.
func fetchTaglineCmd(src flavor.Source) tea.Cmd {
	return func() tea.Msg {
		return taglineMsg(flavor.Fetch(context.Background(), src, 500*time.Millisecond))
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pawrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	if m.gameState.GameOver && m.tagline != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.tagline)
	}

	// Convert screen to string
	return RenderScreen(m.screen)
}

// InstallBell points the game's crash bell at the given terminal writer.
// Each entry point owns its writer: local runs use stdout, SSH sessions
// their session stream.
func InstallBell(game registry.Game, w io.Writer) {
	if aa, ok := game.(audioAware); ok {
		aa.SetAudioSink(audio.BellSink{W: w})
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	InstallBell(game, os.Stdout)
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
