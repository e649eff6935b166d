package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-defender/internal/audio"
	"github.com/vovakirdan/quantum-defender/internal/core"
	"github.com/vovakirdan/quantum-defender/internal/registry"
	"github.com/vovakirdan/quantum-defender/internal/storage"
)

// Options configures a game model.
type Options struct {
	// Audio plays game sounds. Nil runs silently (SSH sessions).
	Audio *audio.Manager

	// Player is recorded with each saved run.
	Player string

	// Difficulty is the preset name recorded with each saved run.
	Difficulty string

	// Logger receives storage failures. Defaults to log.Default().
	Logger *log.Logger

	// Embedded marks a model hosted inside a session: the back key
	// returns to the launcher when the game is paused or over.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	runStart   time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	// The sink must be attached before Reset so the initial volume reaches it.
	if src, ok := game.(eventSource); ok && opts.Audio != nil {
		src.SetEventSink(AudioSink(opts.Audio))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		runStart:   time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if _, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		}
		return m, nil

	case m.opts.Embedded && key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen and the game to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without resize support start over at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A new run begins when the game leaves game over (play again)
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.runStart = time.Now()
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run. Runs that scored nothing are skipped.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID:       m.game.ID(),
		Player:       m.opts.Player,
		Score:        m.gameState.Score,
		Level:        m.gameState.Level,
		Success:      m.gameState.Success,
		Difficulty:   m.opts.Difficulty,
		Seed:         m.config.Seed,
		DurationSecs: int(time.Since(m.runStart).Seconds()),
	}
	if rep, ok := m.game.(registry.Reporter); ok {
		res := rep.Result()
		run.Score = res.Score
		run.Level = res.Level
		run.Destroyed = res.Destroyed
		run.Energy = res.Energy
		run.Success = res.Success
	}

	if _, err := m.store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "game", run.GameID, "score", run.Score, "err", err)
	}
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the launcher.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Node dragging needs press-and-motion events
	)

	_, err := p.Run()
	if opts.Audio != nil {
		opts.Audio.StopMusic()
	}
	return err
}
