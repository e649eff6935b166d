package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-defender/internal/audio"
	"github.com/vovakirdan/quantum-defender/internal/config"
	"github.com/vovakirdan/quantum-defender/internal/core"
	"github.com/vovakirdan/quantum-defender/internal/games/defender"
	"github.com/vovakirdan/quantum-defender/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fastGame returns a game whose mission clock runs out in well under a second.
func fastGame() *defender.Game {
	cfg := config.DefaultDefenderConfig()
	cfg.Timing.HelpDelay = 0
	cfg.Timing.TickInterval = 10 * time.Millisecond
	return defender.NewWithConfig(cfg)
}

func newTestModel(t *testing.T, game *defender.Game, store *storage.Store, opts Options) Model {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
	m := NewModel(game, store, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openTestStore(t)
	game := fastGame()
	m := newTestModel(t, game, store, Options{Player: "tester", Difficulty: "normal"})

	m, _ = update(t, m, runeKey('s'))
	m = tick(t, m)
	if game.Phase() != defender.PhasePlaying {
		t.Fatalf("phase = %v, expected Playing", game.Phase())
	}

	// Score something so the run is worth saving
	anomalies := game.Anomalies()
	if len(anomalies) == 0 {
		t.Fatal("expected an anomaly right after start")
	}
	if !game.ClickAnomaly(anomalies[0].ID) {
		t.Fatal("ClickAnomaly() should destroy the anomaly")
	}

	for i := 0; i < 200 && !m.gameState.GameOver; i++ {
		m = tick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("game should be over after the mission clock runs out")
	}

	// Further ticks must not save again
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	runs, err := store.TopRuns("defender", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	final := game.Final()
	if r.Score != final.Score || r.Level != final.Level || r.Destroyed != final.Destroyed {
		t.Errorf("run = %+v, expected final stats %+v", r, final)
	}
	if r.Player != "tester" || r.Difficulty != "normal" || r.Seed != 7 {
		t.Errorf("run metadata = %q/%q/%d", r.Player, r.Difficulty, r.Seed)
	}
	if r.Success {
		t.Error("a timed-out run should not be a success")
	}

	// Play again resets the saved flag
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if m.gameState.GameOver || m.runSaved {
		t.Error("play again should start a fresh unsaved run")
	}
}

func TestModelSkipsZeroScoreRuns(t *testing.T) {
	store := openTestStore(t)
	game := fastGame()
	m := newTestModel(t, game, store, Options{})

	m, _ = update(t, m, runeKey('s'))
	for i := 0; i < 200 && !m.gameState.GameOver; i++ {
		m = tick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("game should be over")
	}
	if game.Score() != 0 {
		t.Skipf("score = %d, run is not zero-score", game.Score())
	}

	runs, err := store.TopRuns("defender", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("saved %d runs, expected none", len(runs))
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, fastGame(), nil, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := fastGame()
	m := newTestModel(t, game, nil, Options{})

	m, _ = update(t, m, runeKey('s'))
	m = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if game.Phase() != defender.PhasePlaying {
		t.Error("resize should not reset the mission")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show the size guard")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("size guard should clear after growing the window")
	}
}

func TestModelMouseDestroysAnomaly(t *testing.T) {
	game := fastGame()
	m := newTestModel(t, game, nil, Options{})

	m, _ = update(t, m, runeKey('s'))
	m = tick(t, m)

	anomalies := game.Anomalies()
	if len(anomalies) == 0 {
		t.Fatal("expected an anomaly right after start")
	}
	// Off-arena anomalies are drawn, and clickable, at the arena edge
	x, y := game.CellOf(anomalies[0].Pos)

	before := game.Destroyed()
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	tick(t, m)

	if game.Destroyed() != before+1 {
		t.Errorf("Destroyed() = %d, expected %d", game.Destroyed(), before+1)
	}
	if game.Dragging() != -1 {
		t.Error("no node should be dragged after release")
	}
}

func TestModelMouseDragsNode(t *testing.T) {
	game := fastGame()
	m := newTestModel(t, game, nil, Options{})

	m, _ = update(t, m, runeKey('s'))
	m = tick(t, m)

	node := game.Graph().Node(0)
	x, y := game.CellOf(node.Pos)

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: x + 10, Y: y + 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: x + 10, Y: y + 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	tick(t, m)

	moved := game.Graph().Node(0)
	if moved.Pos == node.Pos {
		t.Error("dragging should move the node")
	}
	if cx, cy := game.CellOf(moved.Pos); cx != x+10 || cy != y+3 {
		t.Errorf("node cell = (%d,%d), expected (%d,%d)", cx, cy, x+10, y+3)
	}
}

func TestModelEmbeddedBack(t *testing.T) {
	game := fastGame()
	m := newTestModel(t, game, nil, Options{Embedded: true})

	// Back is ignored while playing
	m, _ = update(t, m, runeKey('s'))
	m = tick(t, m)
	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should return to the launcher while paused")
	}
}

func TestAudioSinkVolume(t *testing.T) {
	mgr := audio.NewManager(audio.Options{Enabled: false, Volume: audio.DefaultVolume})
	sink := AudioSink(mgr)

	sink.Emit(defender.Event{Kind: defender.EventVolume, Value: 0.3})
	if mgr.Volume() != 0.3 {
		t.Errorf("Volume() = %v, expected 0.3", mgr.Volume())
	}

	// Cues and music on a silent manager are no-ops
	sink.Emit(defender.Event{Kind: defender.EventSound, Sound: defender.SoundExplosion})
	sink.Emit(defender.Event{Kind: defender.EventMusic, Music: defender.MusicStart})
	if mgr.MusicPlaying() {
		t.Error("silent manager should not play music")
	}
}

func TestModelSyncsInitialVolume(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	cfg.Timing.HelpDelay = 0
	cfg.Audio.Enabled = true
	cfg.Audio.Volume = 0.4

	mgr := audio.NewManager(audio.Options{Enabled: false, Volume: 1})
	newTestModel(t, defender.NewWithConfig(cfg), nil, Options{Audio: mgr})

	if mgr.Volume() != 0.4 {
		t.Errorf("Volume() = %v, expected the configured 0.4", mgr.Volume())
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		in   defender.Sound
		want audio.Cue
	}{
		{defender.SoundClick, audio.CueClick},
		{defender.SoundExplosion, audio.CueExplosion},
		{defender.SoundPowerUp, audio.CuePowerUp},
	}
	for _, tc := range tests {
		if got := cueFor(tc.in); got != tc.want {
			t.Errorf("cueFor(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
