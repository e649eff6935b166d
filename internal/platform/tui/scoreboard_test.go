package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-defender/internal/core"
	"github.com/vovakirdan/quantum-defender/internal/storage"
)

func TestRunRow(t *testing.T) {
	row := RunRow(3, storage.Run{
		Score:     12345,
		Level:     4,
		Success:   true,
		Player:    "alice",
		CreatedAt: time.Now(),
	})

	want := []string{"#3", "12,345", "4", "SUCCESS", "alice"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %d = %q, expected %q", i, row[i], w)
		}
	}

	row = RunRow(1, storage.Run{Score: 10})
	if row[3] != "FAILED" || row[4] != "-" {
		t.Errorf("failed anonymous run row = %v", row)
	}
}

func TestScoreboardViews(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveRun(storage.Run{GameID: "defender", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "defender", "Quantum Defender", 120, 40)
	if len(m.runs) != 3 || m.runs[0].Score != 300 {
		t.Fatalf("top view runs = %+v, expected best first", m.runs)
	}
	if m.stats == nil || m.stats.RunsCount != 3 {
		t.Error("stats should be loaded")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("top view should be titled HIGH SCORES")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != ViewRecent {
		t.Fatal("tab should switch to recent runs")
	}
	if m.runs[0].Score != 200 {
		t.Errorf("recent view first score = %d, expected the latest (200)", m.runs[0].Score)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "defender", "Quantum Defender", 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardEmbeddedBack(t *testing.T) {
	m := NewScoreboardModel(nil, "defender", "Quantum Defender", 80, 24)
	m.embedded = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
	if cmd != nil {
		t.Error("embedded scoreboard should not quit the program")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	s := NewSessionModel(store, cfg, SessionOptions{GameID: "defender", Username: "bob"})

	send := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// Second entry: high scores
	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", s.screen)
	}

	send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", s.screen)
	}

	// First entry: play
	send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.gameModel == nil {
		t.Fatal("selecting play should start the game")
	}
	if s.gameModel.opts.Audio != nil {
		t.Error("SSH sessions run without audio")
	}
	if s.gameModel.opts.Player != "bob" {
		t.Errorf("player = %q, expected bob", s.gameModel.opts.Player)
	}
	if !strings.Contains(s.View(), "QUANTUM") {
		t.Error("game view should render the title screen")
	}

	send(runeKey('q'))
	if !s.quitting {
		t.Error("q in game should end the session")
	}
}
