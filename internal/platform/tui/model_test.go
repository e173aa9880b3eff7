package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tipsy-rabbit/internal/config"
	"github.com/vovakirdan/tipsy-rabbit/internal/core"
	"github.com/vovakirdan/tipsy-rabbit/internal/games/rabbit"
	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

func testOptions() Options {
	return Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Player:  "tester",
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelStartsOnJump(t *testing.T) {
	m := NewModel(testOptions())

	if m.Game().Session() != rabbit.SessionNotStarted {
		t.Fatalf("new model session = %v, want not_started", m.Game().Session())
	}
	if m.Init() == nil {
		t.Error("Init should schedule a tick")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := update(t, m, TickMsg{})

	if m.Game().Session() != rabbit.SessionRunning {
		t.Errorf("session after jump = %v, want running", m.Game().Session())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.inputFrame.Has(core.ActionJump) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions())

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelBack(t *testing.T) {
	t.Run("standalone quits", func(t *testing.T) {
		m := NewModel(testOptions())
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() || !m.IsQuitting() {
			t.Errorf("BackToMenu = %v, IsQuitting = %v, want both true", m.BackToMenu(), m.IsQuitting())
		}
	})

	t.Run("embedded hands back", func(t *testing.T) {
		opts := testOptions()
		opts.Embedded = true
		m := NewModel(opts)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() {
			t.Error("embedded model should request back")
		}
		if m.IsQuitting() {
			t.Error("embedded model should not quit on back")
		}
	})

	t.Run("ignored while running", func(t *testing.T) {
		m := NewModel(testOptions())
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, _ = update(t, m, TickMsg{})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.BackToMenu() {
			t.Error("back should be ignored during a run")
		}
	})
}

func TestModelMuteWithoutAudio(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = update(t, m, runeKey('m'))
	if !m.muted {
		t.Error("m should toggle mute even without an audio device")
	}
	m, _ = update(t, m, runeKey('m'))
	if m.muted {
		t.Error("second m should unmute")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if m.Game().Session() != rabbit.SessionRunning {
		t.Error("resize should not reset the run")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testOptions())
	view := m.View()
	if view == "" {
		t.Fatal("View should render the start screen")
	}
	if got := strings.Count(view, "\n"); got != 23 {
		t.Errorf("View has %d line breaks, want 23", got)
	}
}

func TestModelLoadsStoredScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, s := range []int{120, 480, 60} {
		if _, err := store.SaveScore(rabbit.ID, "tester", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	opts := testOptions()
	opts.Store = store
	m := NewModel(opts)

	if got := m.Game().HighScore(); got != 480 {
		t.Errorf("HighScore() = %d, want 480", got)
	}
	if got := m.Game().History(); len(got) != 3 || got[0] != 120 || got[2] != 60 {
		t.Errorf("History() = %v, want [120 480 60]", got)
	}
}

func TestModelLoadsConfiguredHistorySize(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := range 14 {
		if _, err := store.SaveScore(rabbit.ID, "tester", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	cfg := config.DefaultRabbitConfig()
	cfg.Scoring.HistorySize = 12

	opts := testOptions()
	opts.Store = store
	opts.Game = &cfg
	m := NewModel(opts)

	got := m.Game().History()
	if len(got) != 12 {
		t.Fatalf("History() has %d runs, want 12", len(got))
	}
	if got[0] != 2 || got[11] != 13 {
		t.Errorf("History() = %v, want 2..13", got)
	}
}

func TestModelIgnoresOtherTickChains(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, next := m.resumeTicks()
	if next == nil {
		t.Fatal("resumeTicks should schedule a tick")
	}

	m, cmd := update(t, m, TickMsg{Gen: m.tickGen - 1})
	if cmd != nil || m.Game().Score() != 0 {
		t.Errorf("stale tick advanced the game to score %d", m.Game().Score())
	}

	m, cmd = update(t, m, TickMsg{Gen: m.tickGen})
	if cmd == nil || m.Game().Score() != 1 {
		t.Errorf("current tick should advance the game, score = %d", m.Game().Score())
	}
}
