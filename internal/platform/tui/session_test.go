package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mindflex/internal/core"
	_ "github.com/vovakirdan/mindflex/internal/games/schulte"
	"github.com/vovakirdan/mindflex/internal/storage"
)

func testOptions(t *testing.T) SessionOptions {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return SessionOptions{
		Config:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Painter:   plainPainter(),
		SessionID: "test-session",
	}
}

func update(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionPicksAndLeavesGame(t *testing.T) {
	m := NewSessionModel(testOptions(t))
	if m.view != viewMenu {
		t.Fatalf("initial view = %v, want menu", m.view)
	}
	if !strings.Contains(m.View(), "Schulte Table") {
		t.Errorf("menu does not list schulte:\n%s", m.View())
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || !m.Shell().Mounted() {
		t.Fatalf("enter did not start a game: view=%v mounted=%v", m.view, m.Shell().Mounted())
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if got := m.Shell().Game().ID(); got != "schulte" {
		t.Errorf("mounted %q, want schulte", got)
	}

	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	if cmd == nil {
		t.Error("tick for the running game should schedule the next one")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Errorf("game view missing header:\n%s", m.View())
	}

	m, _ = update(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Fatalf("back did not return to the picker, view=%v", m.view)
	}
	if m.Shell().Mounted() {
		t.Error("back should unmount the game")
	}
}

func TestSessionDropsStaleTicks(t *testing.T) {
	m := NewSessionModel(testOptions(t))

	m, _ = update(t, m, runeKey('1'))
	stale := m.gen
	m, _ = update(t, m, runeKey('b'))
	m, _ = update(t, m, runeKey('1'))
	if m.gen == stale {
		t.Fatal("a new game should get a new tick generation")
	}

	if _, cmd := update(t, m, TickMsg{Gen: stale}); cmd != nil {
		t.Error("stale tick started a second tick loop")
	}
	if _, cmd := update(t, m, TickMsg{Gen: m.gen}); cmd == nil {
		t.Error("current tick was dropped")
	}
}

func TestSessionStartGame(t *testing.T) {
	opts := testOptions(t)
	opts.StartGame = "schulte"

	m := NewSessionModel(opts)
	if m.view != viewGame || !m.Shell().Mounted() {
		t.Fatalf("StartGame did not mount: view=%v", m.view)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop when a game is mounted")
	}
}

func TestSessionUnknownStartGameShowsError(t *testing.T) {
	opts := testOptions(t)
	opts.StartGame = "tetris"

	m := NewSessionModel(opts)
	if m.view != viewMenu {
		t.Fatalf("view = %v, want menu", m.view)
	}
	if !strings.Contains(m.View(), "tetris") {
		t.Errorf("menu should show the mount error:\n%s", m.View())
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testOptions(t))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should be tea.Quit")
	}
	if m.Shell().Mounted() {
		t.Error("quit should unmount the game")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestSessionResultsBoard(t *testing.T) {
	opts := testOptions(t)
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveResult(storage.Result{
		GameID: "schulte", SessionID: "s1", Level: 1, Points: 80, Outcome: storage.OutcomeFinished,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	opts.Store = store

	m := NewSessionModel(opts)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewResults {
		t.Fatalf("tab did not open results, view=%v", m.view)
	}

	view := m.View()
	for _, want := range []string{"RESULTS - Schulte Table", "80", "Runs 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q:\n%s", want, view)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("esc did not return to the picker, view=%v", m.view)
	}
}

func TestResultsWithoutStore(t *testing.T) {
	m := NewResultsModel(nil, plainPainter(), 60, 24)
	if !strings.Contains(m.View(), "not being saved") {
		t.Errorf("view without store:\n%s", m.View())
	}
}
