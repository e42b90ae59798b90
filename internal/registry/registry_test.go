package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/score"
)

type stubGame struct {
	id     string
	deps   Deps
	closed bool
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Close() { g.closed = true }

func register(t *testing.T, id string) {
	t.Helper()
	Register(GameInfo{ID: id, Title: "Stub " + id}, func(d Deps) Game {
		return &stubGame{id: id, deps: d}
	})
	t.Cleanup(func() {
		mu.Lock()
		delete(entries, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zz-stub")

	if !Exists("zz-stub") {
		t.Fatal("Exists() = false after Register")
	}
	info, ok := Info("zz-stub")
	if !ok || info.Title != "Stub zz-stub" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	tally := score.New()
	g, err := Create("zz-stub", Deps{Tally: tally})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	stub := g.(*stubGame)
	if stub.deps.Tally != tally {
		t.Error("factory did not receive the tally")
	}
	if stub.deps.Logger == nil {
		t.Error("factory should receive a default logger")
	}
}

func TestCreateErrors(t *testing.T) {
	register(t, "zz-stub")

	if _, err := Create("nope", Deps{Tally: score.New()}); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(unknown) error = %v", err)
	}
	if _, err := Create("zz-stub", Deps{}); err == nil || !strings.Contains(err.Error(), "tally") {
		t.Errorf("Create(nil tally) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "zz-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz-dup"}, func(Deps) Game { return &stubGame{} })
}

func TestListSorted(t *testing.T) {
	register(t, "zz-b")
	register(t, "zz-a")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
