package engine

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mindflex/internal/score"
)

type toy struct {
	Level int
	Gen   int
	Lit   int
	Hits  int
}

type toyRules struct {
	steps  []Step[toy]
	limit  time.Duration
	expire Verdict
	fail   bool
	enter  func(m *Machine[toy])
	onExp  func(m *Machine[toy])
}

func (r *toyRules) Generate(_ *rand.Rand, level int, prev toy) (toy, error) {
	if r.fail {
		return toy{}, ErrGeneratorExhausted
	}
	return toy{Level: level, Gen: prev.Gen + 1, Lit: -1}, nil
}

func (r *toyRules) Enter(m *Machine[toy]) {
	if r.enter != nil {
		r.enter(m)
		return
	}
	if len(r.steps) > 0 {
		m.Present(r.steps, func() { m.Await(r.limit) })
		return
	}
	m.Await(r.limit)
}

func (r *toyRules) Expire(m *Machine[toy]) Verdict {
	if r.onExp != nil {
		r.onExp(m)
	}
	return r.expire
}

func newToy(r *toyRules, opts ...Option) (*Machine[toy], *score.Tally) {
	tally := score.New()
	opts = append([]Option{WithSeed(1), WithName("toy")}, opts...)
	return New[toy](tally, r, opts...), tally
}

func hit(v Verdict) func(p *toy) Verdict {
	return func(p *toy) Verdict {
		p.Hits++
		return v
	}
}

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg := ""
		switch v := r.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		if !strings.Contains(msg, contains) {
			t.Errorf("panic %q does not mention %q", msg, contains)
		}
	}()
	fn()
}

func TestNewPanicsOnMissingWiring(t *testing.T) {
	expectPanic(t, "tally", func() { New[toy](nil, &toyRules{}) })
	expectPanic(t, "rules", func() { New[toy](score.New(), nil) })
}

func TestNewStartsIdleWithPuzzle(t *testing.T) {
	m, _ := newToy(&toyRules{})

	if m.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s, expected idle", m.Phase())
	}
	if m.Level() != 1 || m.Round() != 0 {
		t.Errorf("level/round = %d/%d, expected 1/0", m.Level(), m.Round())
	}
	if m.Puzzle().Gen != 1 {
		t.Errorf("puzzle not generated at construction: %+v", m.Puzzle())
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	m, _ := newToy(&toyRules{})

	if !m.Start() {
		t.Fatal("Start() from idle returned false")
	}
	if m.Phase() != PhaseAwaiting || m.Round() != 1 {
		t.Fatalf("after Start phase=%s round=%d", m.Phase(), m.Round())
	}
	if m.Start() {
		t.Error("Start() while awaiting should return false")
	}
}

func TestActIgnoredOutsideAwaiting(t *testing.T) {
	m, tally := newToy(&toyRules{})

	if m.Act(hit(Verdict{Award: 10})) {
		t.Error("Act() in idle should be ignored")
	}
	if tally.Total() != 0 || m.Puzzle().Hits != 0 {
		t.Error("ignored action changed state")
	}

	m.Start()
	m.Act(hit(Verdict{Outcome: OutcomeGameOver}))
	if m.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %s, expected game-over", m.Phase())
	}
	if m.Act(hit(Verdict{Award: 10})) {
		t.Error("Act() in game-over should be ignored")
	}
	if tally.Total() != 0 {
		t.Errorf("Total() = %d, expected 0", tally.Total())
	}
}

func TestActScoresAndFollowsOutcome(t *testing.T) {
	tests := []struct {
		name      string
		verdict   Verdict
		phase     Phase
		level     int
		round     int
		total     int
		puzzleGen int
	}{
		{"continue", Verdict{Outcome: OutcomeContinue, Award: 5}, PhaseAwaiting, 1, 1, 5, 1},
		{"next round", Verdict{Outcome: OutcomeNextRound, Award: 10}, PhaseAwaiting, 1, 2, 10, 2},
		{"level up", Verdict{Outcome: OutcomeLevelUp, Award: 20}, PhaseAwaiting, 2, 2, 20, 2},
		{"complete", Verdict{Outcome: OutcomeComplete, Award: 30}, PhaseComplete, 1, 1, 30, 1},
		{"game over", Verdict{Outcome: OutcomeGameOver, Penalty: 10}, PhaseGameOver, 1, 1, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, tally := newToy(&toyRules{})
			m.Start()

			if !m.Act(hit(tc.verdict)) {
				t.Fatal("Act() returned false while awaiting")
			}
			if m.Phase() != tc.phase {
				t.Errorf("Phase() = %s, expected %s", m.Phase(), tc.phase)
			}
			if m.Level() != tc.level || m.Round() != tc.round {
				t.Errorf("level/round = %d/%d, expected %d/%d", m.Level(), m.Round(), tc.level, tc.round)
			}
			if tally.Total() != tc.total {
				t.Errorf("Total() = %d, expected %d", tally.Total(), tc.total)
			}
			if m.Puzzle().Gen != tc.puzzleGen {
				t.Errorf("puzzle generation = %d, expected %d", m.Puzzle().Gen, tc.puzzleGen)
			}
		})
	}
}

func TestPointsTrackAppliedDelta(t *testing.T) {
	m, tally := newToy(&toyRules{})
	m.Start()

	m.Act(hit(Verdict{Award: 10}))
	m.Act(hit(Verdict{Penalty: 15}))

	if tally.Total() != 0 {
		t.Errorf("Total() = %d, expected 0", tally.Total())
	}
	if m.Points() != 0 {
		t.Errorf("Points() = %d, expected 0 (penalty clamped)", m.Points())
	}
}

func TestFeedbackClearedOnNextRound(t *testing.T) {
	m, _ := newToy(&toyRules{})
	m.Start()

	m.Act(hit(Verdict{Feedback: Wrong("nope")}))
	if m.Feedback().Kind != FeedbackWrong {
		t.Fatalf("Feedback() = %+v, expected wrong", m.Feedback())
	}

	m.Act(hit(Verdict{Outcome: OutcomeNextRound, Feedback: Correct("yes"), Delay: 500 * time.Millisecond}))
	if m.Phase() != PhaseResolving || m.Feedback().Text != "yes" {
		t.Fatalf("pacing window: phase=%s feedback=%+v", m.Phase(), m.Feedback())
	}

	m.Tick(500 * time.Millisecond)
	if m.Phase() != PhaseAwaiting || !m.Feedback().IsZero() {
		t.Errorf("after pacing: phase=%s feedback=%+v", m.Phase(), m.Feedback())
	}
}

func TestPresentIgnoresInputAndHandsOver(t *testing.T) {
	steps := []Step[toy]{
		{Delay: 100 * time.Millisecond, Apply: func(p *toy) { p.Lit = 3 }},
		{Delay: 100 * time.Millisecond, Apply: func(p *toy) { p.Lit = -1 }},
	}
	m, _ := newToy(&toyRules{steps: steps})
	m.Start()

	if m.Phase() != PhasePresenting {
		t.Fatalf("Phase() = %s, expected presenting", m.Phase())
	}
	if m.Act(hit(Verdict{})) {
		t.Error("Act() during presenting should be ignored")
	}

	m.Tick(100 * time.Millisecond)
	if m.Puzzle().Lit != 3 {
		t.Errorf("Lit = %d after first step, expected 3", m.Puzzle().Lit)
	}

	m.Tick(100 * time.Millisecond)
	if m.Puzzle().Lit != -1 {
		t.Errorf("Lit = %d after second step, expected -1", m.Puzzle().Lit)
	}
	if m.Phase() != PhaseAwaiting {
		t.Errorf("Phase() = %s, expected awaiting after presentation", m.Phase())
	}
}

func TestInputCountdownExpires(t *testing.T) {
	r := &toyRules{
		limit:  time.Second,
		expire: Verdict{Outcome: OutcomeGameOver, Penalty: 10, Feedback: Wrong("Time Over!")},
	}
	m, _ := newToy(r)
	m.Start()

	m.Tick(999 * time.Millisecond)
	if m.Phase() != PhaseAwaiting {
		t.Fatalf("expired early: %s", m.Phase())
	}
	m.Tick(time.Millisecond)
	if m.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s, expected game-over", m.Phase())
	}
	if m.Feedback().Text != "Time Over!" {
		t.Errorf("Feedback() = %+v", m.Feedback())
	}
}

func TestExpireCanUpdatePuzzle(t *testing.T) {
	r := &toyRules{
		limit:  time.Second,
		expire: Verdict{Outcome: OutcomeNextRound},
		onExp: func(m *Machine[toy]) {
			m.Update(func(p *toy) { p.Hits++ })
		},
	}
	m, _ := newToy(r)
	m.Start()
	gen := m.Puzzle().Gen

	m.Tick(time.Second)
	if m.Puzzle().Gen != gen+1 {
		t.Fatalf("Gen = %d, expected a new round", m.Puzzle().Gen)
	}

	r.expire = Verdict{Outcome: OutcomeContinue, Delay: time.Hour}
	m.Tick(time.Second)
	if m.Puzzle().Hits != 1 {
		t.Errorf("Hits = %d, expected the update to land on the current puzzle", m.Puzzle().Hits)
	}
}

func TestContinueKeepsCountdownDeadline(t *testing.T) {
	r := &toyRules{limit: time.Second, expire: Verdict{Outcome: OutcomeGameOver}}
	m, _ := newToy(r)
	m.Start()

	m.Tick(400 * time.Millisecond)
	m.Act(hit(Verdict{Outcome: OutcomeContinue, Penalty: 2}))

	if got := m.InputRemaining(); got != 600*time.Millisecond {
		t.Errorf("InputRemaining() = %v, expected 600ms", got)
	}
	m.Tick(599 * time.Millisecond)
	if m.Phase() != PhaseAwaiting {
		t.Fatalf("Phase() = %s, expected awaiting", m.Phase())
	}
	m.Tick(time.Millisecond)
	if m.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s, expected game-over at the original deadline", m.Phase())
	}
}

func TestStaleTimerHasNoEffect(t *testing.T) {
	fired := 0
	r := &toyRules{}
	r.enter = func(m *Machine[toy]) {
		m.Await(0)
		m.After(time.Second, func() { fired++ })
	}
	m, _ := newToy(r)
	m.Start()

	// Leaving awaiting cancels the timer armed in that phase.
	m.Act(hit(Verdict{Outcome: OutcomeComplete}))
	m.Tick(2 * time.Second)

	if fired != 0 {
		t.Errorf("stale timer fired %d times", fired)
	}
	if m.Phase() != PhaseComplete {
		t.Errorf("Phase() = %s, expected complete", m.Phase())
	}
}

func TestRestartFromAnyPhase(t *testing.T) {
	steps := []Step[toy]{{Delay: time.Second}}
	reach := map[Phase]func(m *Machine[toy]){
		PhaseIdle:       func(m *Machine[toy]) {},
		PhasePresenting: func(m *Machine[toy]) { m.Start() },
		PhaseAwaiting: func(m *Machine[toy]) {
			m.Start()
			m.Tick(time.Second)
		},
		PhaseResolving: func(m *Machine[toy]) {
			m.Start()
			m.Tick(time.Second)
			m.Act(hit(Verdict{Delay: time.Second, Feedback: Wrong("x")}))
		},
		PhaseComplete: func(m *Machine[toy]) {
			m.Start()
			m.Tick(time.Second)
			m.Act(hit(Verdict{Outcome: OutcomeLevelUp}))
			m.Tick(time.Second)
			m.Act(hit(Verdict{Outcome: OutcomeComplete, Feedback: Correct("ok")}))
		},
		PhaseGameOver: func(m *Machine[toy]) {
			m.Start()
			m.Tick(time.Second)
			m.Act(hit(Verdict{Outcome: OutcomeGameOver, Feedback: Wrong("over")}))
		},
	}

	for phase, setup := range reach {
		t.Run(phase.String(), func(t *testing.T) {
			m, _ := newToy(&toyRules{steps: steps})
			setup(m)
			if m.Phase() != phase {
				t.Fatalf("setup reached %s, expected %s", m.Phase(), phase)
			}

			m.Restart()

			if m.Phase() != PhaseIdle {
				t.Errorf("Phase() = %s, expected idle", m.Phase())
			}
			if m.Level() != 1 || m.Round() != 0 {
				t.Errorf("level/round = %d/%d, expected 1/0", m.Level(), m.Round())
			}
			if !m.Feedback().IsZero() {
				t.Errorf("Feedback() = %+v, expected none", m.Feedback())
			}
			if m.Puzzle().Gen != 1 || m.Puzzle().Hits != 0 {
				t.Errorf("puzzle not regenerated: %+v", m.Puzzle())
			}

			// Nothing scheduled before the restart may fire.
			m.Tick(5 * time.Second)
			if m.Phase() != PhaseIdle {
				t.Errorf("Phase() = %s after ticking, expected idle", m.Phase())
			}
		})
	}
}

func TestSessionTimerEndsRun(t *testing.T) {
	var tok Token
	r := &toyRules{}
	r.enter = func(m *Machine[toy]) {
		if m.Round() == 1 {
			tok = m.SessionAfter(3*time.Second, func() {
				m.End(Verdict{Outcome: OutcomeGameOver, Feedback: Wrong("Time's up")})
			})
		}
		m.Await(0)
	}
	m, _ := newToy(r)
	m.Start()

	m.Tick(time.Second)
	m.Act(hit(Verdict{Outcome: OutcomeNextRound, Award: 10}))
	if got := m.SessionRemaining(tok); got != 2*time.Second {
		t.Errorf("SessionRemaining() = %v, expected 2s", got)
	}

	m.Tick(2 * time.Second)
	if m.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s, expected game-over", m.Phase())
	}
}

func TestSessionTimerCancelledOnRestart(t *testing.T) {
	ended := false
	r := &toyRules{}
	r.enter = func(m *Machine[toy]) {
		m.SessionAfter(time.Second, func() { ended = true })
		m.Await(0)
	}
	m, _ := newToy(r)
	m.Start()
	m.Restart()
	m.Tick(2 * time.Second)

	if ended {
		t.Error("session timer fired after restart")
	}
}

func TestEndDuringPacingWindow(t *testing.T) {
	m, _ := newToy(&toyRules{})
	m.Start()
	m.Act(hit(Verdict{Outcome: OutcomeNextRound, Delay: time.Second}))

	if !m.End(Verdict{Outcome: OutcomeGameOver}) {
		t.Fatal("End() during resolving returned false")
	}
	m.Tick(2 * time.Second)
	if m.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s, expected game-over", m.Phase())
	}
	if m.Round() != 1 {
		t.Errorf("Round() = %d, pending next round should have been cancelled", m.Round())
	}
	if m.End(Verdict{}) {
		t.Error("End() after game-over should return false")
	}
}

func TestCloseStopsEverything(t *testing.T) {
	r := &toyRules{limit: time.Second, expire: Verdict{Outcome: OutcomeGameOver}}
	m, _ := newToy(r)
	m.Start()
	m.Close()

	m.Tick(5 * time.Second)
	if m.Phase() != PhaseAwaiting {
		t.Errorf("Phase() = %s, closed machine should not move", m.Phase())
	}
	if m.Act(hit(Verdict{Award: 1})) {
		t.Error("Act() on closed machine should return false")
	}
}

func TestLadderFinishes(t *testing.T) {
	m, _ := newToy(&toyRules{}, WithMaxLevel(2))
	m.Start()

	m.Act(hit(Verdict{Outcome: OutcomeComplete}))
	if m.Finished() {
		t.Fatal("finished after level 1 of 2")
	}
	if !m.Advance() {
		t.Fatal("Advance() from complete returned false")
	}
	if m.Level() != 2 || m.Phase() != PhaseAwaiting {
		t.Fatalf("after Advance level=%d phase=%s", m.Level(), m.Phase())
	}

	m.Act(hit(Verdict{Outcome: OutcomeLevelUp}))
	if !m.Finished() || m.Phase() != PhaseComplete {
		t.Errorf("finished=%v phase=%s, expected finished complete", m.Finished(), m.Phase())
	}
	if m.Advance() {
		t.Error("Advance() past the last level should return false")
	}
}

func TestStartLevelOption(t *testing.T) {
	m, _ := newToy(&toyRules{}, WithStartLevel(3), WithMaxLevel(5))
	if m.Level() != 3 || m.Puzzle().Level != 3 {
		t.Fatalf("level=%d puzzle level=%d, expected 3", m.Level(), m.Puzzle().Level)
	}
	m.Start()
	m.Act(hit(Verdict{Outcome: OutcomeLevelUp}))
	m.Restart()
	if m.Level() != 3 {
		t.Errorf("Restart() level = %d, expected start level 3", m.Level())
	}
}

func TestGeneratorExhaustionPanics(t *testing.T) {
	expectPanic(t, "generator exhausted", func() {
		newToy(&toyRules{fail: true})
	})
}

func TestIllegalTransitionPanics(t *testing.T) {
	r := &toyRules{}
	r.enter = func(m *Machine[toy]) {
		m.Await(0)
		m.Await(0)
	}
	m, _ := newToy(r)
	expectPanic(t, "illegal transition", func() { m.Start() })
}

func TestReroll(t *testing.T) {
	n := 0
	v, err := Reroll(func() int { n++; return n }, func(v int) bool { return v == 5 })
	if err != nil || v != 5 {
		t.Errorf("Reroll() = %d, %v; expected 5, nil", v, err)
	}

	_, err = Reroll(func() int { return 0 }, func(int) bool { return false })
	if !errors.Is(err, ErrGeneratorExhausted) {
		t.Errorf("Reroll() error = %v, expected ErrGeneratorExhausted", err)
	}
}
