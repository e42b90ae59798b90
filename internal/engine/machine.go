package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindflex/internal/score"
)

// Rules is the per-game part of a round: how puzzles are generated, how a
// round opens and what happens when the input window runs out.
type Rules[P any] interface {
	// Generate builds the puzzle for a level. prev is the previous puzzle
	// (zero value on the first round) so a generator can avoid repeats.
	Generate(rng *rand.Rand, level int, prev P) (P, error)
	// Enter opens a round by calling Present or Await on the machine.
	Enter(m *Machine[P])
	// Expire is the verdict for a time-limited awaiting phase that ran out.
	Expire(m *Machine[P]) Verdict
}

// Step is one presentation frame. Apply runs Delay after the previous step.
type Step[P any] struct {
	Delay time.Duration
	Apply func(p *P)
}

// Option configures a Machine.
type Option func(*options)

type options struct {
	name       string
	startLevel int
	maxLevel   int
	rng        *rand.Rand
	logger     *log.Logger
}

// WithName sets the name used in logs and panics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithStartLevel sets the level a run starts (and restarts) at.
func WithStartLevel(level int) Option {
	return func(o *options) {
		if level >= 1 {
			o.startLevel = level
		}
	}
}

// WithMaxLevel caps the ladder. Clearing the last level finishes the run.
// Zero means unbounded.
func WithMaxLevel(level int) Option {
	return func(o *options) {
		if level >= 0 {
			o.maxLevel = level
		}
	}
}

// WithRand injects the random source handed to the generator.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds a fresh random source for the generator.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Machine drives one game session through its phases. It is owned by a
// single goroutine: input and ticks must come from the same update loop.
type Machine[P any] struct {
	name       string
	rules      Rules[P]
	tally      *score.Tally
	rng        *rand.Rand
	sched      *Scheduler
	logger     *log.Logger
	startLevel int
	maxLevel   int

	phase    Phase
	level    int
	round    int
	puzzle   P
	feedback Feedback
	finished bool
	closed   bool
	points   int

	roundStart    time.Duration
	inputDeadline time.Duration // absolute; zero when the input phase is untimed

	phaseTimers   []Token
	sessionTimers []Token
}

// New creates a machine in the idle phase with the start level's puzzle
// already generated. It panics if tally or rules is nil.
func New[P any](tally *score.Tally, rules Rules[P], opts ...Option) *Machine[P] {
	if tally == nil {
		panic("engine: nil score tally")
	}
	if rules == nil {
		panic("engine: nil rules")
	}

	o := options{name: "game", startLevel: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.maxLevel > 0 && o.startLevel > o.maxLevel {
		o.startLevel = o.maxLevel
	}

	m := &Machine[P]{
		name:       o.name,
		rules:      rules,
		tally:      tally,
		rng:        o.rng,
		sched:      NewScheduler(),
		logger:     o.logger,
		startLevel: o.startLevel,
		maxLevel:   o.maxLevel,
		phase:      PhaseIdle,
		level:      o.startLevel,
	}
	var zero P
	m.puzzle = m.generate(m.level, zero)
	return m
}

// Phase returns the current phase.
func (m *Machine[P]) Phase() Phase { return m.phase }

// Level returns the current level (1-based).
func (m *Machine[P]) Level() int { return m.level }

// MaxLevel returns the ladder length, or 0 when unbounded.
func (m *Machine[P]) MaxLevel() int { return m.maxLevel }

// Round returns the number of rounds begun since the last start.
func (m *Machine[P]) Round() int { return m.round }

// Puzzle returns a copy of the current puzzle. Slices inside it are shared;
// callers must treat them as read-only.
func (m *Machine[P]) Puzzle() P { return m.puzzle }

// Feedback returns the feedback of the last resolution.
func (m *Machine[P]) Feedback() Feedback { return m.feedback }

// Finished reports whether the last level of the ladder was cleared.
func (m *Machine[P]) Finished() bool { return m.finished }

// Points returns the net score change applied since the last start.
func (m *Machine[P]) Points() int { return m.points }

// Now returns the machine clock.
func (m *Machine[P]) Now() time.Duration { return m.sched.Now() }

// Rand returns the machine's random source.
func (m *Machine[P]) Rand() *rand.Rand { return m.rng }

// RoundElapsed returns the time since the current round began.
func (m *Machine[P]) RoundElapsed() time.Duration {
	if m.round == 0 {
		return 0
	}
	return m.sched.Now() - m.roundStart
}

// InputRemaining returns what is left of the input countdown, or 0 when the
// input phase is untimed.
func (m *Machine[P]) InputRemaining() time.Duration {
	if m.inputDeadline == 0 {
		return 0
	}
	return max(m.inputDeadline-m.sched.Now(), 0)
}

// SessionRemaining returns the time left on a session timer.
func (m *Machine[P]) SessionRemaining(tok Token) time.Duration {
	return m.sched.Remaining(tok)
}

// Start begins round 1 from idle. It returns false in any other phase.
func (m *Machine[P]) Start() bool {
	if m.closed || m.phase != PhaseIdle {
		return false
	}
	m.logger.Debug("start", "game", m.name, "level", m.level)
	m.beginRound()
	return true
}

// Present enters the presenting phase and plays steps in order. After the
// last step then runs; a nil then opens an untimed input phase.
func (m *Machine[P]) Present(steps []Step[P], then func()) {
	m.setPhase(PhasePresenting)
	if then == nil {
		then = func() { m.Await(0) }
	}

	var at time.Duration
	for _, step := range steps {
		at += step.Delay
		if step.Apply != nil {
			apply := step.Apply
			m.after(at, func() { apply(&m.puzzle) })
		}
	}
	m.after(at, then)
}

// Await enters awaiting-input. A positive limit arms a countdown that
// resolves through Rules.Expire.
func (m *Machine[P]) Await(limit time.Duration) {
	m.setPhase(PhaseAwaiting)
	m.inputDeadline = 0
	if limit > 0 {
		m.inputDeadline = m.sched.Now() + limit
		m.after(limit, m.expire)
	}
}

// Act evaluates a player action. Outside awaiting-input the action is
// ignored and Act returns false.
func (m *Machine[P]) Act(fn func(p *P) Verdict) bool {
	if m.closed || m.phase != PhaseAwaiting {
		return false
	}
	m.setPhase(PhaseResolving)
	m.resolve(fn(&m.puzzle))
	return true
}

// Update edits the current puzzle in place.
func (m *Machine[P]) Update(fn func(p *P)) {
	fn(&m.puzzle)
}

// Advance moves from complete to the next level. It returns false outside
// complete or when the ladder is finished.
func (m *Machine[P]) Advance() bool {
	if m.closed || m.phase != PhaseComplete || m.finished {
		return false
	}
	m.level++
	m.nextPuzzle()
	m.beginRound()
	return true
}

// End forces a resolution from presenting, awaiting-input or resolving.
// It returns false when the run is not active.
func (m *Machine[P]) End(v Verdict) bool {
	switch m.phase {
	case PhasePresenting, PhaseAwaiting:
		m.setPhase(PhaseResolving)
	case PhaseResolving:
		m.cancelPhaseTimers()
	default:
		return false
	}
	m.resolve(v)
	return true
}

// After schedules fn in the current phase. The timer is cancelled by the
// next phase change.
func (m *Machine[P]) After(d time.Duration, fn func()) Token {
	return m.after(d, fn)
}

// SessionAfter schedules fn for the whole run. Only Restart and Close
// cancel it.
func (m *Machine[P]) SessionAfter(d time.Duration, fn func()) Token {
	tok := m.sched.After(d, fn)
	m.sessionTimers = append(m.sessionTimers, tok)
	return tok
}

// Restart returns the machine to idle at the start level with a fresh
// puzzle. It is legal from any phase.
func (m *Machine[P]) Restart() {
	m.cancelPhaseTimers()
	m.cancelSessionTimers()
	m.logger.Debug("restart", "game", m.name, "from", m.phase)

	m.phase = PhaseIdle
	m.level = m.startLevel
	m.round = 0
	m.feedback = Feedback{}
	m.finished = false
	m.points = 0
	m.inputDeadline = 0
	m.roundStart = m.sched.Now()

	var zero P
	m.puzzle = m.generate(m.level, zero)
}

// Close cancels every timer. Later ticks and actions have no effect.
func (m *Machine[P]) Close() {
	m.cancelPhaseTimers()
	m.cancelSessionTimers()
	m.closed = true
}

// Tick advances the machine clock and fires due timers.
func (m *Machine[P]) Tick(dt time.Duration) {
	if m.closed {
		return
	}
	m.sched.Advance(dt)
}

func (m *Machine[P]) beginRound() {
	m.round++
	m.feedback = Feedback{}
	m.roundStart = m.sched.Now()
	m.inputDeadline = 0
	m.rules.Enter(m)
}

func (m *Machine[P]) expire() {
	m.setPhase(PhaseResolving)
	m.resolve(m.rules.Expire(m))
}

func (m *Machine[P]) resolve(v Verdict) {
	before := m.tally.Total()
	if v.Award > 0 {
		m.tally.Add(v.Award)
	}
	if v.Penalty > 0 {
		m.tally.Subtract(v.Penalty)
	}
	m.points += m.tally.Total() - before
	m.feedback = v.Feedback

	m.logger.Debug("resolve", "game", m.name, "outcome", v.Outcome,
		"award", v.Award, "penalty", v.Penalty, "total", m.tally.Total())

	if v.Delay > 0 {
		m.after(v.Delay, func() { m.settle(v) })
		return
	}
	m.settle(v)
}

func (m *Machine[P]) settle(v Verdict) {
	if v.Settle != nil {
		v.Settle()
	}

	switch v.Outcome {
	case OutcomeContinue:
		m.resume()
	case OutcomeNextRound:
		m.nextPuzzle()
		m.beginRound()
	case OutcomeLevelUp:
		if m.lastLevel() {
			m.finished = true
			m.setPhase(PhaseComplete)
			return
		}
		m.level++
		m.nextPuzzle()
		m.beginRound()
	case OutcomeComplete:
		if m.lastLevel() {
			m.finished = true
		}
		m.setPhase(PhaseComplete)
	case OutcomeGameOver:
		m.setPhase(PhaseGameOver)
	default:
		panic(fmt.Sprintf("engine: %s: unknown outcome %d", m.name, v.Outcome))
	}
}

// resume returns to awaiting-input without moving the countdown deadline.
func (m *Machine[P]) resume() {
	deadline := m.inputDeadline
	m.setPhase(PhaseAwaiting)
	if deadline == 0 {
		return
	}
	left := deadline - m.sched.Now()
	if left <= 0 {
		m.expire()
		return
	}
	m.after(left, m.expire)
}

func (m *Machine[P]) lastLevel() bool {
	return m.maxLevel > 0 && m.level >= m.maxLevel
}

func (m *Machine[P]) nextPuzzle() {
	m.puzzle = m.generate(m.level, m.puzzle)
}

func (m *Machine[P]) generate(level int, prev P) P {
	p, err := m.rules.Generate(m.rng, level, prev)
	if err != nil {
		panic(fmt.Errorf("engine: %s: generate level %d: %w", m.name, level, err))
	}
	return p
}

func (m *Machine[P]) setPhase(next Phase) {
	if !m.phase.CanTransitionTo(next) {
		panic(fmt.Sprintf("engine: %s: illegal transition %s -> %s", m.name, m.phase, next))
	}
	m.cancelPhaseTimers()
	m.logger.Debug("phase", "game", m.name, "from", m.phase, "to", next,
		"level", m.level, "round", m.round)
	m.phase = next
}

func (m *Machine[P]) after(d time.Duration, fn func()) Token {
	tok := m.sched.After(d, fn)
	m.phaseTimers = append(m.phaseTimers, tok)
	return tok
}

func (m *Machine[P]) cancelPhaseTimers() {
	for _, tok := range m.phaseTimers {
		m.sched.Cancel(tok)
	}
	m.phaseTimers = m.phaseTimers[:0]
}

func (m *Machine[P]) cancelSessionTimers() {
	for _, tok := range m.sessionTimers {
		m.sched.Cancel(tok)
	}
	m.sessionTimers = m.sessionTimers[:0]
}
