package engine

import (
	"errors"
	"time"
)

// Outcome says where a resolved action leads.
type Outcome int

const (
	// OutcomeContinue returns to awaiting-input on the same puzzle. A running
	// input countdown keeps its original deadline.
	OutcomeContinue Outcome = iota
	// OutcomeNextRound starts a new round at the same level.
	OutcomeNextRound
	// OutcomeLevelUp starts a new round at the next level.
	OutcomeLevelUp
	// OutcomeComplete stops in the complete phase until Advance.
	OutcomeComplete
	// OutcomeGameOver ends the run until Restart.
	OutcomeGameOver
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeNextRound:
		return "next-round"
	case OutcomeLevelUp:
		return "level-up"
	case OutcomeComplete:
		return "complete"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// FeedbackKind classifies the feedback shown after a resolution.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackCorrect
	FeedbackWrong
	FeedbackRating
	FeedbackInfo
)

// Feedback is the transient result of the last resolved action.
type Feedback struct {
	Kind FeedbackKind
	Text string
}

// IsZero reports whether there is no feedback to show.
func (f Feedback) IsZero() bool {
	return f.Kind == FeedbackNone && f.Text == ""
}

// Correct builds positive feedback.
func Correct(text string) Feedback {
	return Feedback{Kind: FeedbackCorrect, Text: text}
}

// Wrong builds negative feedback.
func Wrong(text string) Feedback {
	return Feedback{Kind: FeedbackWrong, Text: text}
}

// Rating builds a graded result such as "Excellent! +65".
func Rating(text string) Feedback {
	return Feedback{Kind: FeedbackRating, Text: text}
}

// Info builds neutral feedback.
func Info(text string) Feedback {
	return Feedback{Kind: FeedbackInfo, Text: text}
}

// Verdict is what a game returns after evaluating an action or a timeout.
type Verdict struct {
	Outcome  Outcome
	Award    int           // Added to the tally
	Penalty  int           // Subtracted from the tally (clamped at zero)
	Feedback Feedback      // Replaces the current feedback
	Delay    time.Duration // Time spent in resolving before the outcome applies

	// Settle runs on the puzzle when the resolving window closes,
	// before the outcome is applied.
	Settle func()
}

// MaxRerolls bounds every regenerate-until-valid loop.
const MaxRerolls = 1000

// ErrGeneratorExhausted is returned when a generator could not produce a
// valid puzzle within MaxRerolls attempts.
var ErrGeneratorExhausted = errors.New("engine: generator exhausted retries")

// Reroll calls gen until valid accepts the value, at most MaxRerolls times.
func Reroll[T any](gen func() T, valid func(T) bool) (T, error) {
	var v T
	for range MaxRerolls {
		v = gen()
		if valid(v) {
			return v, nil
		}
	}
	return v, ErrGeneratorExhausted
}
