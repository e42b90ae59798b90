package engine

// Phase is the lifecycle state of a game round.
type Phase int

const (
	PhaseIdle       Phase = iota // Before start, shows the start control
	PhasePresenting              // System shows information, input ignored
	PhaseAwaiting                // Accepts the game's input actions
	PhaseResolving               // Evaluating an action or pacing the result
	PhaseComplete                // Level won, waits for Advance
	PhaseGameOver                // Terminal until Restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePresenting:
		return "presenting"
	case PhaseAwaiting:
		return "awaiting-input"
	case PhaseResolving:
		return "resolving"
	case PhaseComplete:
		return "complete"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a run until explicit input.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseGameOver
}

var transitions = map[Phase][]Phase{
	PhaseIdle:       {PhasePresenting, PhaseAwaiting},
	PhasePresenting: {PhaseAwaiting, PhaseResolving},
	PhaseAwaiting:   {PhaseResolving},
	PhaseResolving:  {PhasePresenting, PhaseAwaiting, PhaseComplete, PhaseGameOver},
	PhaseComplete:   {PhasePresenting, PhaseAwaiting},
	PhaseGameOver:   {},
}

// CanTransitionTo reports whether moving from p to target is legal.
// Every phase may return to idle (restart).
func (p Phase) CanTransitionTo(target Phase) bool {
	if target == PhaseIdle {
		return true
	}
	for _, next := range transitions[p] {
		if next == target {
			return true
		}
	}
	return false
}
