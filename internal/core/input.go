package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, K - move cursor up
	ActionDown           // Down arrow, J - move cursor down
	ActionLeft           // Left arrow, H - move cursor left
	ActionRight          // Right arrow, L - move cursor right
	ActionConfirm        // Enter, Space - start, select cell, submit
	ActionBack           // B, Escape - go back to the picker
	ActionRestart        // R - restart the current game
	ActionNext           // N - advance after a completed level
	ActionQuit           // Q, Ctrl+C - exit
	ActionCheck          // C - check a solution
	ActionClear          // X - clear marks
	ActionMode           // M - switch game mode
	ActionDigit1         // 1..9 select a pad cell or answer button
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionQuit:
		return "Quit"
	case ActionCheck:
		return "Check"
	case ActionClear:
		return "Clear"
	case ActionMode:
		return "Mode"
	}
	if d, ok := a.Digit(); ok {
		return "Digit" + string(rune('0'+d))
	}
	return "Unknown"
}

// Digit returns the 1..9 value of a digit action.
func (a Action) Digit() (int, bool) {
	if a >= ActionDigit1 && a <= ActionDigit9 {
		return int(a-ActionDigit1) + 1, true
	}
	return 0, false
}

// DigitAction returns the action for digit d (1..9), or ActionNone.
func DigitAction(d int) Action {
	if d < 1 || d > 9 {
		return ActionNone
	}
	return ActionDigit1 + Action(d-1)
}

// InputFrame holds the actions collected between two simulation ticks,
// in the order they were pressed.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in press order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether no action was pressed.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
