package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the simulated time covered by one Step.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Round phase name
	Level    int    // Current level
	Round    int    // Rounds begun this run
	Points   int    // Net points this run
	GameOver bool   // Run ended in failure
	Finished bool   // Last level cleared
	Complete bool   // Level cleared, waiting for next
}

// Terminal reports whether the run has ended (failure or finished ladder).
func (s GameState) Terminal() bool {
	return s.GameOver || s.Finished
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
