// Package config provides YAML difficulty ladders for the games and
// environment-based application settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Award is a base + per-level point rule.
type Award struct {
	Base     int `yaml:"base"`
	PerLevel int `yaml:"per_level"`
}

// For returns the award for a 1-based level.
func (a Award) For(level int) int {
	return a.Base + a.PerLevel*level
}

// Millis converts a millisecond count from YAML to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// SchulteConfig configures the Schulte table.
type SchulteConfig struct {
	Size    int            `yaml:"size"`
	Shuffle bool           `yaml:"shuffle"`
	Scoring SchulteScoring `yaml:"scoring"`
}

// SchulteScoring awards max(base - per_second*seconds, min).
type SchulteScoring struct {
	Base      int `yaml:"base"`
	PerSecond int `yaml:"per_second"`
	Min       int `yaml:"min"`
}

func (c SchulteConfig) validate() error {
	if c.Size < 2 || c.Size > 9 {
		return fmt.Errorf("%w: schulte size %d out of range 2..9", ErrInvalid, c.Size)
	}
	return nil
}

// StroopConfig configures the Stroop test.
type StroopConfig struct {
	SessionSeconds int     `yaml:"session_seconds"`
	Mode           string  `yaml:"mode"` // "word" or "shape"
	DistractorRate float64 `yaml:"distractor_rate"`
	Correct        int     `yaml:"correct"`
	Wrong          int     `yaml:"wrong"`
}

func (c StroopConfig) validate() error {
	if c.SessionSeconds <= 0 {
		return fmt.Errorf("%w: stroop session_seconds must be positive", ErrInvalid)
	}
	if c.Mode != "word" && c.Mode != "shape" {
		return fmt.Errorf("%w: stroop mode %q", ErrInvalid, c.Mode)
	}
	return nil
}

// HueConfig configures I Love Hue.
type HueConfig struct {
	Hue        float64     `yaml:"hue"`
	Saturation float64     `yaml:"saturation"`
	Lightness  HueGradient `yaml:"lightness"`
	Levels     []GridSize  `yaml:"levels"`
	Award      Award       `yaml:"award"`
}

// HueGradient spans lightness from Min to Min+Span across a row.
type HueGradient struct {
	Min  float64 `yaml:"min"`
	Span float64 `yaml:"span"`
}

// GridSize is a rows x cols board.
type GridSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

func (c HueConfig) validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: hue levels must not be empty", ErrInvalid)
	}
	for i, l := range c.Levels {
		if l.Rows < 1 || l.Cols < 2 {
			return fmt.Errorf("%w: hue level %d needs at least 1x2 tiles", ErrInvalid, i+1)
		}
	}
	return nil
}

// SymbolicConfig configures Symbolic Savings.
type SymbolicConfig struct {
	MaxValue    int `yaml:"max_value"`
	MaxItems    int `yaml:"max_items"`
	MaxCount    int `yaml:"max_count"`
	PacingMs    int `yaml:"pacing_ms"`
	Correct     int `yaml:"correct"`
	StreakBonus int `yaml:"streak_bonus"`
	Wrong       int `yaml:"wrong"`
}

func (c SymbolicConfig) validate() error {
	if c.MaxValue < 1 || c.MaxItems < 1 || c.MaxCount < 1 {
		return fmt.Errorf("%w: symbolic bounds must be positive", ErrInvalid)
	}
	return nil
}

// QueensConfig configures Queens.
type QueensConfig struct {
	Puzzles [][][]int `yaml:"puzzles"` // region id per cell, square boards
	Award   Award     `yaml:"award"`
}

func (c QueensConfig) validate() error {
	if len(c.Puzzles) == 0 {
		return fmt.Errorf("%w: queens puzzles must not be empty", ErrInvalid)
	}
	for i, p := range c.Puzzles {
		n := len(p)
		for _, row := range p {
			if len(row) != n {
				return fmt.Errorf("%w: queens puzzle %d is not square", ErrInvalid, i+1)
			}
			for _, region := range row {
				if region < 0 || region >= n {
					return fmt.Errorf("%w: queens puzzle %d has region %d outside 0..%d", ErrInvalid, i+1, region, n-1)
				}
			}
		}
	}
	return nil
}

// ImpulseConfig configures Impulse Control.
type ImpulseConfig struct {
	Mode               string  `yaml:"mode"` // "basic" or "advanced"
	Rounds             int     `yaml:"rounds"`
	RoundMs            int     `yaml:"round_ms"`
	PacingMs           int     `yaml:"pacing_ms"`
	TargetRate         float64 `yaml:"target_rate"`
	AdvancedTargetRate float64 `yaml:"advanced_target_rate"`
	MinShapes          int     `yaml:"min_shapes"`
	MaxShapes          int     `yaml:"max_shapes"`
	Correct            int     `yaml:"correct"`
	Wrong              int     `yaml:"wrong"`
}

func (c ImpulseConfig) validate() error {
	if c.Rounds < 1 || c.RoundMs <= 0 {
		return fmt.Errorf("%w: impulse needs positive rounds and round_ms", ErrInvalid)
	}
	if c.MinShapes < 1 || c.MaxShapes < c.MinShapes || c.MaxShapes > 9 {
		return fmt.Errorf("%w: impulse shapes %d..%d", ErrInvalid, c.MinShapes, c.MaxShapes)
	}
	return nil
}

// SequenceConfig configures Sequence Memory.
type SequenceConfig struct {
	GridSize     int     `yaml:"grid_size"`
	StartLength  int     `yaml:"start_length"`
	BaseDelayMs  int     `yaml:"base_delay_ms"`
	DelayStepMs  int     `yaml:"delay_step_ms"`
	MinDelayMs   int     `yaml:"min_delay_ms"`
	LitRatio     float64 `yaml:"lit_ratio"`
	AdvanceMs    int     `yaml:"advance_ms"`
	FailPerLevel int     `yaml:"fail_per_level"`
}

// Delay returns the playback step delay for a level.
func (c SequenceConfig) Delay(level int) time.Duration {
	return Millis(max(c.MinDelayMs, c.BaseDelayMs-c.DelayStepMs*(level-1)))
}

func (c SequenceConfig) validate() error {
	if c.GridSize < 2 || c.GridSize > 3 {
		return fmt.Errorf("%w: sequence grid_size %d out of range 2..3", ErrInvalid, c.GridSize)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("%w: sequence start_length must be positive", ErrInvalid)
	}
	return nil
}

// ToggleConfig configures Color Toggle.
type ToggleConfig struct {
	Levels         []ToggleLevel `yaml:"levels"`
	MinTargetRatio float64       `yaml:"min_target_ratio"`
	MaxTargetRatio float64       `yaml:"max_target_ratio"`
	WrongPenalty   int           `yaml:"wrong_penalty"`
	TimeoutPenalty int           `yaml:"timeout_penalty"`
}

// ToggleLevel is one rung of the toggle ladder.
type ToggleLevel struct {
	Size    int `yaml:"size"`
	Seconds int `yaml:"seconds"`
}

// Level returns the rung for a 1-based level, clamped to the last one.
func (c ToggleConfig) Level(level int) ToggleLevel {
	i := min(max(level-1, 0), len(c.Levels)-1)
	return c.Levels[i]
}

func (c ToggleConfig) validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: toggle levels must not be empty", ErrInvalid)
	}
	if c.MinTargetRatio <= 0 || c.MaxTargetRatio < c.MinTargetRatio || c.MaxTargetRatio > 1 {
		return fmt.Errorf("%w: toggle target ratios %.2f..%.2f", ErrInvalid, c.MinTargetRatio, c.MaxTargetRatio)
	}
	return nil
}

// CardFlipConfig configures Card Flip.
type CardFlipConfig struct {
	Columns    int   `yaml:"columns"`
	Levels     []int `yaml:"levels"` // card count per level
	MatchMs    int   `yaml:"match_ms"`
	MismatchMs int   `yaml:"mismatch_ms"`
	AdvanceMs  int   `yaml:"advance_ms"`
	Match      int   `yaml:"match"`
	Mismatch   int   `yaml:"mismatch"`
	LevelBonus int   `yaml:"level_bonus"`
}

func (c CardFlipConfig) validate() error {
	if c.Columns < 1 || len(c.Levels) == 0 {
		return fmt.Errorf("%w: cardflip needs columns and levels", ErrInvalid)
	}
	for _, n := range c.Levels {
		if n < 2 || n%2 != 0 {
			return fmt.Errorf("%w: cardflip card count %d must be even", ErrInvalid, n)
		}
	}
	return nil
}
