package config

import (
	_ "embed"
)

//go:embed defaults/schulte.yaml
var defaultSchulteYAML []byte

//go:embed defaults/stroop.yaml
var defaultStroopYAML []byte

//go:embed defaults/hue.yaml
var defaultHueYAML []byte

//go:embed defaults/symbolic.yaml
var defaultSymbolicYAML []byte

//go:embed defaults/queens.yaml
var defaultQueensYAML []byte

//go:embed defaults/impulse.yaml
var defaultImpulseYAML []byte

//go:embed defaults/sequence.yaml
var defaultSequenceYAML []byte

//go:embed defaults/toggle.yaml
var defaultToggleYAML []byte

//go:embed defaults/cardflip.yaml
var defaultCardFlipYAML []byte

// DefaultSchulteConfig returns the default Schulte table configuration.
func DefaultSchulteConfig() SchulteConfig {
	return SchulteConfig{
		Size:    5,
		Shuffle: false,
		Scoring: SchulteScoring{Base: 100, PerSecond: 2, Min: 10},
	}
}

// DefaultStroopConfig returns the default Stroop test configuration.
func DefaultStroopConfig() StroopConfig {
	return StroopConfig{
		SessionSeconds: 60,
		Mode:           "word",
		DistractorRate: 0.5,
		Correct:        10,
		Wrong:          5,
	}
}

// DefaultHueConfig returns the default I Love Hue configuration.
func DefaultHueConfig() HueConfig {
	return HueConfig{
		Hue:        140,
		Saturation: 65,
		Lightness:  HueGradient{Min: 30, Span: 45},
		Levels: []GridSize{
			{Rows: 1, Cols: 3},
			{Rows: 2, Cols: 3},
			{Rows: 3, Cols: 3},
		},
		Award: Award{Base: 20, PerLevel: 10},
	}
}

// DefaultSymbolicConfig returns the default Symbolic Savings configuration.
func DefaultSymbolicConfig() SymbolicConfig {
	return SymbolicConfig{
		MaxValue:    9,
		MaxItems:    3,
		MaxCount:    4,
		PacingMs:    1500,
		Correct:     10,
		StreakBonus: 2,
		Wrong:       5,
	}
}

// DefaultQueensConfig returns the default Queens configuration.
func DefaultQueensConfig() QueensConfig {
	return QueensConfig{
		Puzzles: [][][]int{
			{
				{0, 0, 1, 1, 1},
				{0, 0, 1, 2, 2},
				{3, 3, 1, 2, 2},
				{3, 4, 4, 4, 2},
				{3, 4, 4, 4, 4},
			},
			{
				{0, 0, 0, 1, 1},
				{0, 2, 2, 1, 1},
				{2, 2, 2, 3, 3},
				{4, 4, 3, 3, 3},
				{4, 4, 4, 3, 3},
			},
			{
				{0, 0, 1, 1, 2},
				{0, 1, 1, 2, 2},
				{0, 3, 3, 3, 2},
				{4, 3, 3, 3, 2},
				{4, 4, 4, 4, 4},
			},
			{
				{0, 1, 1, 1, 2},
				{0, 0, 1, 2, 2},
				{0, 3, 3, 3, 2},
				{4, 4, 3, 3, 2},
				{4, 4, 4, 4, 4},
			},
		},
		Award: Award{Base: 50, PerLevel: 10},
	}
}

// DefaultImpulseConfig returns the default Impulse Control configuration.
func DefaultImpulseConfig() ImpulseConfig {
	return ImpulseConfig{
		Mode:               "basic",
		Rounds:             15,
		RoundMs:            2000,
		PacingMs:           500,
		TargetRate:         0.7,
		AdvancedTargetRate: 0.65,
		MinShapes:          3,
		MaxShapes:          6,
		Correct:            10,
		Wrong:              5,
	}
}

// DefaultSequenceConfig returns the default Sequence Memory configuration.
func DefaultSequenceConfig() SequenceConfig {
	return SequenceConfig{
		GridSize:     3,
		StartLength:  2,
		BaseDelayMs:  600,
		DelayStepMs:  40,
		MinDelayMs:   300,
		LitRatio:     0.75,
		AdvanceMs:    500,
		FailPerLevel: 15,
	}
}

// DefaultToggleConfig returns the default Color Toggle configuration.
func DefaultToggleConfig() ToggleConfig {
	return ToggleConfig{
		Levels: []ToggleLevel{
			{Size: 3, Seconds: 15},
			{Size: 4, Seconds: 20},
			{Size: 5, Seconds: 25},
			{Size: 6, Seconds: 30},
			{Size: 6, Seconds: 20},
		},
		MinTargetRatio: 0.4,
		MaxTargetRatio: 0.7,
		WrongPenalty:   2,
		TimeoutPenalty: 10,
	}
}

// DefaultCardFlipConfig returns the default Card Flip configuration.
func DefaultCardFlipConfig() CardFlipConfig {
	return CardFlipConfig{
		Columns:    4,
		Levels:     []int{12, 16, 20},
		MatchMs:    400,
		MismatchMs: 900,
		AdvanceMs:  1000,
		Match:      10,
		Mismatch:   2,
		LevelBonus: 20,
	}
}
