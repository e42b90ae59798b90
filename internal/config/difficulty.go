package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// ladderPosition returns where on a ladder (0.0 = first level, 1.0 = last)
// a preset starts.
func ladderPosition(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Ladder returns the start and max level for a preset on a ladder of
// length levels. levels == 0 means the ladder is unbounded; max is then 0
// unless the preset is fixed.
func Ladder(preset DifficultyPreset, levels int) (start, maxLevel int) {
	start = 1
	if levels > 0 {
		start = 1 + int(math.Round(ladderPosition(preset)*float64(levels-1)))
		maxLevel = levels
	}
	if preset == DifficultyFixed {
		maxLevel = start
	}
	return start, maxLevel
}
