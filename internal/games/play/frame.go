package play

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/engine"
)

// Layout rows shared by every game screen.
const (
	TitleRow    = 0
	StatusRow   = 1
	BoardTop    = 3
	feedbackGap = 1
)

// Frame draws the title and status lines and returns the first board row.
func Frame[P any](dst *core.Screen, title string, m *engine.Machine[P], extra ...string) int {
	dst.DrawTextCenteredColored(TitleRow, strings.ToUpper(title), core.ColorCyan)

	parts := []string{fmt.Sprintf("Level %d", m.Level())}
	if m.MaxLevel() > 0 {
		parts[0] = fmt.Sprintf("Level %d/%d", m.Level(), m.MaxLevel())
	}
	parts = append(parts, fmt.Sprintf("Points %+d", m.Points()))
	if left := m.InputRemaining(); left > 0 {
		parts = append(parts, Seconds(left))
	}
	parts = append(parts, extra...)
	dst.DrawTextCenteredColored(StatusRow, strings.Join(parts, "  ·  "), core.ColorGray)
	dst.DrawHLine(2, BoardTop-1, dst.Width()-4, '─')

	return BoardTop
}

// Banner draws the phase message and the last feedback below the board.
func Banner[P any](dst *core.Screen, y int, m *engine.Machine[P], idleHint string) {
	fb := m.Feedback()
	if !fb.IsZero() {
		dst.DrawTextCenteredColored(y, fb.Text, FeedbackColor(fb.Kind))
	}

	y += 1 + feedbackGap
	switch m.Phase() {
	case engine.PhaseIdle:
		dst.DrawTextCenteredColored(y, idleHint, core.ColorYellow)
		dst.DrawTextCenteredColored(y+1, "Press Enter to start", core.ColorWhite)
	case engine.PhaseComplete:
		if m.Finished() {
			dst.DrawTextCenteredColored(y, "All levels cleared!  R to play again", core.ColorBrightGreen)
		} else {
			dst.DrawTextCenteredColored(y, "Level complete!  N or Enter for the next level", core.ColorBrightGreen)
		}
	case engine.PhaseGameOver:
		dst.DrawTextCenteredColored(y, "Game over.  R to restart", core.ColorBrightRed)
	}
}

// Hints draws the key help on the last screen row.
func Hints(dst *core.Screen, hints string) {
	dst.DrawTextCenteredColored(dst.Height()-1, hints, core.ColorGray)
}

// FeedbackColor maps a feedback kind to a color.
func FeedbackColor(k engine.FeedbackKind) core.Color {
	switch k {
	case engine.FeedbackCorrect:
		return core.ColorBrightGreen
	case engine.FeedbackWrong:
		return core.ColorBrightRed
	case engine.FeedbackRating:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// Seconds formats a countdown, rounding up so "0s" only shows at expiry.
func Seconds(d time.Duration) string {
	s := (d + time.Second - 1) / time.Second
	return fmt.Sprintf("%ds", s)
}

// CellOrigin returns the top-left screen position of a grid cell, with the
// grid centered horizontally.
func CellOrigin(dst *core.Screen, top, cols, cellW, cellH, row, col int) (x, y int) {
	left := (dst.Width() - cols*cellW) / 2
	return left + col*cellW, top + row*cellH
}

// CellWidth is the screen width of a grid cell drawn with Cell.
const CellWidth = 5

// Cell draws a 3-rune glyph at (x, y) framed by brackets when selected.
func Cell(dst *core.Screen, x, y int, glyph string, c core.Color, selected bool) {
	if selected {
		dst.SetColored(x, y, '[', core.ColorWhite)
		dst.SetColored(x+CellWidth-2, y, ']', core.ColorWhite)
	}
	dst.DrawTextColored(x+1, y, glyph, c)
}
