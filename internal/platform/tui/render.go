package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mindflex/internal/core"
)

// paletteColors maps the named core colors to ANSI 256 codes.
var paletteColors = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBlack:       "0",
	core.ColorGray:        "245",
	core.ColorOrange:      "208",
	core.ColorPurple:      "99",
	core.ColorTeal:        "37",
	core.ColorPink:        "212",
	core.ColorBrightGreen: "10",
	core.ColorBrightRed:   "9",
}

// TermColor returns the lipgloss color for c. The bool is false for
// ColorDefault and unknown palette entries.
func TermColor(c core.Color) (lipgloss.Color, bool) {
	if c.IsRGB() {
		r, g, b := c.Components()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)), true
	}
	lc, ok := paletteColors[c]
	return lc, ok
}

// Painter turns screen buffers into styled strings for one renderer.
// SSH sessions get their own renderer so color support follows the
// client terminal.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses the process default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, styles: make(map[core.Color]lipgloss.Style)}
}

// Style returns a new style bound to the painter's renderer.
func (p *Painter) Style() lipgloss.Style {
	return p.renderer.NewStyle()
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if lc, ok := TermColor(c); ok {
		s = s.Foreground(lc)
	}
	p.styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
