package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/shell"
)

// headerHeight is the number of rows above the game screen.
const headerHeight = 1

// GameModel hosts the game mounted in a shell: keys become input frames,
// ticks step the game, and the header shows the shared score.
type GameModel struct {
	shell      *shell.Shell
	screen     *core.Screen
	painter    *Painter
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	state      core.GameState
	gen        int
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps a shell that already has a game mounted. Ticks
// carrying a different gen are dropped, so a stale tick loop from an
// earlier game never doubles the rate.
func NewGameModel(sh *shell.Shell, painter *Painter, cfg core.RuntimeConfig, gen int) GameModel {
	if painter == nil {
		painter = NewPainter(nil)
	}
	return GameModel{
		shell:      sh,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-headerHeight, 1)),
		painter:    painter,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gen:        gen,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return m.tick()
}

func (m GameModel) tick() tea.Cmd {
	return tickCmd(m.config, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-headerHeight, 1))
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.backToMenu || m.quitting {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.shell.Unmount()
		return m, nil
	}
	if action == core.ActionBack {
		m.backToMenu = true
		m.shell.Unmount()
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	res := m.shell.Step(m.inputFrame)
	m.state = res.State
	m.inputFrame = core.NewInputFrame()
	return m, m.tick()
}

// View renders the header and the game screen.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	if g := m.shell.Game(); g != nil {
		g.Render(m.screen)
	}
	return m.painter.RenderHeader(m.shell.Header(), m.config.ScreenW) + "\n" + m.painter.RenderScreen(m.screen)
}

// State returns the state reported by the last tick.
func (m GameModel) State() core.GameState { return m.state }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to the picker.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// RenderHeader draws the top bar: app title, total score and game title.
func (p *Painter) RenderHeader(h shell.Header, width int) string {
	title := p.Style().Bold(true).Foreground(lipgloss.Color("229")).Render(h.Title)
	total := p.Style().Foreground(lipgloss.Color("10")).Render(fmt.Sprintf("Score: %d", h.Total))

	left := title
	if h.Game != "" {
		left += p.Style().Foreground(lipgloss.Color("245")).Render("  /  " + h.Game)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(total)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + total
}
