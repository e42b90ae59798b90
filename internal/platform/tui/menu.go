package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mindflex/internal/registry"
	"github.com/vovakirdan/mindflex/internal/shell"
)

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items       []registry.GameInfo
	cursor      int
	width       int
	height      int
	shell       *shell.Shell
	painter     *Painter
	keyMapper   *KeyMapper
	status      string
	quitting    bool
	selected    *registry.GameInfo
	openResults bool
}

// NewMenuModel creates a picker over every registered game.
func NewMenuModel(sh *shell.Shell, painter *Painter, width, height int) MenuModel {
	if painter == nil {
		painter = NewPainter(nil)
	}
	return MenuModel{
		items:     registry.List(),
		width:     width,
		height:    height,
		shell:     sh,
		painter:   painter,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		i := int(k[0] - '1')
		if i < len(m.items) {
			m.cursor = i
			m.selectCurrent()
		}
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selectCurrent()

	case MenuActionResults:
		m.openResults = true
	}

	return m, nil
}

func (m *MenuModel) selectCurrent() {
	if len(m.items) == 0 {
		return
	}
	selected := m.items[m.cursor]
	m.selected = &selected
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.painter.RenderHeader(m.shell.Header(), m.width))
	b.WriteString("\n\n")

	titleStyle := m.painter.Style().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("Pick a game"), m.width))
	b.WriteString("\n\n")

	descStyle := m.painter.Style().Foreground(lipgloss.Color("241"))
	selStyle := m.painter.Style().Bold(true).Foreground(lipgloss.Color("212"))

	for i, item := range m.items {
		line := fmt.Sprintf("  %d  %-18s", i+1, item.Title)
		if i == m.cursor {
			line = selStyle.Render(fmt.Sprintf("> %d  %-18s", i+1, item.Title))
		}
		b.WriteString(centerText(line+" "+descStyle.Render(item.Description), m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.painter.Style().Foreground(lipgloss.Color("9")).Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter/1-9: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(descStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game, or nil if none was chosen.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user asked for the results board.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
