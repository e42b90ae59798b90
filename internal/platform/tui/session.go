package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindflex/internal/config"
	"github.com/vovakirdan/mindflex/internal/core"
	"github.com/vovakirdan/mindflex/internal/score"
	"github.com/vovakirdan/mindflex/internal/shell"
	"github.com/vovakirdan/mindflex/internal/storage"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewResults
)

// SessionOptions configure one player session.
type SessionOptions struct {
	Store      *storage.Store // nil disables result history
	Config     core.RuntimeConfig
	Logger     *log.Logger
	Painter    *Painter
	SessionID  string // empty generates one
	Preset     config.DifficultyPreset
	ConfigPath string
	StartGame  string // mount this game instead of opening the picker
}

// SessionModel manages the full flow for one player: picker, game and
// results board. Every session owns its own tally and shell.
type SessionModel struct {
	opts     SessionOptions
	shell    *shell.Shell
	config   core.RuntimeConfig
	view     view
	menu     MenuModel
	game     GameModel
	results  ResultsModel
	gen      int
	quitting bool
}

// NewSessionModel creates a session with a fresh tally.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Painter == nil {
		opts.Painter = NewPainter(nil)
	}

	shellOpts := []shell.Option{
		shell.WithLogger(opts.Logger),
		shell.WithPreset(opts.Preset),
		shell.WithConfigPath(opts.ConfigPath),
	}
	if opts.SessionID != "" {
		shellOpts = append(shellOpts, shell.WithSessionID(opts.SessionID))
	}
	if opts.Store != nil {
		shellOpts = append(shellOpts, shell.WithSink(opts.Store))
	}

	m := SessionModel{
		opts:   opts,
		shell:  shell.New(score.New(), shellOpts...),
		config: opts.Config,
	}
	m.menu = NewMenuModel(m.shell, opts.Painter, m.config.ScreenW, m.config.ScreenH)

	if opts.StartGame != "" {
		m.startGame(opts.StartGame)
	}
	return m
}

// Init starts the tick loop when a game was mounted up front.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsResults():
		m.results = NewResultsModel(m.opts.Store, m.opts.Painter, m.config.ScreenW, m.config.ScreenH)
		m.view = viewResults
		return m, m.results.Init()

	case m.menu.Selected() != nil:
		if m.startGame(m.menu.Selected().ID) {
			return m, m.game.Init()
		}
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		return m.quit()
	case m.game.BackToMenu():
		m.openMenu("")
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.results.Update(msg)
	if results, ok := next.(ResultsModel); ok {
		m.results = results
	}

	switch {
	case m.results.IsQuitting():
		return m.quit()
	case m.results.IsGoingBack():
		m.openMenu("")
		return m, nil
	}

	return m, cmd
}

// startGame mounts id and switches to the game view. On failure the
// picker stays open with the error shown.
func (m *SessionModel) startGame(id string) bool {
	if err := m.shell.Mount(id, m.config); err != nil {
		m.opts.Logger.Error("mount failed", "game", id, "err", err)
		m.openMenu(err.Error())
		return false
	}
	m.gen++
	m.game = NewGameModel(m.shell, m.opts.Painter, m.config, m.gen)
	m.view = viewGame
	return true
}

func (m *SessionModel) openMenu(status string) {
	m.shell.Unmount()
	m.menu = NewMenuModel(m.shell, m.opts.Painter, m.config.ScreenW, m.config.ScreenH)
	m.menu.status = status
	m.view = viewMenu
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.shell.Unmount()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}

// Shell returns the session's shell.
func (m SessionModel) Shell() *shell.Shell { return m.shell }

// Run starts a local session in the alternate screen.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
