package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

func (s sessionScreen) String() string {
	switch s {
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	default:
		return "menu"
	}
}

// SessionModel runs menu, game and scoreboard inside one program. The SSH
// server gives every connection its own SessionModel. Child models signal
// they are done with tea.Quit; the session drops that command and switches
// screens instead.
type SessionModel struct {
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel starts a session on the menu. store and logger may be nil.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		next, cmd := m.gameModel.Update(msg)
		gm := next.(GameModel)
		m.gameModel = &gm
		switch {
		case gm.IsQuitting():
			return m.quit()
		case gm.BackToMenu():
			return m.toMenu()
		}
		return m, cmd

	case screenScores:
		next, cmd := m.scoreboard.Update(msg)
		sb := next.(ScoreboardModel)
		m.scoreboard = &sb
		switch {
		case sb.IsQuitting():
			return m.quit()
		case sb.IsGoingBack():
			return m.toMenu()
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	res := m.menu.result()
	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case res.WantsScoreboard:
		return m.toScores()
	case res.GameID != "":
		return m.startGame(res)
	}
	return m, cmd
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) toScores() (tea.Model, tea.Cmd) {
	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.scoreboard = &sb
	m.screen = screenScores
	return m, sb.Init()
}

func (m SessionModel) startGame(res MenuResult) (tea.Model, tea.Cmd) {
	game, err := registry.Create(res.GameID)
	if err != nil {
		m.logger.Warn("cannot create game", "err", err)
		return m.toMenu()
	}

	m.config = res.Config
	m.config.Seed = time.Now().UnixNano()
	gm := NewGameModel(game, m.store, m.logger, m.config)
	m.gameModel = &gm
	m.screen = screenGame
	m.logger.Debug("session switched", "screen", m.screen, "game", res.GameID)
	return m, gm.Init()
}

// toMenu builds a fresh menu so best scores are reloaded.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.gameModel.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
