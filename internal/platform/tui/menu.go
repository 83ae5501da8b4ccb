package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // stored high score, 0 when none
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuControls = "↑/↓ move  enter play  tab scores  q quit"

// MenuModel picks a game. It ends its program with tea.Quit once the
// player chose something; result reports what.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	chosen    MenuResult
	done      bool
}

// NewMenuModel lists every registered game with its stored best score.
// store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			item.Best, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		return m.finish(MenuResult{GameID: m.items[m.cursor].GameID})
	case MenuActionScoreboard:
		return m.finish(MenuResult{WantsScoreboard: true})
	case MenuActionQuit:
		return m.finish(MenuResult{Quit: true})
	}
	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	m.chosen = r
	m.done = true
	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.done && m.chosen.Quit {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render("B L O C K F A L L"),
		"",
		"Select a game",
		"",
	}
	for i, item := range m.items {
		marker, style := " ", lipgloss.NewStyle()
		if i == m.cursor {
			marker, style = ">", menuCursorStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %-20s best %6d", marker, item.Title, item.Best)))
	}
	if len(m.items) > 0 && m.items[m.cursor].Description != "" {
		lines = append(lines, "", menuDimStyle.Render(m.items[m.cursor].Description))
	}
	lines = append(lines, "", menuDimStyle.Render(menuControls))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, w))
		b.WriteByte('\n')
	}
	return b.String()
}

// Selected returns the chosen item, or nil while nothing was chosen.
func (m MenuModel) Selected() *MenuItem {
	if m.chosen.GameID == "" {
		return nil
	}
	for i := range m.items {
		if m.items[i].GameID == m.chosen.GameID {
			return &m.items[i]
		}
	}
	return nil
}

// IsQuitting reports whether the player asked to leave.
func (m MenuModel) IsQuitting() bool { return m.chosen.Quit }

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.chosen.WantsScoreboard }

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result reports the final choice. A menu closed without a choice counts
// as quitting.
func (m MenuModel) result() MenuResult {
	r := m.chosen
	r.Config = m.config
	if !m.done {
		r.Quit = true
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
