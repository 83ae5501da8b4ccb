package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// gameKeys binds key names to in-game actions. Arrows, WASD and vim keys
// all work.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,
	"left":   core.ActionLeft,
	"a":      core.ActionLeft,
	"h":      core.ActionLeft,
	"right":  core.ActionRight,
	"d":      core.ActionRight,
	"l":      core.ActionRight,
	"up":     core.ActionRotate,
	"w":      core.ActionRotate,
	"k":      core.ActionRotate,
	"down":   core.ActionDown,
	"s":      core.ActionDown,
	"j":      core.ActionDown,
	" ":      core.ActionJump,
	"enter":  core.ActionConfirm,
	"esc":    core.ActionBack,
	"b":      core.ActionBack,
	"p":      core.ActionPause,
	"r":      core.ActionRestart,
}

// MenuAction is a menu-level intent.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"esc":    MenuActionBack,
	"b":      MenuActionBack,
	"tab":    MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea key messages into actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the game action bound to msg (ActionNone when unbound)
// and whether it asks to leave the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame queues the action bound to msg into frame. Quit is never
// queued; it is reported through the return value instead.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
