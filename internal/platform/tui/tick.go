// Package tui hosts blockfall games in a terminal: the frame loop, key
// mapping, menus and the SSH server all live here.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickRate = 60
	maxTickRate     = 240
)

// TickMsg advances the hosted game by one frame.
type TickMsg time.Time

// tickInterval converts a frames-per-second rate into a frame length.
// Unset rates run at 60 Hz and very high rates are capped.
func tickInterval(rate int) time.Duration {
	switch {
	case rate <= 0:
		rate = defaultTickRate
	case rate > maxTickRate:
		rate = maxTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
