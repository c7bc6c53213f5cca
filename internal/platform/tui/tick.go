// Package tui is the Bubble Tea driver for the chase game: the terminal
// loop, key bindings, tick pacing and an SSH server that runs one driver per
// session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run one simulation tick.
type TickMsg time.Time

// tickInterval converts ticks per second to a delay; rates below 1 run at 1.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
