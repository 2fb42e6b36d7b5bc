// Package tui provides the terminal frontends for the snake game: the
// Bubble Tea program, the tcell loop, the map picker and the run journal
// browser. Both play frontends drive the same Session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when a frame deadline expires. Gen identifies the
// schedule it belongs to; ticks from an older schedule are ignored.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd returns a Bubble Tea command that fires one tick after d.
func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
