// Package tui provides the Bubble Tea front end: the game loop model, held-key
// input mapping, lipgloss rendering, the start menu, the scoreboard and the
// SSH server that serves all of them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	At time.Time
	id uint64 // Loop that scheduled the tick
}

// loopIDs hands out tick loop identifiers.
var loopIDs atomic.Uint64

func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, id: id}
	})
}
