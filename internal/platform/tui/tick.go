// Package tui provides the Bubble Tea integration for the arcade platform.
// It drives games frame by frame, maps terminal input to game input and
// hosts the launcher menu, scoreboard and SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the milliseconds between two frames. The first frame
// of a session has no predecessor and advances by zero.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return float64(now.Sub(last)) / float64(time.Millisecond)
}
