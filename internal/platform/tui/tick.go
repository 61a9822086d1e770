// Package tui runs games in a terminal through Bubble Tea, locally or over SSH.
// It handles the frame loop, key mapping, colour rendering and score saving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameTime caps the time handed to a single Step, so a suspended
// terminal does not turn into one huge frame.
const maxFrameTime = 250 * time.Millisecond

// TickMsg is sent to trigger a game frame.
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

// frameTime returns the time since the previous frame, clamped to
// [0, maxFrameTime]. The first frame has no predecessor and gets zero.
func frameTime(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	return min(max(now.Sub(prev), 0), maxFrameTime)
}
