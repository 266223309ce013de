// Package tui provides the Bubble Tea terminal display: it shows the engine's
// frames as half-block characters and turns key events into held directions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// redrawRate is how often the terminal view is refreshed and key holds expire.
const redrawRate = 30

// redrawMsg is sent to refresh the view from the latest presented frame.
type redrawMsg time.Time

// redrawCmd returns a Bubble Tea command that sends redraw messages at redrawRate.
func redrawCmd() tea.Cmd {
	interval := time.Second / redrawRate
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return redrawMsg(t)
	})
}
