package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// chromeLines is the number of terminal rows around the frame: status, error and help.
const chromeLines = 3

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// model is the Bubble Tea model of the terminal display. It never advances
// the game: it only mirrors key events into the InputState and paints the
// latest frame the engine presented.
type model struct {
	d        *Display
	keys     KeyMap
	help     help.Model
	renderer *pixelRenderer

	// Terminals report presses and repeats but no releases, so a direction
	// stays held until keyRelease passes without another event for it.
	lastSeen [core.NumDirections]time.Time

	seq     uint64
	picture string
	width   int
	height  int
}

func newModel(d *Display) model {
	h := help.New()
	h.ShowAll = false
	return model{
		d:        d,
		keys:     DefaultKeyMap(),
		help:     h,
		renderer: newPixelRenderer(),
	}
}

// Init starts the redraw ticker.
func (m model) Init() tea.Cmd {
	return redrawCmd()
}

// Update handles messages and updates the model state.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case redrawMsg:
		m.expireKeys(time.Time(msg))
		if pic, seq, ok := m.d.snapshot(m.renderer, m.seq); ok {
			m.picture, m.seq = pic, seq
		}
		return m, redrawCmd()
	}

	return m, nil
}

// handleKey marks the key's direction as held.
func (m model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok {
		return m, nil
	}
	m.d.input.SetPressed(dir)
	m.lastSeen[dir] = now
	// Escape stays held; the engine loop ends and the program is cancelled.
	return m, nil
}

// expireKeys releases directions whose last key event is older than the
// release timeout.
func (m *model) expireKeys(now time.Time) {
	for _, dir := range core.Directions {
		if dir == core.DirEscape || m.lastSeen[dir].IsZero() {
			continue
		}
		if now.Sub(m.lastSeen[dir]) >= m.d.keyRelease {
			m.d.input.SetReleased(dir)
			m.lastSeen[dir] = time.Time{}
		}
	}
}

// View renders the status line, the frame and the help footer.
func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(statusStyle.Render(m.d.statusLine()))
	sb.WriteByte('\n')

	cols, rows := cellSize(m.d.width, m.d.height)
	if m.width > 0 && (m.width < cols || m.height < rows+chromeLines) {
		sb.WriteString(warnStyle.Render(fmt.Sprintf("terminal too small: need %dx%d, have %dx%d",
			cols, rows+chromeLines, m.width, m.height)))
		sb.WriteByte('\n')
	} else if m.picture != "" {
		sb.WriteString(m.picture)
		sb.WriteByte('\n')
	}

	if msg := m.d.errorMessage(); msg != "" {
		sb.WriteString(errorStyle.Render(msg))
	}
	sb.WriteByte('\n')

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
