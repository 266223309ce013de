package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// errNotRunning is returned by ReportError before Run or after it returned.
var errNotRunning = errors.New("tui: display not running")

func init() {
	registry.Register(config.BackendTerminal, "Bubble Tea terminal, half-block pixels", func(opts registry.Options) (registry.Display, error) {
		return NewDisplay(opts), nil
	})
}

// Display is the terminal frame sink and key input source.
// Present and ReportRates are called from the engine loop goroutine, the
// Bubble Tea model reads their results on its own goroutine.
type Display struct {
	title         string
	width, height int
	input         *core.InputState
	keyRelease    time.Duration
	logger        *log.Logger

	mu    sync.Mutex
	frame *core.PixelBuffer // Latest presented copy
	seq   uint64            // Bumped on every Present

	status  atomic.Pointer[string]
	message atomic.Pointer[string]
	running atomic.Bool
}

// NewDisplay creates a terminal display. It does not touch the terminal
// until Run is called.
func NewDisplay(opts registry.Options) *Display {
	if opts.Input == nil {
		opts.Input = core.NewInputState()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.KeyRelease <= 0 {
		opts.KeyRelease = config.DefaultTetrisConfig().Input.KeyRelease()
	}

	d := &Display{
		title:      opts.Title,
		width:      opts.Width,
		height:     opts.Height,
		input:      opts.Input,
		keyRelease: opts.KeyRelease,
		logger:     opts.Logger,
		frame:      core.NewPixelBuffer(opts.Width, opts.Height),
	}
	status := opts.Title
	d.status.Store(&status)
	return d
}

// Size returns the frame size in pixels.
func (d *Display) Size() (int, int) {
	return d.width, d.height
}

// Present copies the frame into the display's latest-frame slot.
func (d *Display) Present(frame *core.PixelBuffer) error {
	if err := frame.Validate(); err != nil {
		return fmt.Errorf("tui: cannot present frame: %w", err)
	}

	d.mu.Lock()
	d.frame.CopyFrom(frame)
	d.seq++
	d.mu.Unlock()
	return nil
}

// ReportRates updates the status line.
func (d *Display) ReportRates(ups, fps int) {
	s := fmt.Sprintf("%s ups: %d, fps: %d", d.title, ups, fps)
	d.status.Store(&s)
}

// ReportError shows msg under the frame.
func (d *Display) ReportError(msg string) error {
	if !d.running.Load() {
		return errNotRunning
	}
	d.message.Store(&msg)
	return nil
}

// snapshot renders the latest frame if it changed since seq.
func (d *Display) snapshot(r *pixelRenderer, seq uint64) (string, uint64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.seq == seq {
		return "", seq, false
	}
	return r.Render(d.frame), d.seq, true
}

func (d *Display) statusLine() string {
	if s := d.status.Load(); s != nil {
		return *s
	}
	return d.title
}

func (d *Display) errorMessage() string {
	if s := d.message.Load(); s != nil {
		return *s
	}
	return ""
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// ctx is done or the program exits.
func (d *Display) Run(ctx context.Context) error {
	d.checkTerminalSize()

	p := tea.NewProgram(
		newModel(d),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	d.running.Store(true)
	defer d.running.Store(false)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// checkTerminalSize warns when the terminal cannot show a whole frame.
func (d *Display) checkTerminalSize() {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		d.logger.Warn("stdout is not a terminal")
		return
	}
	tw, th, err := term.GetSize(fd)
	if err != nil {
		d.logger.Warn("cannot read terminal size", "error", err)
		return
	}
	cols, rows := cellSize(d.width, d.height)
	if tw < cols || th < rows+chromeLines {
		d.logger.Warn("terminal smaller than the frame", "terminal", fmt.Sprintf("%dx%d", tw, th),
			"need", fmt.Sprintf("%dx%d", cols, rows+chromeLines))
	}
}
