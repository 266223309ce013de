// Package window provides the ebiten desktop display. Frames are uploaded
// with WritePixels and key state is polled every ebiten update.
package window

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var errNotRunning = errors.New("window: display not running")

func init() {
	registry.Register(config.BackendWindow, "ebiten desktop window", func(opts registry.Options) (registry.Display, error) {
		if opts.Width <= 0 || opts.Height <= 0 {
			return nil, fmt.Errorf("window: invalid size %dx%d", opts.Width, opts.Height)
		}
		return NewDisplay(opts), nil
	})
}

// keyBindings lists the physical keys holding each direction.
var keyBindings = [core.NumDirections][]ebiten.Key{
	core.DirLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.DirRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	core.DirDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
	core.DirTurn:   {ebiten.KeyArrowUp, ebiten.KeySpace, ebiten.KeyX},
	core.DirUp:     {ebiten.KeyW},
	core.DirEscape: {ebiten.KeyEscape, ebiten.KeyQ},
}

// Display is the window frame sink and key input source. It implements
// ebiten.Game.
type Display struct {
	title         string
	width, height int
	input         *core.InputState
	logger        *log.Logger

	mu      sync.Mutex
	pending []byte // RGBA bytes of the latest frame
	fresh   bool

	image        *ebiten.Image
	ctx          context.Context
	titleApplied string

	status  atomic.Pointer[string]
	message atomic.Pointer[string]
	running atomic.Bool
}

// NewDisplay creates a window display of the given frame size.
func NewDisplay(opts registry.Options) *Display {
	if opts.Input == nil {
		opts.Input = core.NewInputState()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	d := &Display{
		title:   opts.Title,
		width:   opts.Width,
		height:  opts.Height,
		input:   opts.Input,
		logger:  opts.Logger,
		pending: make([]byte, 4*opts.Width*opts.Height),
		ctx:     context.Background(),
	}
	title := opts.Title
	d.status.Store(&title)
	return d
}

// Size returns the window's pixel dimensions.
func (d *Display) Size() (int, int) {
	return d.width, d.height
}

// Present converts the frame to RGBA for the next Draw.
func (d *Display) Present(frame *core.PixelBuffer) error {
	if err := frame.Validate(); err != nil {
		return fmt.Errorf("window: cannot present frame: %w", err)
	}
	if frame.Width != d.width || frame.Height != d.height {
		return fmt.Errorf("window: frame is %dx%d, window is %dx%d", frame.Width, frame.Height, d.width, d.height)
	}

	d.mu.Lock()
	toRGBA(d.pending, frame)
	d.fresh = true
	d.mu.Unlock()
	return nil
}

// ReportRates sets the window title to "<title> ups: N, fps: M".
func (d *Display) ReportRates(ups, fps int) {
	s := fmt.Sprintf("%s ups: %d, fps: %d", d.title, ups, fps)
	d.status.Store(&s)
}

// ReportError prints msg over the frame.
func (d *Display) ReportError(msg string) error {
	if !d.running.Load() {
		return errNotRunning
	}
	d.message.Store(&msg)
	return nil
}

// Update polls held keys and applies title changes. It ends the game once
// ctx is done.
func (d *Display) Update() error {
	if d.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, dir := range core.Directions {
		held := false
		for _, k := range keyBindings[dir] {
			if ebiten.IsKeyPressed(k) {
				held = true
				break
			}
		}
		d.input.Set(dir, held)
	}

	if s := d.status.Load(); s != nil && *s != d.titleApplied {
		ebiten.SetWindowTitle(*s)
		d.titleApplied = *s
	}
	return nil
}

// Draw uploads the latest frame and shows it.
func (d *Display) Draw(screen *ebiten.Image) {
	if d.image == nil {
		d.image = ebiten.NewImage(d.width, d.height)
	}

	d.mu.Lock()
	if d.fresh {
		d.image.WritePixels(d.pending)
		d.fresh = false
	}
	d.mu.Unlock()

	screen.DrawImage(d.image, nil)

	if msg := d.message.Load(); msg != nil {
		ebitenutil.DebugPrint(screen, *msg)
	}
}

// Layout keeps the logical screen at the frame size.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}

// Run opens the window and blocks until it is closed or ctx is done.
func (d *Display) Run(ctx context.Context) error {
	d.ctx = ctx

	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	d.titleApplied = d.title

	d.running.Store(true)
	defer d.running.Store(false)

	d.logger.Debug("window opened", "width", d.width, "height", d.height)
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	// Keys polled as held must not outlive the window
	d.input.ReleaseAll()
	return nil
}

// toRGBA writes src as opaque RGBA bytes into dst.
func toRGBA(dst []byte, src *core.PixelBuffer) {
	n := min(src.Width*src.Height, len(dst)/4)
	for i := range n {
		c := core.Color(src.Pix[i])
		dst[4*i] = c.R()
		dst[4*i+1] = c.G()
		dst[4*i+2] = c.B()
		dst[4*i+3] = 0xff
	}
}
