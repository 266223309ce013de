package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Collaborators are the loop's external interfaces. Only Sink is required.
type Collaborators struct {
	Sink   FrameSink
	Title  TitleSink
	Errors ErrorReporter
	Clock  Clock
	Logger *log.Logger
}

// Loop is the fixed-timestep driver. Input polling, simulation updates and
// rendering all run on the goroutine that calls Run.
type Loop struct {
	cfg      Config
	sim      Simulation
	input    *core.InputState
	sink     FrameSink
	title    TitleSink
	reporter ErrorReporter
	clock    Clock
	logger   *log.Logger

	ctrl     *Controller
	frame    *core.PixelBuffer
	stats    Stats
	running  atomic.Bool
	gameOver bool
}

// NewLoop wires a simulation to its input state and collaborators.
func NewLoop(cfg Config, sim Simulation, input *core.InputState, c Collaborators) *Loop {
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return &Loop{
		cfg:      cfg.withDefaults(),
		sim:      sim,
		input:    input,
		sink:     c.Sink,
		title:    c.Title,
		reporter: c.Errors,
		clock:    c.Clock,
		logger:   c.Logger,
		frame:    core.NewPixelBuffer(0, 0),
	}
}

// Stop clears the running flag. Run returns after its current iteration.
func (l *Loop) Stop() {
	l.running.Store(false)
}

// Stats returns the loop's rate counters. Read them after Run returns.
func (l *Loop) Stats() *Stats {
	return &l.stats
}

// Ticks returns the number of simulation ticks processed so far.
func (l *Loop) Ticks() int {
	if l.ctrl == nil {
		return 0
	}
	return l.ctrl.Tick()
}

// Run executes the loop until Stop is called, ctx is done, Escape is held
// (ErrEscape) or the frame sink fails.
func (l *Loop) Run(ctx context.Context) error {
	if l.sink == nil {
		return errors.New("engine: no frame sink")
	}

	nsPerTick := float64(time.Second) / float64(l.cfg.TickRate)
	last := l.clock.Now()
	timer := last
	delta := 0.0

	l.ctrl = NewController(l.cfg, l.sim, l.input, last)
	l.running.Store(true)
	defer l.running.Store(false)

	l.logger.Debug("loop started", "tick_rate", l.cfg.TickRate, "render_cap", l.cfg.RenderCap)

	for l.running.Load() {
		if ctx.Err() != nil {
			return nil
		}

		now := l.clock.Now()
		delta += float64(now.Sub(last)) / nsPerTick
		last = now

		for delta >= 1 {
			if err := l.ctrl.Step(now); err != nil {
				if errors.Is(err, ErrEscape) {
					l.logger.Info("escape pressed", "score", l.sim.Score())
				}
				return err
			}
			l.stats.AddUpdate()
			delta--
		}

		l.noteGameOver()

		if err := l.render(); err != nil {
			return err
		}
		l.stats.AddFrame()

		if now.Sub(timer) > time.Second {
			timer = timer.Add(time.Second)
			ups, fps := l.stats.Flush()
			if l.title != nil {
				l.title.ReportRates(ups, fps)
			}
			l.logger.Debug("rates", "ups", ups, "fps", fps)
		}

		l.pace(now)
	}
	return nil
}

// render draws one frame at the sink's current size and presents it.
func (l *Loop) render() error {
	w, h := l.sink.Size()
	if w != l.frame.Width || h != l.frame.Height {
		l.frame.Resize(w, h)
	}

	if err := l.sim.Render(l.frame); err != nil {
		return fmt.Errorf("engine: render failed: %w", err)
	}

	if err := l.sink.Present(l.frame); err != nil {
		return l.sinkFailed(err)
	}
	return nil
}

// sinkFailed reports a frame sink failure to the user a bounded number of
// times and returns the error that ends the loop.
func (l *Loop) sinkFailed(err error) error {
	l.logger.Error("frame sink failed", "error", err)

	if l.reporter != nil {
		msg := fmt.Sprintf("Display failure: %v", err)
		for attempt := 1; attempt <= l.cfg.MaxErrorReports; attempt++ {
			rerr := l.reporter.ReportError(msg)
			if rerr == nil {
				break
			}
			l.logger.Warn("error report failed", "attempt", attempt, "error", rerr)
		}
	}
	return fmt.Errorf("engine: frame sink failed: %w", err)
}

// noteGameOver logs the transition into the terminal state once.
func (l *Loop) noteGameOver() {
	if l.gameOver || !l.sim.GameOver() {
		return
	}
	l.gameOver = true
	l.logger.Info("game over", "score", l.sim.Score(), "ticks", l.ctrl.Tick())
}

// pace sleeps out the rest of the frame budget when a render cap is set.
func (l *Loop) pace(iterationStart time.Time) {
	if l.cfg.RenderCap <= 0 {
		return
	}
	budget := time.Second / time.Duration(l.cfg.RenderCap)
	if rest := budget - l.clock.Now().Sub(iterationStart); rest > 0 {
		l.clock.Sleep(rest)
	}
}
