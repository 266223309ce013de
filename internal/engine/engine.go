// Package engine drives a simulation with a fixed-timestep loop: it polls
// held input, advances the simulation a whole number of ticks per wall-clock
// interval and renders exactly once per outer iteration.
package engine

import (
	"errors"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrEscape is returned by Loop.Run when the Escape direction was held.
var ErrEscape = errors.New("engine: escape requested")

// Simulation is the game state the loop advances and renders.
type Simulation interface {
	Move(dir core.Direction)
	Turn()
	GameOver() bool
	Score() int
	Render(dst *core.PixelBuffer) error
}

// FrameSink accepts fully rendered frames. Present must not block the loop
// for longer than a copy; Size reports the window's pixel dimensions.
type FrameSink interface {
	Size() (width, height int)
	Present(frame *core.PixelBuffer) error
}

// TitleSink receives the updates/frames per second once per wall-clock second.
type TitleSink interface {
	ReportRates(ups, fps int)
}

// ErrorReporter shows a user-visible error message on the display.
// The implementing display is the window that owns the message, so no
// separate handle is passed.
type ErrorReporter interface {
	ReportError(message string) error
}

// Clock abstracts wall-clock time so the loop can be tested without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the current goroutine.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Config holds the loop's tuning values.
type Config struct {
	TickRate        int           // Simulation ticks per second
	DropDelayTicks  int           // Ticks between gravity drops
	MoveRepeatTicks int           // Minimum tick gap between held-key moves
	TurnCooldown    time.Duration // Minimum wall-clock gap between held-key turns
	RenderCap       int           // Max frames per second, 0 = unlimited
	MaxErrorReports int           // Popup attempts after a sink failure

	// DropDelay, when set, overrides DropDelayTicks based on score and tick count.
	DropDelay func(score, tick int) int
}

// DefaultConfig returns the reference tuning: 60 ticks/s, gravity every 50
// ticks, held moves every 10 ticks, turns every 200 ms.
func DefaultConfig() Config {
	return Config{
		TickRate:        60,
		DropDelayTicks:  50,
		MoveRepeatTicks: 10,
		TurnCooldown:    200 * time.Millisecond,
		RenderCap:       0,
		MaxErrorReports: 3,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.DropDelayTicks <= 0 {
		c.DropDelayTicks = d.DropDelayTicks
	}
	if c.MoveRepeatTicks < 0 {
		c.MoveRepeatTicks = 0
	}
	if c.TurnCooldown < 0 {
		c.TurnCooldown = 0
	}
	if c.MaxErrorReports <= 0 {
		c.MaxErrorReports = d.MaxErrorReports
	}
	return c
}
