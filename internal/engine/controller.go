package engine

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// neverActed is the initial last-acted tick, far enough back that the first
// held move fires immediately.
const neverActed = -1 << 30

// Controller applies the held-input policy and gravity to a simulation,
// one tick at a time. Its edge timers are kept here, not in the simulation.
type Controller struct {
	cfg   Config
	sim   Simulation
	input *core.InputState

	tick        int
	lastGravity int
	lastMove    [core.NumDirections]int
	lastTurn    time.Time
}

// NewController creates a controller. start seeds the turn cooldown, so a
// turn held from the beginning fires once the first cooldown has elapsed.
func NewController(cfg Config, sim Simulation, input *core.InputState, start time.Time) *Controller {
	c := &Controller{
		cfg:      cfg.withDefaults(),
		sim:      sim,
		input:    input,
		lastTurn: start,
	}
	for i := range c.lastMove {
		c.lastMove[i] = neverActed
	}
	return c
}

// Tick returns the number of ticks processed.
func (c *Controller) Tick() int { return c.tick }

// Step polls input and advances the simulation by exactly one tick.
// It returns ErrEscape without updating when Escape is held.
func (c *Controller) Step(now time.Time) error {
	if err := c.handleInput(now); err != nil {
		return err
	}
	c.update()
	return nil
}

// handleInput acts on every held direction.
func (c *Controller) handleInput(now time.Time) error {
	if c.input.Held(core.DirEscape) {
		return ErrEscape
	}

	for _, dir := range core.Directions {
		if !c.input.Held(dir) {
			continue
		}
		switch dir {
		case core.DirEscape, core.DirUp:
			// Escape handled above, Up is reserved
		case core.DirTurn:
			if now.Sub(c.lastTurn) > c.cfg.TurnCooldown {
				c.sim.Turn()
				c.lastTurn = now
			}
		default:
			if c.lastMove[dir]+c.cfg.MoveRepeatTicks < c.tick {
				c.sim.Move(dir)
				c.lastMove[dir] = c.tick
			}
		}
	}
	return nil
}

// update advances the tick counter and applies gravity.
func (c *Controller) update() {
	c.tick++
	if c.lastGravity+c.dropDelay() < c.tick {
		c.sim.Move(core.DirDown)
		c.lastGravity = c.tick
	}
}

func (c *Controller) dropDelay() int {
	if c.cfg.DropDelay != nil {
		return max(c.cfg.DropDelay(c.sim.Score(), c.tick), 1)
	}
	return c.cfg.DropDelayTicks
}
