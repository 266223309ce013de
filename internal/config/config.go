// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all tunable configuration for the game.
// Board dimensions are fixed and not part of it.
type TetrisConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Render     RenderConfig     `yaml:"render"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the fixed-timestep loop and input cooldowns.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`         // Simulation ticks per second
	DropDelayTicks  int `yaml:"drop_delay_ticks"`  // Ticks between gravity drops
	MoveRepeatTicks int `yaml:"move_repeat_ticks"` // Minimum tick gap between held-key moves
	TurnCooldownMS  int `yaml:"turn_cooldown_ms"`  // Wall-clock gap between held-key turns
	RenderCap       int `yaml:"render_cap"`        // Max frames per second, 0 = unlimited
	MaxErrorReports int `yaml:"max_error_reports"` // Popup attempts before giving up
}

// TurnCooldown returns the turn cooldown as a duration.
func (t TimingConfig) TurnCooldown() time.Duration {
	return time.Duration(t.TurnCooldownMS) * time.Millisecond
}

// RenderConfig defines the pixel layout. The terminal display maps one pixel
// to half a character cell, so it gets its own, much smaller layout.
type RenderConfig struct {
	TileSize            int `yaml:"tile_size"`             // Pixels per grid cell
	MarginTiles         int `yaml:"margin_tiles"`          // Status column width in tiles
	TerminalTileSize    int `yaml:"terminal_tile_size"`    // Pixels per grid cell in the terminal
	TerminalMarginTiles int `yaml:"terminal_margin_tiles"` // Status column width in the terminal
}

// Layout returns the tile size and margin for a display backend.
func (r RenderConfig) Layout(backend string) (tileSize, marginTiles int) {
	if backend == BackendTerminal {
		return r.TerminalTileSize, r.TerminalMarginTiles
	}
	return r.TileSize, r.MarginTiles
}

// ScoringConfig defines points per lock event.
type ScoringConfig struct {
	LinePoints []int `yaml:"line_points"` // Index = rows cleared by one lock (0..4)
}

// InputConfig defines input source behaviour.
type InputConfig struct {
	// KeyReleaseMS is how long a terminal key stays held after its last
	// press or repeat event, since terminals do not report releases.
	KeyReleaseMS int `yaml:"key_release_ms"`
}

// KeyRelease returns the terminal key release timeout as a duration.
func (i InputConfig) KeyRelease() time.Duration {
	return time.Duration(i.KeyReleaseMS) * time.Millisecond
}

// Display backend names.
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// DisplayConfig selects the display backend.
type DisplayConfig struct {
	Backend string `yaml:"backend"` // "terminal" or "window"
	Title   string `yaml:"title"`   // Window title prefix
}

// DifficultyConfig defines the gravity speed-up as the game progresses.
type DifficultyConfig struct {
	Enabled           bool              `yaml:"enabled"`
	InitialLevel      float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression       ProgressionConfig `yaml:"progression"`
	MinDropDelayTicks int               `yaml:"min_drop_delay_ticks"` // Drop delay at level 1.0
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score, or seconds of play, at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Timing.TickRate > 0, "timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	check(c.Timing.DropDelayTicks > 0, "timing.drop_delay_ticks must be positive, got %d", c.Timing.DropDelayTicks)
	check(c.Timing.MoveRepeatTicks >= 0, "timing.move_repeat_ticks must not be negative, got %d", c.Timing.MoveRepeatTicks)
	check(c.Timing.TurnCooldownMS >= 0, "timing.turn_cooldown_ms must not be negative, got %d", c.Timing.TurnCooldownMS)
	check(c.Timing.RenderCap >= 0, "timing.render_cap must not be negative, got %d", c.Timing.RenderCap)
	check(c.Timing.MaxErrorReports > 0, "timing.max_error_reports must be positive, got %d", c.Timing.MaxErrorReports)
	check(c.Render.TileSize >= 2, "render.tile_size must be at least 2, got %d", c.Render.TileSize)
	check(c.Render.MarginTiles >= 0, "render.margin_tiles must not be negative, got %d", c.Render.MarginTiles)
	check(c.Render.TerminalTileSize >= 2, "render.terminal_tile_size must be at least 2, got %d", c.Render.TerminalTileSize)
	check(c.Render.TerminalMarginTiles >= 0, "render.terminal_margin_tiles must not be negative, got %d", c.Render.TerminalMarginTiles)
	check(c.Input.KeyReleaseMS > 0, "input.key_release_ms must be positive, got %d", c.Input.KeyReleaseMS)

	pts := c.Scoring.LinePoints
	check(len(pts) == 5, "scoring.line_points needs 5 entries (0..4 rows), got %d", len(pts))
	for k := 1; k < len(pts); k++ {
		check(pts[k] >= k, "scoring.line_points[%d] must award at least %d, got %d", k, k, pts[k])
		check(pts[k] > pts[k-1], "scoring.line_points must increase with rows cleared (index %d)", k)
	}

	d := c.Difficulty
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1], got %g", d.InitialLevel)
	check(d.MinDropDelayTicks > 0 && d.MinDropDelayTicks <= c.Timing.DropDelayTicks,
		"difficulty.min_drop_delay_ticks must be in [1, drop_delay_ticks], got %d", d.MinDropDelayTicks)
	switch d.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", d.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
