package config

import "math"

// DifficultyManager calculates the gravity drop delay based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	tickRate     int
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager. tickRate converts
// ticks to seconds for time-based progression.
func NewDifficultyManager(cfg DifficultyConfig, tickRate int) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		tickRate:     max(tickRate, 1),
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the score, or
// from the seconds of play that ticks represent at the configured tick rate.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / float64(d.tickRate) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DropDelay returns the gravity delay in ticks for the current level.
// It shrinks from baseDelay at level 0 to the configured minimum at level 1.
func (d *DifficultyManager) DropDelay(baseDelay int, score int, ticks int) int {
	minDelay := max(min(d.cfg.MinDropDelayTicks, baseDelay), 1)
	level := d.Level(score, ticks)
	delay := float64(baseDelay) - level*float64(baseDelay-minDelay)
	return max(int(math.Round(delay)), minDelay)
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
