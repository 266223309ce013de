package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickRate:        60,
			DropDelayTicks:  50,
			MoveRepeatTicks: 10,
			TurnCooldownMS:  200,
			RenderCap:       120,
			MaxErrorReports: 3,
		},
		Render: RenderConfig{
			TileSize:            24,
			MarginTiles:         6,
			TerminalTileSize:    2,
			TerminalMarginTiles: 10,
		},
		Scoring: ScoringConfig{
			LinePoints: []int{0, 40, 100, 300, 1200},
		},
		Input: InputConfig{
			KeyReleaseMS: 150,
		},
		Display: DisplayConfig{
			Backend: BackendTerminal,
			Title:   "Tetris",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			MinDropDelayTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
