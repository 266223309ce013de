package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadTetris when the embedded defaults were used.
const SourceEmbedded = "embedded"

// LoadTetris loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.blockfall/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files only need to set the keys they override.
func LoadTetris(customPath string) (TetrisConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the hard-coded defaults and validates the result.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

func loadFile(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTetrisConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust input repeat based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timing.TurnCooldownMS = max(cfg.Timing.TurnCooldownMS, 250)
	case DifficultyHard:
		cfg.Timing.MoveRepeatTicks = min(cfg.Timing.MoveRepeatTicks, 6)
	}
}
