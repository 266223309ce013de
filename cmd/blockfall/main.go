// blockfall is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	blockfall play           - Play a game
//	blockfall list           - List display backends
//	blockfall config         - Print the effective configuration
//
// Global flags:
//
//	--tps <rate>          - Simulation ticks per second (default: from config)
//	--seed <value>        - RNG seed for a reproducible piece order
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--display <name>      - terminal or window
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"

	// Import displays to register them
	_ "github.com/vovakirdan/blockfall/internal/platform/tui"
	_ "github.com/vovakirdan/blockfall/internal/platform/window"
)

var (
	// Global flags
	flagTPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDisplay    string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game",
	Long: `Blockfall drops tetrominoes into a 10x20 well. Complete rows to clear
them and score; the game ends when a new piece has no room to spawn.

Available commands:
  play     - Play a game
  list     - Show the display backends
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play --display window --difficulty hard
  blockfall play --seed 42 --tps 120
  blockfall config > ~/.blockfall/configs/tetris.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Simulation ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDisplay, "display", "", "Display backend (see 'blockfall list')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the command-line overrides.
func loadConfig() (config.TetrisConfig, string, error) {
	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if flagTPS > 0 {
		cfg.Timing.TickRate = flagTPS
	}
	if flagDisplay != "" {
		cfg.Display.Backend = flagDisplay
	}
	return cfg, source, cfg.Validate()
}

// newLogger builds the process logger. The terminal display owns stdout and
// stderr while it runs, so its logs go nowhere unless --log-file is set.
func newLogger(backend string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case backend == config.BackendTerminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, closeFn, nil
}
