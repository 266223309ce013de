package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the configured display.

Controls:
  Left/A, Right/D   - Move
  Down/S            - Soft drop
  Up/Space/X        - Turn
  Esc/Q             - Quit

Difficulty options:
  easy   - Gravity starts slow and speeds up with score
  normal - Starts at 30% of the speed-up
  hard   - Starts at 70% of the speed-up, faster key repeat
  fixed  - No speed-up, gravity stays at drop_delay_ticks (the default)

Examples:
  blockfall play
  blockfall play --display window
  blockfall play --difficulty hard --seed 7
  blockfall play --config ./my-tetris.yaml --log-file blockfall.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	backend := cfg.Display.Backend
	if !registry.Exists(backend) {
		fmt.Fprintf(os.Stderr, "Error: unknown display %q\n", backend)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available displays.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "display", backend, "config", source, "seed", seed, "tick_rate", cfg.Timing.TickRate)

	tile, margin := cfg.Render.Layout(backend)
	game := tetris.NewGame(core.RuntimeConfig{TickRate: cfg.Timing.TickRate, Seed: seed}, tetris.Options{
		TileSize:    tile,
		MarginTiles: margin,
		Scoring:     tetris.ScoreTable(cfg.Scoring.LinePoints),
	})

	input := core.NewInputState()
	width, height := game.WindowSize()
	display, err := registry.Create(backend, registry.Options{
		Title:      cfg.Display.Title,
		Width:      width,
		Height:     height,
		Input:      input,
		KeyRelease: cfg.Input.KeyRelease(),
		Logger:     logger,
	})
	if err != nil {
		logger.Error("cannot create display", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loop := engine.NewLoop(loopConfig(cfg), game, input, engine.Collaborators{
		Sink:   display,
		Title:  display,
		Errors: display,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := runSession(ctx, loop, display)
	stop()

	ups, fps := loop.Stats().Last()
	logger.Info("session ended", "score", game.Score(), "lines", game.Lines(), "ticks", loop.Ticks(), "ups", ups, "fps", fps)
	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Score: %d  Lines: %d\n", game.Score(), game.Lines())
}

// loopConfig maps the timing section onto the engine, with gravity driven by
// the difficulty manager.
func loopConfig(cfg config.TetrisConfig) engine.Config {
	difficulty := config.NewDifficultyManager(cfg.Difficulty, cfg.Timing.TickRate)
	base := cfg.Timing.DropDelayTicks

	return engine.Config{
		TickRate:        cfg.Timing.TickRate,
		DropDelayTicks:  base,
		MoveRepeatTicks: cfg.Timing.MoveRepeatTicks,
		TurnCooldown:    cfg.Timing.TurnCooldown(),
		RenderCap:       cfg.Timing.RenderCap,
		MaxErrorReports: cfg.Timing.MaxErrorReports,
		DropDelay: func(score, tick int) int {
			return difficulty.DropDelay(base, score, tick)
		},
	}
}

// runSession runs the engine loop on its own goroutine and the display event
// loop on the calling one. Whichever ends first stops the other. Escape is a
// normal end of the session.
func runSession(ctx context.Context, loop *engine.Loop, display registry.Display) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- loop.Run(ctx)
		cancel()
	}()

	displayErr := display.Run(ctx)
	cancel()

	err := <-loopErr
	if errors.Is(err, engine.ErrEscape) {
		err = nil
	}
	return errors.Join(err, displayErr)
}
