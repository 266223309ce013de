package tetris

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Options configures a Game beyond the runtime config.
type Options struct {
	TileSize    int
	MarginTiles int
	Scoring     ScoreTable
	Generator   Generator // nil uses a 7-bag seeded from RuntimeConfig.Seed
}

// Game bundles the board with its renderers. It is the simulation context
// the engine loop drives.
type Game struct {
	board    *Board
	layout   Layout
	score    ScoreOverlay
	gameOver GameOverOverlay
}

// NewGame creates a board and renderers for a new session.
func NewGame(cfg core.RuntimeConfig, opts Options) *Game {
	gen := opts.Generator
	if gen == nil {
		gen = NewBagGenerator(cfg.Seed)
	}
	layout := NewLayout(opts.TileSize, opts.MarginTiles)
	return &Game{
		board:    NewBoard(gen, opts.Scoring),
		layout:   layout,
		score:    ScoreOverlay{Layout: layout},
		gameOver: GameOverOverlay{Layout: layout},
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Board returns the underlying board.
func (g *Game) Board() *Board { return g.board }

// Layout returns the pixel layout.
func (g *Game) Layout() Layout { return g.layout }

// WindowSize returns the pixel dimensions the game renders at.
func (g *Game) WindowSize() (int, int) { return g.layout.WindowSize() }

// Move forwards to Board.Move.
func (g *Game) Move(dir core.Direction) { g.board.Move(dir) }

// Turn forwards to Board.Turn.
func (g *Game) Turn() { g.board.Turn() }

// GameOver returns true once the board is frozen.
func (g *Game) GameOver() bool { return g.board.GameOver() }

// Score returns the current score.
func (g *Game) Score() int { return g.board.Score() }

// Lines returns the number of cleared rows.
func (g *Game) Lines() int { return g.board.Lines() }

// Render paints one frame. While running it repaints the background, the
// board and the score; after game over only the game-over panel is drawn on
// top of whatever the buffer already shows.
func (g *Game) Render(dst *core.PixelBuffer) error {
	if err := dst.Validate(); err != nil {
		return err
	}

	if g.board.GameOver() {
		return g.gameOver.AddToPixels(dst, g.board.Score(), g.board.Lines())
	}

	dst.Fill(core.ColorBackground)
	if err := g.board.AddToPixels(dst, g.layout); err != nil {
		return err
	}
	return g.score.AddToPixels(dst, g.board.Score(), g.board.Lines())
}
