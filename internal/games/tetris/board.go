// Package tetris implements the falling-block board: piece spawning, movement,
// rotation, collision, locking, line clears, scoring and game-over detection.
//
// Rotation has no wall kicks: a turn that would collide is
// rejected and the piece keeps its prior rotation.
package tetris

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// State is the board's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	if s == StateGameOver {
		return "GameOver"
	}
	return "Running"
}

// Cell is a grid cell: zero when empty, otherwise the locked piece's Kind+1.
type Cell uint8

// Empty reports whether no piece is locked in the cell.
func (c Cell) Empty() bool { return c == 0 }

// Kind returns the kind of the locked piece. Only meaningful when not empty.
func (c Cell) Kind() Kind { return Kind(c) - 1 }

func cellOf(k Kind) Cell { return Cell(k + 1) }

// Board owns the locked grid, the active piece and the score.
type Board struct {
	grid     [Height][Width]Cell
	piece    Piece
	hasPiece bool // false once spawning failed
	state    State
	score    *Score
	gen      Generator
	locks    int
}

// NewBoard creates an empty board and spawns its first piece.
func NewBoard(gen Generator, table ScoreTable) *Board {
	if gen == nil {
		gen = NewBagGenerator(0)
	}
	b := &Board{
		gen:   gen,
		score: NewScore(table),
	}
	b.spawn()
	return b
}

// State returns the current lifecycle state.
func (b *Board) State() State { return b.state }

// GameOver returns true once a spawn has collided.
func (b *Board) GameOver() bool { return b.state == StateGameOver }

// Score returns the current score.
func (b *Board) Score() int { return b.score.Value() }

// Lines returns the total number of cleared rows.
func (b *Board) Lines() int { return b.score.Lines() }

// Locks returns how many pieces have been locked into the grid.
func (b *Board) Locks() int { return b.locks }

// ActivePiece returns the falling piece, or false when there is none (game over).
func (b *Board) ActivePiece() (Piece, bool) {
	return b.piece, b.hasPiece
}

// Cell returns the locked cell at the given position. Out-of-bounds cells are empty.
func (b *Board) Cell(col, row int) Cell {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return 0
	}
	return b.grid[row][col]
}

// Move shifts the active piece one cell left, right or down. A blocked
// downward move locks the piece instead. Other directions and any call in
// the game-over state are no-ops.
func (b *Board) Move(dir core.Direction) {
	if b.state == StateGameOver || !b.hasPiece {
		return
	}

	dc, dr := 0, 0
	switch dir {
	case core.DirLeft:
		dc = -1
	case core.DirRight:
		dc = 1
	case core.DirDown:
		dr = 1
	default:
		return
	}

	p := b.piece
	if b.fits(p.cellsAt(p.Col+dc, p.Row+dr, p.Rotation)) {
		b.piece.Col += dc
		b.piece.Row += dr
		return
	}

	if dir == core.DirDown {
		b.lock()
	}
}

// Turn rotates the active piece to its next rotation state. Any collision
// rejects the turn.
func (b *Board) Turn() {
	if b.state == StateGameOver || !b.hasPiece {
		return
	}

	p := b.piece
	next := (p.Rotation + 1) % numRotations
	if b.fits(p.cellsAt(p.Col, p.Row, next)) {
		b.piece.Rotation = next
	}
}

// fits reports whether every cell is inside the grid and unoccupied.
func (b *Board) fits(cells [4]Point) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= Width || c.Row < 0 || c.Row >= Height {
			return false
		}
		if !b.grid[c.Row][c.Col].Empty() {
			return false
		}
	}
	return true
}

// lock transfers the active piece into the grid, clears full rows and
// spawns the next piece.
func (b *Board) lock() {
	for _, c := range b.piece.Cells() {
		b.grid[c.Row][c.Col] = cellOf(b.piece.Kind)
	}
	b.hasPiece = false
	b.locks++

	rows := b.clearLines()
	b.score.award(rows)

	b.spawn()
}

// clearLines removes every full row in one bottom-to-top pass, shifting the
// remaining rows down and inserting empty rows at the top.
func (b *Board) clearLines() int {
	cleared := 0
	write := Height - 1
	for read := Height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			b.grid[write] = b.grid[read]
		}
		write--
	}
	for ; write >= 0; write-- {
		b.grid[write] = [Width]Cell{}
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for _, c := range b.grid[row] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// spawn places the next piece at top-center. If it collides the game is over.
func (b *Board) spawn() {
	k := b.gen.Next()
	p := Piece{
		Kind:     k,
		Rotation: 0,
		Col:      (Width - boxSize(k)) / 2,
		Row:      0,
	}
	if !b.fits(p.Cells()) {
		b.state = StateGameOver
		b.hasPiece = false
		return
	}
	b.piece = p
	b.hasPiece = true
}
