package tetris

import "strings"

// Snapshot captures the complete board state for determinism testing and replay.
type Snapshot struct {
	State    State
	Score    int
	Lines    int
	Locks    int
	HasPiece bool
	Piece    Piece
	Rows     [Height]string // '.' empty, kind letter for locked cells
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		State:    b.state,
		Score:    b.score.Value(),
		Lines:    b.score.Lines(),
		Locks:    b.locks,
		HasPiece: b.hasPiece,
		Piece:    b.piece,
	}
	for row := range Height {
		var sb strings.Builder
		sb.Grow(Width)
		for col := range Width {
			c := b.grid[row][col]
			if c.Empty() {
				sb.WriteByte('.')
			} else {
				sb.WriteString(c.Kind().String())
			}
		}
		s.Rows[row] = sb.String()
	}
	return s
}

// String renders the grid with the active piece drawn as '#'.
func (b *Board) String() string {
	snap := b.Snapshot()
	rows := make([][]byte, Height)
	for i, r := range snap.Rows {
		rows[i] = []byte(r)
	}
	if b.hasPiece {
		for _, c := range b.piece.Cells() {
			rows[c.Row][c.Col] = '#'
		}
	}

	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(r)
	}
	return sb.String()
}
