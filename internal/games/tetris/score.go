package tetris

// MaxLinesPerLock is the most rows a single lock can complete.
const MaxLinesPerLock = 4

// ScoreTable maps the number of rows cleared by one lock to the points awarded.
// Index 0 is the no-clear case.
type ScoreTable []int

// DefaultScoreTable is the classic 40/100/300/1200 curve.
var DefaultScoreTable = ScoreTable{0, 40, 100, 300, 1200}

// Points returns the score delta for clearing rows in one lock event.
func (t ScoreTable) Points(rows int) int {
	if rows <= 0 || len(t) == 0 {
		return 0
	}
	if rows >= len(t) {
		// Extend linearly past the table so the curve stays monotonic
		last := len(t) - 1
		if last == 0 {
			return t[0] + rows
		}
		return t[last] + (rows-last)*max(t[last]-t[last-1], 1)
	}
	return t[rows]
}

// Score is the session's monotonically increasing counter.
// Only the Board mutates it, once per lock.
type Score struct {
	table ScoreTable
	value int
	lines int
}

// NewScore creates a zeroed score using the given curve.
func NewScore(table ScoreTable) *Score {
	if len(table) < 2 {
		table = DefaultScoreTable
	}
	return &Score{table: table}
}

// Value returns the current score.
func (s *Score) Value() int { return s.value }

// Lines returns the total number of rows cleared.
func (s *Score) Lines() int { return s.lines }

// award credits one lock event that cleared the given number of rows.
func (s *Score) award(rows int) int {
	delta := s.table.Points(rows)
	s.value += delta
	s.lines += max(rows, 0)
	return delta
}
