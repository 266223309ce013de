package tetris

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	numKinds = int(KindL) + 1
)

// Kinds lists every tetromino in table order.
var Kinds = [numKinds]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= numKinds {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// Color returns the fill color of cells belonging to this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorPurple
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorText
	}
}

// Offset is a cell position relative to a piece's anchor.
type Offset struct {
	DX, DY int
}

// numRotations is the number of rotation states of every piece.
const numRotations = 4

// Spawn layouts inside each kind's bounding box, rotation 0.
var spawnLayouts = [numKinds][]string{
	KindI: {"####", "....", "....", "...."},
	KindO: {"##", "##"},
	KindT: {".#.", "###", "..."},
	KindS: {".##", "##.", "..."},
	KindZ: {"##.", ".##", "..."},
	KindJ: {"#..", "###", "..."},
	KindL: {"..#", "###", "..."},
}

// shapes is the offset table indexed by (kind, rotation). Each rotation turns
// the previous one clockwise inside the kind's square bounding box.
var shapes = buildShapes()

func buildShapes() [numKinds][numRotations][4]Offset {
	var table [numKinds][numRotations][4]Offset
	for k, layout := range spawnLayouts {
		size := len(layout)
		grid := make([][]bool, size)
		for y, row := range layout {
			grid[y] = make([]bool, size)
			for x, ch := range row {
				grid[y][x] = ch == '#'
			}
		}

		for r := range numRotations {
			n := 0
			for y := range size {
				for x := range size {
					if grid[y][x] {
						table[k][r][n] = Offset{DX: x, DY: y}
						n++
					}
				}
			}
			grid = rotateClockwise(grid)
		}
	}
	return table
}

func rotateClockwise(grid [][]bool) [][]bool {
	size := len(grid)
	rotated := make([][]bool, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}
	for y := range size {
		for x := range size {
			rotated[x][size-1-y] = grid[y][x]
		}
	}
	return rotated
}

// boxSize returns the width of the kind's bounding box.
func boxSize(k Kind) int {
	return len(spawnLayouts[k])
}

// Point is a grid coordinate.
type Point struct {
	Col, Row int
}

// Piece is the falling tetromino: kind, rotation state and anchor position.
type Piece struct {
	Kind     Kind
	Rotation int // 0..3
	Col      int // Anchor column (left edge of bounding box)
	Row      int // Anchor row (top edge of bounding box)
}

// Cells returns the grid cells occupied by the piece.
func (p Piece) Cells() [4]Point {
	return p.cellsAt(p.Col, p.Row, p.Rotation)
}

func (p Piece) cellsAt(col, row, rotation int) [4]Point {
	var cells [4]Point
	for i, o := range shapes[p.Kind][rotation] {
		cells[i] = Point{Col: col + o.DX, Row: row + o.DY}
	}
	return cells
}

// Generator produces the sequence of spawned kinds.
type Generator interface {
	Next() Kind
}

// BagGenerator deals kinds from shuffled bags of all seven tetrominoes.
// Generators created with the same seed produce identical sequences.
type BagGenerator struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagGenerator creates a seeded 7-bag generator.
func NewBagGenerator(seed int64) *BagGenerator {
	return &BagGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next kind from the bag, refilling when empty.
func (g *BagGenerator) Next() Kind {
	if len(g.bag) == 0 {
		g.bag = append(g.bag[:0], Kinds[:]...)
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

// SequenceGenerator cycles through a fixed list of kinds.
type SequenceGenerator struct {
	kinds []Kind
	pos   int
}

// NewSequenceGenerator creates a generator that repeats kinds in order.
// An empty list yields KindO forever.
func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	if len(kinds) == 0 {
		kinds = []Kind{KindO}
	}
	return &SequenceGenerator{kinds: kinds}
}

// Next returns the next kind in the sequence.
func (g *SequenceGenerator) Next() Kind {
	k := g.kinds[g.pos%len(g.kinds)]
	g.pos++
	return k
}
