package tetris

import (
	"strconv"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Layout maps grid coordinates to window pixels. The window shows the grid
// inside a one-tile border frame, plus an optional status margin on the right.
type Layout struct {
	TileSize    int // Pixels per cell
	MarginTiles int // Status column width in tiles; 0 puts the score inside the grid
}

// NewLayout creates a layout, clamping the tile size to something drawable.
func NewLayout(tileSize, marginTiles int) Layout {
	return Layout{
		TileSize:    max(tileSize, 2),
		MarginTiles: max(marginTiles, 0),
	}
}

// WindowSize returns the pixel dimensions the layout needs.
func (l Layout) WindowSize() (int, int) {
	return (Width + 2 + l.MarginTiles) * l.TileSize, (Height + 2) * l.TileSize
}

// FrameRect returns the border frame including the grid.
func (l Layout) FrameRect() core.Rect {
	return core.NewRect(0, 0, (Width+2)*l.TileSize, (Height+2)*l.TileSize)
}

// GridRect returns the playfield area inside the frame.
func (l Layout) GridRect() core.Rect {
	return core.NewRect(l.TileSize, l.TileSize, Width*l.TileSize, Height*l.TileSize)
}

// CellRect returns the pixel rectangle of a grid cell.
func (l Layout) CellRect(col, row int) core.Rect {
	g := l.GridRect()
	return core.NewRect(g.X+col*l.TileSize, g.Y+row*l.TileSize, l.TileSize, l.TileSize)
}

// StatusRect returns the score overlay region.
func (l Layout) StatusRect() core.Rect {
	t := l.TileSize
	if l.MarginTiles == 0 {
		return core.NewRect((Width-3)*t, t, 4*t, 3*t)
	}
	s := l.textScale()
	return core.NewRect((Width+2)*t, t, l.MarginTiles*t, max(6*t, 5*(textHeight(s)+2*s)))
}

// GameOverRect returns the game-over overlay region, centered in the window.
func (l Layout) GameOverRect() core.Rect {
	ww, wh := l.WindowSize()
	s := l.textScale()
	w := ww - 2*l.TileSize
	h := min(max(7*l.TileSize, 5*(textHeight(s)+3*s)), wh)
	return core.NewRect((ww-w)/2, (wh-h)/2, w, h)
}

// textScale picks a glyph pixel size proportional to the tile size.
func (l Layout) textScale() int {
	return max(l.TileSize/8, 1)
}

// AddToPixels draws the border frame, every locked cell and the active piece.
// Nothing outside the frame is written.
func (b *Board) AddToPixels(dst *core.PixelBuffer, l Layout) error {
	if err := dst.Validate(); err != nil {
		return err
	}

	frame := l.FrameRect()
	dst.StrokeRect(frame, frame, l.TileSize, core.ColorBorder)
	dst.FillRect(l.GridRect(), frame, core.ColorWell)

	for row := range Height {
		for col := range Width {
			if c := b.grid[row][col]; !c.Empty() {
				fillCell(dst, l, col, row, c.Kind().Color())
			}
		}
	}

	if b.hasPiece {
		for _, c := range b.piece.Cells() {
			fillCell(dst, l, c.Col, c.Row, b.piece.Kind.Color())
		}
	}
	return nil
}

func fillCell(dst *core.PixelBuffer, l Layout, col, row int, c core.Color) {
	r := l.CellRect(col, row)
	if l.TileSize >= 4 {
		r = core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	}
	dst.FillRect(r, l.GridRect(), c)
}

// ScoreOverlay draws the running score and line count into the status region.
type ScoreOverlay struct {
	Layout Layout
}

// AddToPixels writes the score panel, restricted to Layout.StatusRect().
func (o ScoreOverlay) AddToPixels(dst *core.PixelBuffer, score, lines int) error {
	if err := dst.Validate(); err != nil {
		return err
	}

	region := o.Layout.StatusRect()
	scale := o.Layout.textScale()
	line := textHeight(scale) + 2*scale

	dst.FillRect(region, region, core.ColorBlack)
	y := region.Y + scale
	if o.Layout.MarginTiles == 0 {
		// Compact panel inside the grid: number only
		drawTextCentered(dst, region, region.Y+(region.H-textHeight(scale))/2, scale, strconv.Itoa(score), core.ColorText)
		return nil
	}

	drawTextCentered(dst, region, y, scale, "SCORE", core.ColorText)
	y += line
	drawTextCentered(dst, region, y, scale, strconv.Itoa(score), core.ColorYellow)
	y += line + scale
	drawTextCentered(dst, region, y, scale, "LINES", core.ColorText)
	y += line
	drawTextCentered(dst, region, y, scale, strconv.Itoa(lines), core.ColorCyan)
	return nil
}

// GameOverOverlay draws the final result panel over the last frame.
type GameOverOverlay struct {
	Layout Layout
}

// AddToPixels writes the game-over panel, restricted to Layout.GameOverRect().
func (o GameOverOverlay) AddToPixels(dst *core.PixelBuffer, score, lines int) error {
	if err := dst.Validate(); err != nil {
		return err
	}

	region := o.Layout.GameOverRect()
	scale := o.Layout.textScale()
	line := textHeight(scale) + 3*scale

	dst.FillRect(region, region, core.ColorGameOver)
	dst.StrokeRect(region, region, max(scale, 1), core.ColorRed)

	titleScale := scale * 2
	if textWidth("GAME OVER", titleScale) > region.W-2*scale {
		titleScale = scale
	}

	y := region.Y + (region.H-4*line)/2
	drawTextCentered(dst, region, y, titleScale, "GAME OVER", core.ColorText)
	y += 2 * line
	drawTextCentered(dst, region, y, scale, "SCORE "+strconv.Itoa(score), core.ColorYellow)
	y += line
	drawTextCentered(dst, region, y, scale, "LINES "+strconv.Itoa(lines), core.ColorCyan)
	return nil
}
