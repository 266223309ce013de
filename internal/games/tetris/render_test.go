package tetris

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

const sentinel core.Color = 0x123456

func newTestBuffer(l Layout) *core.PixelBuffer {
	w, h := l.WindowSize()
	buf := core.NewPixelBuffer(w, h)
	buf.Fill(sentinel)
	return buf
}

// assertUntouchedOutside fails if any pixel outside region changed from sentinel.
func assertUntouchedOutside(t *testing.T, buf *core.PixelBuffer, region core.Rect) {
	t.Helper()
	for y := range buf.Height {
		for x := range buf.Width {
			if !region.Contains(x, y) && buf.At(x, y) != sentinel {
				t.Fatalf("pixel (%d, %d) outside %+v was written", x, y, region)
			}
		}
	}
}

func midpoint(r core.Rect) (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func TestLayoutWindowSize(t *testing.T) {
	l := NewLayout(10, 6)
	w, h := l.WindowSize()
	if w != (Width+2+6)*10 || h != (Height+2)*10 {
		t.Errorf("WindowSize() = %dx%d", w, h)
	}
	if !l.FrameRect().Contains(l.GridRect().X, l.GridRect().Y) {
		t.Error("grid should lie inside the frame")
	}
}

func TestBoardAddToPixels(t *testing.T) {
	l := NewLayout(8, 6)
	b := NewBoard(NewSequenceGenerator(KindT), DefaultScoreTable)
	b.grid[Height-1][0] = cellOf(KindI)
	buf := newTestBuffer(l)

	if err := b.AddToPixels(buf, l); err != nil {
		t.Fatalf("AddToPixels() error = %v", err)
	}

	assertUntouchedOutside(t, buf, l.FrameRect())

	if got := buf.At(0, 0); got != core.ColorBorder {
		t.Errorf("frame corner = %s, expected border", got.Hex())
	}

	cx, cy := midpoint(l.CellRect(0, Height-1))
	if got := buf.At(cx, cy); got != KindI.Color() {
		t.Errorf("locked cell = %s, expected %s", got.Hex(), KindI.Color().Hex())
	}

	p, _ := b.ActivePiece()
	c := p.Cells()[0]
	cx, cy = midpoint(l.CellRect(c.Col, c.Row))
	if got := buf.At(cx, cy); got != KindT.Color() {
		t.Errorf("active cell = %s, expected %s", got.Hex(), KindT.Color().Hex())
	}

	cx, cy = midpoint(l.CellRect(9, 10))
	if got := buf.At(cx, cy); got != core.ColorWell {
		t.Errorf("empty cell = %s, expected well color", got.Hex())
	}
}

func TestAddToPixelsRejectsShortBuffer(t *testing.T) {
	l := NewLayout(8, 6)
	w, h := l.WindowSize()
	buf := &core.PixelBuffer{Width: w, Height: h, Pix: make([]uint32, w*h-1)}
	b := NewBoard(nil, DefaultScoreTable)

	if err := b.AddToPixels(buf, l); !errors.Is(err, core.ErrBufferTooSmall) {
		t.Errorf("AddToPixels() error = %v, expected ErrBufferTooSmall", err)
	}
	if err := (ScoreOverlay{Layout: l}).AddToPixels(buf, 0, 0); !errors.Is(err, core.ErrBufferTooSmall) {
		t.Errorf("ScoreOverlay error = %v, expected ErrBufferTooSmall", err)
	}
	for i, p := range buf.Pix {
		if p != 0 {
			t.Fatalf("Pix[%d] written despite failed precondition", i)
		}
	}
}

func TestOverlaysStayInTheirRegions(t *testing.T) {
	for _, margin := range []int{0, 6} {
		l := NewLayout(16, margin)

		buf := newTestBuffer(l)
		if err := (ScoreOverlay{Layout: l}).AddToPixels(buf, 123456, 78); err != nil {
			t.Fatalf("ScoreOverlay error = %v", err)
		}
		assertUntouchedOutside(t, buf, l.StatusRect())

		buf = newTestBuffer(l)
		if err := (GameOverOverlay{Layout: l}).AddToPixels(buf, 9001, 12); err != nil {
			t.Fatalf("GameOverOverlay error = %v", err)
		}
		assertUntouchedOutside(t, buf, l.GameOverRect())
	}
}

func TestScoreOverlayDrawsText(t *testing.T) {
	l := NewLayout(16, 6)
	buf := newTestBuffer(l)
	if err := (ScoreOverlay{Layout: l}).AddToPixels(buf, 40, 1); err != nil {
		t.Fatal(err)
	}

	region := l.StatusRect()
	lit := 0
	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			if buf.At(x, y) == core.ColorText {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected label pixels in the status region")
	}
}

func TestGameRenderSwitchesToGameOver(t *testing.T) {
	g := NewGame(core.DefaultConfig(), Options{TileSize: 8, MarginTiles: 6, Generator: NewSequenceGenerator(KindO)})
	w, h := g.WindowSize()
	buf := core.NewPixelBuffer(w, h)

	if err := g.Render(buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.At(w-1, h-1) != core.ColorBackground {
		t.Error("running frame should repaint the background")
	}

	// Stack O pieces in the spawn columns until the game ends
	for i := 0; i < 100 && !g.GameOver(); i++ {
		for range Height {
			g.Move(core.DirDown)
		}
	}
	if !g.GameOver() {
		t.Fatal("expected game over after stacking")
	}

	buf.Fill(sentinel)
	if err := g.Render(buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	assertUntouchedOutside(t, buf, g.Layout().GameOverRect())
}

func TestSmallLayoutPanelsFitWindow(t *testing.T) {
	l := NewLayout(2, 10)
	w, h := l.WindowSize()
	window := core.NewRect(0, 0, w, h)

	for name, r := range map[string]core.Rect{"status": l.StatusRect(), "game over": l.GameOverRect()} {
		if r.Intersect(window) != r {
			t.Errorf("%s rect %+v exceeds window %dx%d", name, r, w, h)
		}
	}
	if got := textWidth("GAME OVER", l.textScale()); got > l.GameOverRect().W {
		t.Errorf("game over title is %dpx wide, panel is %dpx", got, l.GameOverRect().W)
	}
	if got := textWidth("SCORE", l.textScale()); got > l.StatusRect().W {
		t.Errorf("score label is %dpx wide, panel is %dpx", got, l.StatusRect().W)
	}
}

func TestDrawTextCenteredBalancesMargins(t *testing.T) {
	tests := []struct {
		name   string
		region core.Rect
		scale  int
		text   string
	}{
		{"odd width", core.NewRect(5, 0, 21, 8), 1, "00"},
		{"scaled", core.NewRect(0, 0, 20, 12), 2, "0"},
		{"wide label", core.NewRect(3, 2, 40, 8), 1, "SCORE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := core.NewPixelBuffer(tc.region.Right()+4, tc.region.Bottom()+4)
			drawTextCentered(buf, tc.region, tc.region.Y, tc.scale, tc.text, core.ColorText)

			minX, maxX := buf.Width, -1
			for y := range buf.Height {
				for x := range buf.Width {
					if buf.At(x, y) == core.ColorText {
						minX, maxX = min(minX, x), max(maxX, x)
					}
				}
			}
			if maxX < 0 {
				t.Fatal("no text pixels drawn")
			}
			left := minX - tc.region.X
			right := tc.region.Right() - 1 - maxX
			if d := left - right; d < -1 || d > 1 {
				t.Errorf("margins left=%d right=%d, expected balanced", left, right)
			}
		})
	}
}
