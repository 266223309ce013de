package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// halfBlock shows the upper pixel as foreground and the lower one as background.
const halfBlock = "▀"

// run is a horizontal stretch of terminal cells with the same pixel pair.
type run struct {
	top, bottom core.Color
	n           int
}

// rowRuns groups the cells of terminal row y (pixel rows 2y and 2y+1).
// A missing lower pixel on odd-height buffers reads as black.
func rowRuns(buf *core.PixelBuffer, y int) []run {
	var runs []run
	for x := range buf.Width {
		top := buf.At(x, 2*y)
		bottom := core.ColorBlack
		if 2*y+1 < buf.Height {
			bottom = buf.At(x, 2*y+1)
		}
		if n := len(runs); n > 0 && runs[n-1].top == top && runs[n-1].bottom == bottom {
			runs[n-1].n++
			continue
		}
		runs = append(runs, run{top: top, bottom: bottom, n: 1})
	}
	return runs
}

// pixelRenderer converts pixel buffers to styled terminal text.
// Styles are cached per color pair.
type pixelRenderer struct {
	styles map[[2]core.Color]lipgloss.Style
}

func newPixelRenderer() *pixelRenderer {
	return &pixelRenderer{styles: make(map[[2]core.Color]lipgloss.Style)}
}

func (r *pixelRenderer) style(top, bottom core.Color) lipgloss.Style {
	k := [2]core.Color{top, bottom}
	s, ok := r.styles[k]
	if !ok {
		s = lipgloss.NewStyle().
			Foreground(lipgloss.Color(top.Hex())).
			Background(lipgloss.Color(bottom.Hex()))
		r.styles[k] = s
	}
	return s
}

// Render draws buf with two pixel rows per line.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *pixelRenderer) Render(buf *core.PixelBuffer) string {
	rows := (buf.Height + 1) / 2

	var sb strings.Builder
	sb.Grow(buf.Width*rows*4 + rows)

	for y := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, seg := range rowRuns(buf, y) {
			sb.WriteString(r.style(seg.top, seg.bottom).Render(strings.Repeat(halfBlock, seg.n)))
		}
	}
	return sb.String()
}

// cellSize returns the terminal cells needed to show a frame of w x h pixels.
func cellSize(w, h int) (cols, rows int) {
	return w, (h + 1) / 2
}
