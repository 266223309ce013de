package tetris

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	glyphW = 3
	glyphH = 5
)

// glyphs is a 3x5 block font covering the overlay text.
var glyphs = map[rune][glyphH]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'C': {"###", "#..", "#..", "#..", "###"},
	'E': {"###", "#..", "##.", "#..", "###"},
	'G': {"###", "#..", "#.#", "#.#", "###"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'M': {"#.#", "###", "###", "#.#", "#.#"},
	'N': {"##.", "#.#", "#.#", "#.#", "#.#"},
	'O': {"###", "#.#", "#.#", "#.#", "###"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'S': {"###", "#..", "###", "..#", "###"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	' ': {"...", "...", "...", "...", "..."},
}

// textWidth returns the pixel width of text drawn at the given scale.
func textWidth(text string, scale int) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return (n*(glyphW+1) - 1) * scale
}

// textHeight returns the pixel height of one text line at the given scale.
func textHeight(scale int) int {
	return glyphH * scale
}

// drawText writes text with its top-left corner at (x, y), one solid block
// per lit glyph pixel. Unknown runes render as blanks. Writes are clipped.
func drawText(dst *core.PixelBuffer, clip core.Rect, x, y, scale int, text string, c core.Color) {
	for _, r := range strings.ToUpper(text) {
		g, ok := glyphs[r]
		if ok {
			for gy, line := range g {
				for gx := range glyphW {
					if line[gx] == '#' {
						dst.FillRect(core.NewRect(x+gx*scale, y+gy*scale, scale, scale), clip, c)
					}
				}
			}
		}
		x += (glyphW + 1) * scale
	}
}

// drawTextCentered writes text horizontally centered in region at row y.
func drawTextCentered(dst *core.PixelBuffer, region core.Rect, y, scale int, text string, c core.Color) {
	x := region.X + (region.W-textWidth(text, scale))/2
	drawText(dst, region, x, y, scale, text, c)
}
