package core

import "fmt"

// Color is a 24-bit RGB value packed as 0xRRGGBB, the pixel format of PixelBuffer.
type Color uint32

// RGB packs red, green and blue components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// Predefined colors for game elements.
const (
	ColorBlack      Color = 0x000000
	ColorBackground Color = 0x6e6e00 // Olive backdrop behind everything
	ColorBorder     Color = 0x505050
	ColorWell       Color = 0x101018 // Empty grid cells
	ColorText       Color = 0xf0f0f0
	ColorCyan       Color = 0x00d0e0
	ColorYellow     Color = 0xf0d000
	ColorPurple     Color = 0xa040e0
	ColorGreen      Color = 0x30d040
	ColorRed        Color = 0xe03030
	ColorBlue       Color = 0x3050e0
	ColorOrange     Color = 0xf08020
	ColorGameOver   Color = 0x300000
)
