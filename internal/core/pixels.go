package core

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is returned when a pixel buffer's backing slice cannot hold
// its declared width x height.
var ErrBufferTooSmall = errors.New("core: pixel buffer smaller than declared size")

// PixelBuffer is a row-major array of 32-bit RGB pixels handed to a frame sink.
// Drawing never reads or writes outside Width x Height.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewPixelBuffer allocates a buffer with the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Bounds returns the buffer area as a rectangle at the origin.
func (b *PixelBuffer) Bounds() Rect {
	return Rect{W: b.Width, H: b.Height}
}

// Validate fails if the backing slice is shorter than the declared size.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrBufferTooSmall)
	}
	if b.Width < 0 || b.Height < 0 || len(b.Pix) < b.Width*b.Height {
		return fmt.Errorf("%w: %dx%d needs %d pixels, have %d",
			ErrBufferTooSmall, b.Width, b.Height, b.Width*b.Height, len(b.Pix))
	}
	return nil
}

// sized reports whether Pix covers the declared area.
func (b *PixelBuffer) sized() bool {
	return len(b.Pix) >= b.Width*b.Height
}

// Resize changes the declared dimensions, reallocating only when needed.
// Content is not preserved.
func (b *PixelBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	b.Width = width
	b.Height = height
	if cap(b.Pix) < width*height {
		b.Pix = make([]uint32, width*height)
		return
	}
	b.Pix = b.Pix[:width*height]
}

// Fill paints every pixel with the given color.
func (b *PixelBuffer) Fill(c Color) {
	n := b.Width * b.Height
	for i := 0; i < n && i < len(b.Pix); i++ {
		b.Pix[i] = uint32(c)
	}
}

// Set paints a single pixel. Out-of-bounds coordinates are silently ignored.
func (b *PixelBuffer) Set(x, y int, c Color) {
	if !b.sized() || !b.Bounds().Contains(x, y) {
		return
	}
	b.Pix[y*b.Width+x] = uint32(c)
}

// At returns the pixel at the given position, or black when out of bounds.
func (b *PixelBuffer) At(x, y int) Color {
	if !b.sized() || !b.Bounds().Contains(x, y) {
		return ColorBlack
	}
	return Color(b.Pix[y*b.Width+x])
}

// FillRect paints a solid rectangle, clipped to the buffer and to clip.
func (b *PixelBuffer) FillRect(r, clip Rect, c Color) {
	r = r.Intersect(clip).Intersect(b.Bounds())
	if r.Empty() || !b.sized() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := b.Pix[y*b.Width : y*b.Width+b.Width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = uint32(c)
		}
	}
}

// StrokeRect paints a rectangle outline of the given thickness, clipped like FillRect.
func (b *PixelBuffer) StrokeRect(r, clip Rect, thickness int, c Color) {
	if thickness <= 0 {
		return
	}
	b.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, clip, c)
	b.FillRect(Rect{X: r.X, Y: r.Bottom() - thickness, W: r.W, H: thickness}, clip, c)
	b.FillRect(Rect{X: r.X, Y: r.Y, W: thickness, H: r.H}, clip, c)
	b.FillRect(Rect{X: r.Right() - thickness, Y: r.Y, W: thickness, H: r.H}, clip, c)
}

// CopyFrom copies another buffer's content and dimensions into b.
func (b *PixelBuffer) CopyFrom(src *PixelBuffer) {
	b.Resize(src.Width, src.Height)
	copy(b.Pix, src.Pix[:src.Width*src.Height])
}
