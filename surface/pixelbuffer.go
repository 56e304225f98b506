// seehuhn.de/go/winerender - render wine tasting attributes as images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package surface

import (
	"image"
	"image/color"
)

// PixelBuffer is a fixed-size grid of non-premultiplied 8-bit RGBA pixels.
// Access by coordinates is bounds checked; bulk access goes through Pix
// and Stride.
type PixelBuffer struct {
	img *image.NRGBA
}

// NewPixelBuffer allocates a transparent buffer of the given size.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{img: image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the number of columns.
func (b *PixelBuffer) Width() int { return b.img.Rect.Dx() }

// Height returns the number of rows.
func (b *PixelBuffer) Height() int { return b.img.Rect.Dy() }

// In reports whether (x, y) lies inside the buffer.
func (b *PixelBuffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width() && y < b.Height()
}

// At returns the pixel at (x, y).  The second result is false, and the
// colour is zero, if the position is outside the buffer.
func (b *PixelBuffer) At(x, y int) (color.NRGBA, bool) {
	if !b.In(x, y) {
		return color.NRGBA{}, false
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, true
}

// Set stores c at (x, y) and reports whether the position was inside the
// buffer.  Writes outside the buffer are ignored.
func (b *PixelBuffer) Set(x, y int, c color.NRGBA) bool {
	if !b.In(x, y) {
		return false
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	return true
}

// Pix returns the underlying pixel data, four bytes per pixel in R, G, B, A
// order, rows Stride bytes apart.
func (b *PixelBuffer) Pix() []uint8 { return b.img.Pix }

// Stride returns the distance in bytes between vertically adjacent pixels.
func (b *PixelBuffer) Stride() int { return b.img.Stride }

// Image returns the buffer as an image, sharing the pixel data.
func (b *PixelBuffer) Image() *image.NRGBA { return b.img }

// Clone returns an independent copy of b.
func (b *PixelBuffer) Clone() *PixelBuffer {
	img := image.NewNRGBA(b.img.Rect)
	copy(img.Pix, b.img.Pix)
	return &PixelBuffer{img: img}
}
