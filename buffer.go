// seehuhn.de/go/line - aliased line rasterization
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

package line

import (
	"image"
	"image/color"
)

// Buffer is a rectangular grid of 32-bit ARGB pixels.  Alpha is stored in
// the most significant byte; colors are not premultiplied.
//
// Buffer implements [image.Image], with the top-left pixel at (0, 0).
type Buffer struct {
	// Pix holds the pixels in row-major order.
	Pix []uint32

	// Stride is the distance between vertically adjacent pixels in Pix.
	Stride int

	// Rect is the image bounds.  Rect.Min is always (0, 0).
	Rect image.Rectangle
}

// NewBuffer allocates a fully transparent buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]uint32, width*height),
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// ColorModel implements the [image.Image] interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
func (b *Buffer) Bounds() image.Rectangle {
	return b.Rect
}

// At implements the [image.Image] interface.
func (b *Buffer) At(x, y int) color.Color {
	return argbToNRGBA(b.ARGBAt(x, y))
}

// ARGBAt returns the raw pixel value at (x, y), or 0 outside the bounds.
func (b *Buffer) ARGBAt(x, y int) uint32 {
	if !(image.Point{x, y}.In(b.Rect)) {
		return 0
	}
	return b.Pix[y*b.Stride+x]
}

// SetARGB sets the pixel at (x, y).  Points outside the bounds are
// ignored.
func (b *Buffer) SetARGB(x, y int, c uint32) {
	if !(image.Point{x, y}.In(b.Rect)) {
		return
	}
	b.Pix[y*b.Stride+x] = c
}

// toARGB converts a color into the buffer's pixel format.
func toARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

func argbToNRGBA(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}
