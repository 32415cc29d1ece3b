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

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
)

// Canvas is a drawing surface with a current transformation matrix.
type Canvas interface {
	// Transform returns the matrix which maps user space to device space.
	Transform() matrix.Matrix

	// SetTransform replaces the current transformation matrix.
	SetTransform(m matrix.Matrix)

	// DrawImage composites img onto the canvas.  The top-left corner of
	// img is placed at (x, y) in user space.  Transparent pixels leave the
	// canvas unchanged.
	DrawImage(img image.Image, x, y int)
}

// boundedCanvas is implemented by canvases which know their device-space
// extent.  The renderer skips pixels outside these bounds.
type boundedCanvas interface {
	Bounds() image.Rectangle
}

// ImageCanvas is a [Canvas] which draws into an in-memory image.
type ImageCanvas struct {
	// Dst is the target image.  Device pixel (x, y) is Dst.At(x, y).
	Dst draw.Image

	// CTM is the current transformation matrix.
	CTM matrix.Matrix
}

// NewImageCanvas returns a canvas for dst, with the identity transform.
func NewImageCanvas(dst draw.Image) *ImageCanvas {
	return &ImageCanvas{
		Dst: dst,
		CTM: matrix.Identity,
	}
}

// Transform implements the [Canvas] interface.
func (c *ImageCanvas) Transform() matrix.Matrix {
	return c.CTM
}

// SetTransform implements the [Canvas] interface.
func (c *ImageCanvas) SetTransform(m matrix.Matrix) {
	c.CTM = m
}

// Bounds returns the bounds of the target image.
func (c *ImageCanvas) Bounds() image.Rectangle {
	return c.Dst.Bounds()
}

// DrawImage implements the [Canvas] interface.
//
// Under a pure integer translation, pixels are copied one-to-one.  Any
// other transformation resamples img using nearest-neighbour
// interpolation.
func (c *ImageCanvas) DrawImage(img image.Image, x, y int) {
	m := c.CTM
	sr := img.Bounds()
	if m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 &&
		m[4] == float64(int(m[4])) && m[5] == float64(int(m[5])) {
		at := image.Pt(x+int(m[4]), y+int(m[5]))
		dr := image.Rectangle{Min: at, Max: at.Add(sr.Size())}
		draw.Draw(c.Dst, dr, img, sr.Min, draw.Over)
		return
	}

	fx, fy := float64(x-sr.Min.X), float64(y-sr.Min.Y)
	aff := f64.Aff3{
		m[0], m[2], m[0]*fx + m[2]*fy + m[4],
		m[1], m[3], m[1]*fx + m[3]*fy + m[5],
	}
	draw.NearestNeighbor.Transform(c.Dst, aff, img, sr, draw.Over, nil)
}
