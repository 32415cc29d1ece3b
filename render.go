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

// Package line draws aliased straight lines into raster images.
//
// Pixels are selected by the diamond-exit rule: every pixel has an
// inscribed diamond, and a pixel is drawn if the line segment leaves the
// pixel's diamond.  Consecutive segments of a path therefore share no
// pixels, and a segment drawn in reverse direction covers the same pixels
// up to the two endpoints.  All inclusion decisions use 34.30 fixed-point
// arithmetic (see package [seehuhn.de/go/line/fixed]), so results do not
// depend on floating-point rounding.
//
// Lines are drawn through a [Canvas], which provides the current
// transformation matrix.  Stroke widths above one pixel are drawn by
// replicating the line along its minor axis, and dash patterns follow the
// PDF conventions.
package line

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/line/testcases"
)

// RenderExample draws a test case into dst, in white.
// Dst is normally a black [image.Gray] of size tc.Width x tc.Height.
func RenderExample(tc testcases.TestCase, dst draw.Image) error {
	c := NewImageCanvas(dst)
	if tc.CTM != (matrix.Matrix{}) {
		c.SetTransform(tc.CTM)
	}

	s := &Stroker{
		Color:     color.White,
		Width:     tc.Stroke.Width,
		Dash:      tc.Stroke.Dash,
		DashPhase: tc.Stroke.DashPhase,
	}
	return s.Path(c, tc.Path)
}
