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

package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   path.Path     // the segments to draw, straight lines only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Stroke Stroke        // stroke parameters
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)

	// Want lists the pixels which must be painted, in any order.
	// All other pixels of the canvas must stay untouched.
	Want []image.Point
}

// Stroke holds the stroke parameters of a test case.
type Stroke struct {
	Width     float64   // rounded, values below 1 mean 1
	Dash      []float64 // dash pattern (nil for solid)
	DashPhase float64   // dash phase offset (>=0)
}

// segment builds a path consisting of a single line segment.
func segment(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		lineTo(yield, x2, y2)
	}
}

// polyline builds an open path through the given points.
// The coordinates are given as x1, y1, x2, y2, ...
func polyline(xy ...float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, xy[0], xy[1]) {
			return
		}
		for i := 2; i+1 < len(xy); i += 2 {
			if !lineTo(yield, xy[i], xy[i+1]) {
				return
			}
		}
	}
}

// polygon builds a closed path through the given points.
func polygon(xy ...float64) path.Path {
	open := polyline(xy...)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		done := false
		open(func(cmd path.Command, pts []vec.Vec2) bool {
			if !yield(cmd, pts) {
				done = true
				return false
			}
			return true
		})
		if !done {
			yield(path.CmdClose, nil)
		}
	}
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}})
}

// row lists the pixels (x0, y), ..., (x1, y).
func row(y, x0, x1 int) []image.Point {
	var res []image.Point
	for x := x0; x <= x1; x++ {
		res = append(res, image.Pt(x, y))
	}
	return res
}

// column lists the pixels (x, y0), ..., (x, y1).
func column(x, y0, y1 int) []image.Point {
	var res []image.Point
	for y := y0; y <= y1; y++ {
		res = append(res, image.Pt(x, y))
	}
	return res
}

// block lists all pixels with x0 <= x <= x1 and y0 <= y <= y1.
func block(x0, y0, x1, y1 int) []image.Point {
	var res []image.Point
	for y := y0; y <= y1; y++ {
		res = append(res, row(y, x0, x1)...)
	}
	return res
}

// pixels lists the pixels with the given coordinates x1, y1, x2, y2, ...
func pixels(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Pt(xy[i], xy[i+1]))
	}
	return res
}

// atRow lists the pixels (x, y) for all given x.
func atRow(y int, xs ...int) []image.Point {
	res := make([]image.Point, len(xs))
	for i, x := range xs {
		res[i] = image.Pt(x, y)
	}
	return res
}

func concat(lists ...[]image.Point) []image.Point {
	var res []image.Point
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}
