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

import "seehuhn.de/go/line/fixed"

// segment holds the per-call state for rasterizing one line segment.
// The endpoints are in device space, already shifted by (½, ½).
type segment struct {
	p1, p2 point // entry and exit point
	xMajor bool  // |Δx| >= |Δy|

	// a·x + b·y + c = 0 is the infinite line through p1 and p2.
	// The form is normalized on the major axis, so |a| <= 1 for x-major
	// lines and |b| <= 1 for y-major lines.
	a, b, c fixed.Fixed

	// length is the Euclidean length of the segment.  It is only computed
	// when arc lengths are needed.
	length fixed.Fixed
}

// newSegment prepares the rasterization state for the segment p1p2.
func newSegment(p1, p2 point, xMajor bool) *segment {
	s := &segment{p1: p1, p2: p2, xMajor: xMajor}

	dx, dy := p2.x-p1.x, p2.y-p1.y
	switch {
	case xMajor && dx != 0:
		s.a = fixed.Div(dy, dx)
		s.b = -fixed.One
		s.c = p1.y - fixed.Mul(s.a, p1.x)
	case !xMajor:
		s.a = -fixed.One
		s.b = fixed.Div(dx, dy)
		s.c = p1.x - fixed.Mul(s.b, p1.y)
	default: // zero length
		s.a = fixed.One
		s.b = 0
		s.c = p1.x
	}
	return s
}

// computeLength fills in the segment length.
func (s *segment) computeLength() {
	s.length = fixed.Sqrt(fixed.Sqr(s.p2.x-s.p1.x) + fixed.Sqr(s.p2.y-s.p1.y))
}

// rejectLimit is slightly above ¼, so that rounding errors in the line
// coefficients can only let extra points through to the exact test.
const rejectLimit = fixed.Quarter + fixed.One>>9

// rejects reports whether the point (x, y) is clearly further than ½ from
// the infinite line through the segment.  Such a point cannot be the center
// of a diamond which the line touches.  Points near distance ½ are never
// rejected.
func (s *segment) rejects(x, y fixed.Fixed) bool {
	var num, den fixed.Fixed
	switch {
	case s.b == 0: // vertical: x = c
		num, den = x-s.c, fixed.One
	case s.a == 0: // horizontal: y = c
		num, den = y-s.c, fixed.One
	default:
		num = fixed.Mul(s.a, x) + fixed.Mul(s.b, y) + s.c
		den = fixed.Sqr(s.a) + fixed.Sqr(s.b)
	}

	// den <= 2, so |num| >= 1 is always far enough away
	if num.Abs() >= fixed.One {
		return true
	}
	return fixed.Sqr(num) > fixed.Mul(rejectLimit, den)
}

// isHot reports whether the given diamond vertex belongs to the diamond.
// The south vertex always does, the east vertex only for y-major lines.
func (s *segment) isHot(v vertex) bool {
	return v == south || (v == east && !s.xMajor)
}

// inDiamond reports whether p lies inside the diamond d.  The edges
// leading into S (and E for y-major lines) are included, the edges
// leading into N and W are excluded.
func (s *segment) inDiamond(d *diamond, p point) bool {
	if p == d[south] || (!s.xMajor && p == d[east]) {
		return true
	}
	for i := range diamondEdges {
		e, _, _ := d.edge(i)
		if !isLeft(e, p, i >= 2) {
			return false
		}
	}
	return true
}

// exits reports whether the pixel with top-left corner (x, y) is part of
// the rasterized segment.  This implements the diamond-exit rule: the
// pixel is drawn if the segment, oriented from p1 to p2, leaves the
// pixel's diamond.
func (s *segment) exits(x, y int) bool {
	cx := fixed.FromInt(x) + fixed.Half
	cy := fixed.FromInt(y) + fixed.Half
	if s.rejects(cx, cy) {
		return false
	}
	return s.leavesDiamond(x, y)
}

// leavesDiamond is the exact form of exits, without the distance check.
func (s *segment) leavesDiamond(x, y int) bool {
	d := pixelDiamond(x, y)

	// A segment which ends inside the diamond does not exit it.  Otherwise,
	// a segment which starts inside the diamond must exit it.
	if s.inDiamond(&d, s.p2) {
		return false
	}
	if s.inDiamond(&d, s.p1) {
		return true
	}

	// The segment passes through the diamond if it crosses a hot vertex or
	// two different edges.
	count := 0
	for i := range diamondEdges {
		e, from, to := d.edge(i)
		is, ok := findIntersection(e, s.p1, s.p2)
		if !ok {
			continue
		}
		if !is.onSegment() {
			continue
		}
		if is.tEdge == 0 && s.isHot(from) {
			return true
		}
		if is.tEdge == is.d && s.isHot(to) {
			return true
		}
		if is.onEdge() {
			count++
			if count == 2 {
				return true
			}
		}
	}
	return false
}

// arcLength returns the signed distance from p1 to the projection of the
// center of pixel (x, y) onto the line.
func (s *segment) arcLength(x, y int) fixed.Fixed {
	if s.length == 0 {
		return 0
	}
	cx := fixed.FromInt(x) + fixed.Half
	cy := fixed.FromInt(y) + fixed.Half
	num := fixed.Mul(cx-s.p1.x, s.p2.x-s.p1.x) + fixed.Mul(cy-s.p1.y, s.p2.y-s.p1.y)
	return fixed.Div(num, s.length)
}
