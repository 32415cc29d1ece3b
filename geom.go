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

// point is a point in device space, with fixed-point coordinates.
type point struct {
	x, y fixed.Fixed
}

// edge is an oriented line segment from p0 to p1.
// Points with negative cross product lie on the left side.  Since the
// y-axis points down, the interior of a counter-clockwise polygon is on
// the left of every edge.
type edge struct {
	p0, p1 point
}

// cross returns the orientation of q relative to e:
// negative if q is strictly left of e, zero if q is on the line through e,
// positive if q is strictly right of e.
func cross(e edge, q point) fixed.Fixed {
	return fixed.Mul(e.p1.x-e.p0.x, q.y-e.p0.y) - fixed.Mul(e.p1.y-e.p0.y, q.x-e.p0.x)
}

// isLeft reports whether q lies strictly on the left side of e.  If strict
// is false, points on the open interior of the edge are accepted as well.
// The interior test uses the x-parameter along the edge, which is enough
// for the diagonal edges of a diamond.
func isLeft(e edge, q point, strict bool) bool {
	v := cross(e, q)
	if v < 0 {
		return true
	}
	if strict || v != 0 {
		return false
	}

	num := q.x - e.p0.x
	den := e.p1.x - e.p0.x
	if den < 0 {
		return num < 0 && num > den
	}
	return num > 0 && num < den
}

// intersection describes where a line segment P1P2 meets the line through
// an edge.  The intersection point is P1 + tSeg/d·(P2-P1) on the segment
// and p0 + tEdge/d·(p1-p0) on the edge.  The ratios are never evaluated;
// all comparisons are done on the scaled values.
type intersection struct {
	d     fixed.Fixed // signed denominator, never zero
	tSeg  fixed.Fixed
	tEdge fixed.Fixed
}

// findIntersection intersects the segment p1p2 with the edge e.
// The second return value is false if the two are parallel.
func findIntersection(e edge, p1, p2 point) (intersection, bool) {
	sdx, sdy := p2.x-p1.x, p2.y-p1.y
	edx, edy := e.p1.x-e.p0.x, e.p1.y-e.p0.y

	d := fixed.Mul(sdx, edy) - fixed.Mul(sdy, edx)
	if d == 0 {
		return intersection{}, false
	}

	rx, ry := p1.x-e.p0.x, p1.y-e.p0.y
	return intersection{
		d:     d,
		tSeg:  fixed.Mul(ry, edx) - fixed.Mul(rx, edy),
		tEdge: fixed.Mul(ry, sdx) - fixed.Mul(rx, sdy),
	}, true
}

// onEdge reports whether the intersection lies on the half-open edge,
// including the start point and excluding the end point.
func (is intersection) onEdge() bool {
	if is.d > 0 {
		return is.tEdge >= 0 && is.tEdge < is.d
	}
	return is.tEdge <= 0 && is.tEdge > is.d
}

// onSegment reports whether the intersection lies on the closed segment.
func (is intersection) onSegment() bool {
	if is.d > 0 {
		return is.tSeg >= 0 && is.tSeg <= is.d
	}
	return is.tSeg <= 0 && is.tSeg >= is.d
}

// vertex identifies one corner of a diamond.
type vertex int

const (
	west vertex = iota
	east
	north
	south
)

// diamondEdges lists the edges of a diamond in counter-clockwise order
// (on screen, with y pointing down): W→S, S→E, E→N, N→W.
var diamondEdges = [4][2]vertex{
	{west, south},
	{south, east},
	{east, north},
	{north, west},
}

// diamond is the square rotated by 45° which is inscribed in a pixel.
// Its vertices lie at distance ½ from the pixel center.
type diamond [4]point

// pixelDiamond returns the diamond of the pixel with top-left corner (x, y).
func pixelDiamond(x, y int) diamond {
	cx := fixed.FromInt(x) + fixed.Half
	cy := fixed.FromInt(y) + fixed.Half

	var d diamond
	d[west] = point{cx - fixed.Half, cy}
	d[east] = point{cx + fixed.Half, cy}
	d[north] = point{cx, cy - fixed.Half}
	d[south] = point{cx, cy + fixed.Half}
	return d
}

// edge returns the i-th edge of the diamond, together with the vertices
// it connects.
func (d *diamond) edge(i int) (edge, vertex, vertex) {
	from, to := diamondEdges[i][0], diamondEdges[i][1]
	return edge{d[from], d[to]}, from, to
}
