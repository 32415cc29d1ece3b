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
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/line/fixed"
)

// Stroker draws aliased straight lines using the diamond-exit rule.
//
// The fields are read but never modified while drawing, so a single
// Stroker can be used concurrently to draw onto different canvases.
type Stroker struct {
	// Color is the stroke color.  Must not be nil.
	Color color.Color

	// Width is the stroke width in device pixels.  It is rounded to the
	// nearest integer, and values below 1 draw one pixel wide lines.
	// Must not be negative.
	Width float64

	// Dash specifies alternating on/off lengths in device pixels.
	// Nil means solid.  See [Sampler.SetDash] for the exact rules.
	Dash []float64

	// DashPhase is the offset into the dash pattern at the start of each
	// segment.  Must not be negative.
	DashPhase float64
}

// NewStroker returns a Stroker for solid, one pixel wide, black lines.
func NewStroker() *Stroker {
	return &Stroker{
		Color: color.Black,
		Width: 1,
	}
}

// RenderSegment draws the segment from (x1, y1) to (x2, y2) onto c.
// See [Stroker] for the meaning of the remaining arguments.
func RenderSegment(c Canvas, x1, y1, x2, y2 float64, col color.Color, width float64, dash []float64, dashPhase float64) error {
	s := &Stroker{Color: col, Width: width, Dash: dash, DashPhase: dashPhase}
	return s.Segment(c, x1, y1, x2, y2)
}

// RenderPath draws all line segments of p onto c.
// See [Stroker] for the meaning of the remaining arguments.
func RenderPath(c Canvas, p path.Path, col color.Color, width float64, dash []float64, dashPhase float64) error {
	s := &Stroker{Color: col, Width: width, Dash: dash, DashPhase: dashPhase}
	return s.Path(c, p)
}

// Segment draws the segment from (x1, y1) to (x2, y2), given in user
// space, onto c.
//
// The first endpoint is the entry point and the second one the exit point
// of the segment.  The pixel containing the exit point is not drawn, so
// that consecutive segments of a polyline do not overlap.
func (s *Stroker) Segment(c Canvas, x1, y1, x2, y2 float64) error {
	width, err := s.checkWidth()
	if err != nil {
		return err
	}
	smp, err := s.newSampler()
	if err != nil {
		return err
	}

	ctm := c.Transform()
	a := transform(ctm, vec.Vec2{X: x1, Y: y1})
	b := transform(ctm, vec.Vec2{X: x2, Y: y2})
	if err := checkDevice(a, b); err != nil {
		return err
	}

	c.SetTransform(matrix.Identity)
	defer c.SetTransform(ctm)
	return rasterize(c, smp, a, b, width)
}

// Path draws every segment of p onto c.
//
// Only straight lines are supported.  The path is checked completely
// before drawing starts, so a path containing a curve draws nothing.
// Each segment starts at the beginning of the dash pattern.
func (s *Stroker) Path(c Canvas, p path.Path) error {
	segs, err := lineSegments(p)
	if err != nil {
		return err
	}
	width, err := s.checkWidth()
	if err != nil {
		return err
	}
	smp, err := s.newSampler()
	if err != nil {
		return err
	}

	ctm := c.Transform()
	dev := make([]vec.Vec2, len(segs))
	for i, pt := range segs {
		dev[i] = transform(ctm, pt)
	}
	for i := 0; i < len(dev); i += 2 {
		if err := checkDevice(dev[i], dev[i+1]); err != nil {
			return err
		}
	}

	c.SetTransform(matrix.Identity)
	defer c.SetTransform(ctm)

	Logger().Debug("line: path", "segments", len(dev)/2)
	for i := 0; i < len(dev); i += 2 {
		if err := rasterize(c, smp, dev[i], dev[i+1], width); err != nil {
			return err
		}
	}
	return nil
}

// checkWidth validates the stroke width and returns the number of pixel
// rows (or columns) to draw.
func (s *Stroker) checkWidth() (int, error) {
	if s.Width < 0 || math.IsNaN(s.Width) || math.IsInf(s.Width, 0) {
		return 0, fmt.Errorf("stroke width %g: %w", s.Width, ErrInvalidArgument)
	}
	return max(int(math.Round(s.Width)), 1), nil
}

// newSampler returns a sampler configured with the stroke parameters.
func (s *Stroker) newSampler() (*Sampler, error) {
	smp := NewSampler()
	if err := smp.SetColor(s.Color); err != nil {
		return nil, err
	}
	if err := smp.SetDash(s.Dash); err != nil {
		return nil, err
	}
	if err := smp.SetDashPhase(s.DashPhase); err != nil {
		return nil, err
	}
	return smp, nil
}

// lineSegments converts a path into a flat list of segment endpoints.
// Entries 2i and 2i+1 are the start and end of segment i.
func lineSegments(p path.Path) ([]vec.Vec2, error) {
	var res []vec.Vec2
	var current, start vec.Vec2
	hasCurrent := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
			hasCurrent = true

		case path.CmdLineTo:
			if !hasCurrent {
				return nil, fmt.Errorf("LineTo without current point: %w", ErrInvalidArgument)
			}
			res = append(res, current, pts[0])
			current = pts[0]

		case path.CmdClose:
			if !hasCurrent {
				return nil, fmt.Errorf("ClosePath without current point: %w", ErrInvalidArgument)
			}
			if current != start {
				res = append(res, current, start)
			}
			current = start

		default:
			return nil, fmt.Errorf("path command %v is not a straight line: %w", cmd, ErrInvalidArgument)
		}
	}
	return res, nil
}

// transform maps a point from user space to device space.
func transform(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// maxCoord bounds device coordinates, so that all intermediate fixed-point
// products fit into 64 bits.
const maxCoord = 1 << 16

func checkDevice(a, b vec.Vec2) error {
	for _, v := range []float64{a.X, a.Y, b.X, b.Y} {
		if !(math.Abs(v) < maxCoord) {
			return fmt.Errorf("device coordinate %g out of range: %w", v, ErrInvalidArgument)
		}
	}
	return nil
}

// rasterize draws the segment from a to b, both in device space.
// The canvas must have the identity transformation installed.
func rasterize(c Canvas, smp *Sampler, a, b vec.Vec2, width int) error {
	x1, y1, x2, y2 := a.X, a.Y, b.X, b.Y
	xMajor := math.Abs(x2-x1) >= math.Abs(y2-y1)

	// Move the line by half the stroke width against the minor axis.  The
	// copies are then drawn at offsets 0, ..., width-1 along the minor axis.
	shift := float64((width - 1) / 2)
	if xMajor {
		y1 -= shift
		y2 -= shift
	} else {
		x1 -= shift
		x2 -= shift
	}

	bbox := rect.Rect{
		LLx: min(x1, x2),
		LLy: min(y1, y2),
		URx: max(x1, x2),
		URy: max(y1, y2),
	}
	posX := int(math.Floor(bbox.LLx))
	posY := int(math.Floor(bbox.LLy))

	// core contains all pixels which can pass the diamond test, area
	// additionally contains the copies for wide lines.
	core := image.Rect(posX, posY, int(math.Ceil(bbox.URx))+1, int(math.Ceil(bbox.URy))+1)
	area := core
	if xMajor {
		area.Max.Y += width - 1
	} else {
		area.Max.X += width - 1
	}
	if bc, ok := c.(boundedCanvas); ok {
		area = area.Intersect(bc.Bounds())
		// Keep pixels whose copies reach into the visible area.
		reach := area
		if xMajor {
			reach.Min.Y -= width - 1
		} else {
			reach.Min.X -= width - 1
		}
		core = core.Intersect(reach)
	}
	if area.Empty() || core.Empty() {
		return nil
	}

	// Shift the endpoints by half a pixel, so that a line on the boundary
	// between two pixel rows selects the lower row.
	p1 := point{fixed.FromFloat(x1 + 0.5), fixed.FromFloat(y1 + 0.5)}
	p2 := point{fixed.FromFloat(x2 + 0.5), fixed.FromFloat(y2 + 0.5)}
	seg := newSegment(p1, p2, xMajor)
	dashed := smp.Dashed()
	if dashed {
		seg.computeLength()
	}

	if err := smp.SetBufferDimensions(area.Dx(), area.Dy()); err != nil {
		return err
	}
	count := 0
	for y := core.Min.Y; y < core.Max.Y; y++ {
		for x := core.Min.X; x < core.Max.X; x++ {
			if !seg.exits(x, y) {
				continue
			}
			count++
			for k := range width {
				px, py := x, y+k
				if !xMajor {
					px, py = x+k, y
				}
				var arc fixed.Fixed
				if dashed {
					arc = seg.arcLength(px, py)
				}
				smp.Sample(px-area.Min.X, py-area.Min.Y, arc)
			}
		}
	}

	Logger().Debug("line: segment",
		"from", a, "to", b,
		"xMajor", xMajor,
		"bbox", area,
		"pixels", count)

	return smp.Blit(c, area.Min.X, area.Min.Y)
}
