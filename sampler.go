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
	"image/color"

	"seehuhn.de/go/line/fixed"
)

// Sampler collects the pixels of a segment in an off-screen buffer and
// applies the dash pattern.  The zero value is not usable; use
// [NewSampler].
type Sampler struct {
	color uint32

	// dash holds the on/off lengths, doubled if the user gave an odd
	// number of entries.  Nil means solid.
	dash   []fixed.Fixed
	period fixed.Fixed
	phase  fixed.Fixed

	buf *Buffer
}

// NewSampler returns a sampler for solid, opaque black lines.
// Before any pixels can be sampled, SetBufferDimensions must be called.
func NewSampler() *Sampler {
	return &Sampler{color: 0xFF000000}
}

// SetColor sets the stroke color.
func (s *Sampler) SetColor(c color.Color) error {
	if c == nil {
		return fmt.Errorf("stroke color is nil: %w", ErrInvalidArgument)
	}
	s.color = toARGB(c)
	return nil
}

// SetDash sets the dash pattern.  Entries alternate between "on" and "off"
// lengths, starting with "on".  A pattern with an odd number of entries is
// repeated once, so that [5 3 8] behaves like [5 3 8 5 3 8].
//
// A nil slice selects solid lines.  An empty slice, negative entries,
// entries of 2^16 or more, and patterns where all entries are zero are
// rejected.
func (s *Sampler) SetDash(dash []float64) error {
	if dash == nil {
		s.dash = nil
		s.period = 0
		return nil
	}
	if len(dash) == 0 {
		return fmt.Errorf("dash array is empty: %w", ErrInvalidArgument)
	}

	n := len(dash)
	if n%2 == 1 {
		n *= 2
	}
	pattern := make([]fixed.Fixed, n)
	var period fixed.Fixed
	for i := range n {
		d := dash[i%len(dash)]
		if !(d >= 0 && d < maxCoord) {
			return fmt.Errorf("dash length %g at index %d: %w", d, i%len(dash), ErrInvalidArgument)
		}
		pattern[i] = fixed.FromFloat(d)
		period += pattern[i]
	}
	if period <= 0 {
		return fmt.Errorf("all dash lengths are zero: %w", ErrInvalidArgument)
	}

	s.dash = pattern
	s.period = period
	return nil
}

// SetDashPhase sets the offset into the dash pattern at which each
// segment starts.  The phase must be non-negative and less than 2^16.
func (s *Sampler) SetDashPhase(phase float64) error {
	if !(phase >= 0 && phase < maxCoord) {
		return fmt.Errorf("dash phase %g: %w", phase, ErrInvalidArgument)
	}
	s.phase = fixed.FromFloat(phase)
	return nil
}

// Dashed reports whether a dash pattern is set.
func (s *Sampler) Dashed() bool {
	return s.dash != nil
}

// SetBufferDimensions allocates a new, fully transparent buffer.
func (s *Sampler) SetBufferDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("buffer size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	s.buf = NewBuffer(width, height)
	return nil
}

// Buffer returns the current buffer, or nil if SetBufferDimensions has not
// been called yet.
func (s *Sampler) Buffer() *Buffer {
	return s.buf
}

// Sample paints the buffer pixel (x, y) if the arc length lies in a
// visible part of the dash pattern.  Samples outside the buffer, or before
// the buffer is allocated, are discarded.
func (s *Sampler) Sample(x, y int, arcLength fixed.Fixed) {
	if s.buf == nil {
		return
	}
	if !s.BelongsToVisibleDash(arcLength + s.phase) {
		return
	}
	s.buf.SetARGB(x, y, s.color)
}

// BelongsToVisibleDash reports whether the given position along the
// pattern falls into an "on" interval.  Intervals are half-open, and the
// pattern repeats in both directions, so negative positions are allowed.
func (s *Sampler) BelongsToVisibleDash(pos fixed.Fixed) bool {
	if s.dash == nil {
		return true
	}

	pos %= s.period
	if pos < 0 {
		pos += s.period
	}

	var lower fixed.Fixed
	for i, d := range s.dash {
		if pos < lower+d {
			return i%2 == 0
		}
		lower += d
	}
	return false
}

// Blit draws the buffer onto the canvas, with the top-left buffer pixel at
// (x, y).  The canvas transformation is used as is; callers normally
// install the identity first.
func (s *Sampler) Blit(c Canvas, x, y int) error {
	if s.buf == nil {
		return fmt.Errorf("buffer dimensions have not been set: %w", ErrIllegalOperation)
	}
	c.DrawImage(s.buf, x, y)
	return nil
}
