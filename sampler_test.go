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
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/line/fixed"
)

func TestSetDashErrors(t *testing.T) {
	cases := []struct {
		name string
		dash []float64
	}{
		{"empty", []float64{}},
		{"negative", []float64{2, -1}},
		{"all zero", []float64{0, 0}},
		{"single zero", []float64{0}},
		{"NaN", []float64{math.NaN(), 1}},
		{"infinite", []float64{1, math.Inf(1)}},
		{"too long", []float64{1e30, 1}},
		{"off too long", []float64{1, 65536}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSampler()
			err := s.SetDash(c.dash)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
			if s.Dashed() {
				t.Error("rejected pattern was installed")
			}
		})
	}

	s := NewSampler()
	if err := s.SetDash(nil); err != nil {
		t.Errorf("nil pattern: %v", err)
	}
	if s.Dashed() {
		t.Error("nil pattern is dashed")
	}

	// the longest allowed entries must not overflow the period
	if err := s.SetDash([]float64{65535.5, 65535.5, 65535.5}); err != nil {
		t.Fatalf("long pattern: %v", err)
	}
	if s.period <= 0 {
		t.Errorf("period = %v", s.period)
	}
}

func TestSetDashPhaseErrors(t *testing.T) {
	s := NewSampler()
	for _, phase := range []float64{-1, -0.001, math.NaN(), math.Inf(1), 65536, 1e30} {
		if err := s.SetDashPhase(phase); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("phase %g: got %v", phase, err)
		}
	}
	if err := s.SetDashPhase(0); err != nil {
		t.Errorf("phase 0: %v", err)
	}
	if err := s.SetDashPhase(65535.5); err != nil {
		t.Errorf("phase 65535.5: %v", err)
	}
}

func TestSetColorNil(t *testing.T) {
	s := NewSampler()
	if err := s.SetColor(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v", err)
	}
}

func TestBelongsToVisibleDash(t *testing.T) {
	cases := []struct {
		name string
		dash []float64
		pos  float64
		want bool
	}{
		{"solid", nil, 123.4, true},
		{"start", []float64{2, 2}, 0, true},
		{"inside on", []float64{2, 2}, 1.999, true},
		{"on/off boundary", []float64{2, 2}, 2, false},
		{"inside off", []float64{2, 2}, 3.5, false},
		{"next period", []float64{2, 2}, 4, true},
		{"negative off", []float64{2, 2}, -1, false},
		{"negative on", []float64{2, 2}, -3, true},
		{"odd doubled on", []float64{3, 1, 1}, 4, true},
		{"odd doubled off", []float64{3, 1, 1}, 5, false},
		{"odd second half", []float64{3, 1, 1}, 8.5, true},
		{"odd wraps", []float64{3, 1, 1}, 10, true},
		{"zero length on", []float64{0, 1, 2, 1}, 0, false},
		{"after zero length", []float64{0, 1, 2, 1}, 1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSampler()
			if err := s.SetDash(c.dash); err != nil {
				t.Fatal(err)
			}
			if got := s.BelongsToVisibleDash(fixed.FromFloat(c.pos)); got != c.want {
				t.Errorf("pos %g: got %t, want %t", c.pos, got, c.want)
			}
		})
	}
}

func TestSample(t *testing.T) {
	s := NewSampler()
	if err := s.SetColor(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDash([]float64{2, 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDashPhase(2); err != nil {
		t.Fatal(err)
	}

	// no buffer yet
	s.Sample(0, 0, 0)

	if err := s.SetBufferDimensions(3, 1); err != nil {
		t.Fatal(err)
	}
	s.Sample(0, 0, 0)               // phase 2 is in a gap
	s.Sample(1, 0, fixed.FromInt(2)) // position 4 starts the next dash
	s.Sample(5, 0, fixed.FromInt(2)) // outside the buffer

	buf := s.Buffer()
	if got := buf.ARGBAt(0, 0); got != 0 {
		t.Errorf("pixel 0 = %08x, want 0", got)
	}
	if got := buf.ARGBAt(1, 0); got != 0xFF123456 {
		t.Errorf("pixel 1 = %08x, want ff123456", got)
	}
	want := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}
	if got := buf.At(1, 0); got != want {
		t.Errorf("At(1, 0) = %v, want %v", got, want)
	}
}

func TestSetBufferDimensions(t *testing.T) {
	s := NewSampler()
	if err := s.SetBufferDimensions(-1, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v", err)
	}
	if err := s.SetBufferDimensions(4, 3); err != nil {
		t.Fatal(err)
	}
	if got := s.Buffer().Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v", got)
	}
}

func TestBlitWithoutBuffer(t *testing.T) {
	s := NewSampler()
	c := &recordingCanvas{ctm: matrix.Identity}
	if err := s.Blit(c, 0, 0); !errors.Is(err, ErrIllegalOperation) {
		t.Errorf("got %v, want ErrIllegalOperation", err)
	}
	if len(c.calls) != 0 {
		t.Errorf("%d images drawn", len(c.calls))
	}
}

func TestBlit(t *testing.T) {
	s := NewSampler()
	if err := s.SetColor(color.White); err != nil {
		t.Fatal(err)
	}
	if err := s.SetBufferDimensions(2, 2); err != nil {
		t.Fatal(err)
	}
	s.Sample(1, 1, 0)

	dst := image.NewGray(image.Rect(0, 0, 4, 4))
	c := NewImageCanvas(dst)
	if err := s.Blit(c, 2, 1); err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			want := uint8(0)
			if x == 3 && y == 2 {
				want = 255
			}
			if got := dst.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetARGB(-1, 0, 0xFFFFFFFF)
	b.SetARGB(2, 1, 0xFFFFFFFF)
	for _, v := range b.Pix {
		if v != 0 {
			t.Fatal("out of bounds write changed the buffer")
		}
	}
	if b.ARGBAt(5, 5) != 0 {
		t.Error("out of bounds read is not transparent")
	}
}
