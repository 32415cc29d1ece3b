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

// Package fixed implements signed 34.30 fixed-point numbers.
//
// A Fixed value v represents the rational number v / 2^30.  The integer
// part has room for coordinates up to about ±8.5e9, and products stay exact
// as long as the integer parts of the two factors multiply to less than
// 2^33.  Callers are responsible for keeping values in range; no operation
// saturates.
package fixed

import (
	"math"
	"math/bits"
	"strconv"
)

// Fixed is a signed fixed-point number with FracBits fractional bits.
type Fixed int64

// FracBits is the number of fractional bits.
const FracBits = 30

// Frequently used constants.
const (
	One     Fixed = 1 << FracBits
	Half    Fixed = One >> 1
	Quarter Fixed = One >> 2

	fracMask = One - 1
)

// FromFloat converts x to fixed point, truncating toward zero.
func FromFloat(x float64) Fixed {
	return Fixed(x * float64(One))
}

// FromInt converts an integer to fixed point.
func FromInt(n int) Fixed {
	return Fixed(n) << FracBits
}

// Float returns the value of a as a float64.
// The conversion is exact whenever |a| < 2^53.
func (a Fixed) Float() float64 {
	return float64(a) / float64(One)
}

// Floor returns the largest integer not greater than a.
func (a Fixed) Floor() int {
	return int(a >> FracBits)
}

// Abs returns the absolute value of a.
func (a Fixed) Abs() Fixed {
	if a < 0 {
		return -a
	}
	return a
}

// String formats a in decimal notation.
func (a Fixed) String() string {
	return strconv.FormatFloat(a.Float(), 'g', -1, 64)
}

// Mul returns a·b, rounded toward -inf.
//
// Both operands are split into integer and fractional parts so that no
// intermediate product exceeds 64 bits:
//
//	a·b = (ia·ib)·2^F + ia·fb + ib·fa + (fa·fb)/2^F
//
// The fractional parts are non-negative, so the last term is the only one
// which is rounded.
func Mul(a, b Fixed) Fixed {
	ia, fa := a>>FracBits, a&fracMask
	ib, fb := b>>FracBits, b&fracMask
	return (ia*ib)<<FracBits + ia*fb + ib*fa + (fa*fb)>>FracBits
}

// Sqr returns a·a.
func Sqr(a Fixed) Fixed {
	return Mul(a, a)
}

// Div returns a/b, truncated toward zero.
//
// The dividend is widened to 128 bits before shifting, so no fractional
// bits are lost for small or negative a.  Like integer division, Div
// panics if b is zero; it also panics if the quotient does not fit into
// a Fixed.
func Div(a, b Fixed) Fixed {
	if b == 0 {
		panic("fixed: division by zero")
	}
	neg := (a < 0) != (b < 0)
	ua := uint64(a.Abs())
	ub := uint64(b.Abs())

	hi := ua >> (64 - FracBits)
	lo := ua << FracBits
	if hi >= ub {
		panic("fixed: division overflow")
	}
	q, _ := bits.Div64(hi, lo, ub)
	if q > math.MaxInt64 {
		panic("fixed: division overflow")
	}
	if neg {
		return -Fixed(q)
	}
	return Fixed(q)
}

// Sqrt returns the square root of a, which must be non-negative.
//
// The computation goes through float64.  This is only used for arc
// lengths along a line, never for pixel inclusion decisions.
func Sqrt(a Fixed) Fixed {
	if a < 0 {
		panic("fixed: square root of negative number")
	}
	return FromFloat(math.Sqrt(a.Float()))
}
