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

import "errors"

// Errors returned by the renderer.  The returned errors wrap one of these
// values and describe which condition was violated; use [errors.Is] to
// test for them.
var (
	// ErrInvalidArgument indicates a malformed stroke parameter or path.
	ErrInvalidArgument = errors.New("line: invalid argument")

	// ErrIllegalOperation indicates a call made in the wrong state.
	ErrIllegalOperation = errors.New("line: illegal operation")
)
