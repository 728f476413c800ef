// seehuhn.de/go/brandpdf - a single-page PDF branding sheet generator
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

// Package float rounds numbers for use in content streams.
package float

import (
	"math"
	"strconv"
)

// Round rounds x to the given number of decimal digits.  Negative zero is
// mapped to zero.
func Round(x float64, digits int) float64 {
	s := strconv.FormatFloat(x, 'f', digits, 64)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// FormatFloat only produces valid numbers, except for Inf and NaN
		return x
	}
	if y == 0 {
		return 0
	}
	return y
}

// IsInteger reports whether x has no fractional part.
func IsInteger(x float64) bool {
	return !math.IsInf(x, 0) && x == math.Trunc(x)
}
