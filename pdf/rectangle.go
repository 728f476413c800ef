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

package pdf

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Rectangle converts a rectangle into the four-element array form used
// for page boxes.  Coordinates are rounded to two decimal places.
func Rectangle(r rect.Rect) Array {
	res := make(Array, 0, 4)
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		res = append(res, Number(math.Round(100*x)/100))
	}
	return res
}

// AsRectangle converts a four-element array of numbers back into a
// rectangle.  The corners are normalised so that LLx <= URx and LLy <= URy.
func AsRectangle(a Array) (rect.Rect, error) {
	if len(a) != 4 {
		return rect.Rect{}, errNoRectangle
	}
	var v [4]float64
	for i, obj := range a {
		switch x := obj.(type) {
		case Integer:
			v[i] = float64(x)
		case Real:
			v[i] = float64(x)
		case Number:
			v[i] = float64(x)
		default:
			return rect.Rect{}, errNoRectangle
		}
	}
	return rect.Rect{
		LLx: math.Min(v[0], v[2]),
		LLy: math.Min(v[1], v[3]),
		URx: math.Max(v[0], v[2]),
		URy: math.Max(v[1], v[3]),
	}, nil
}

var errNoRectangle = errors.New("not a rectangle")
