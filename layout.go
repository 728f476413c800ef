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

package brandpdf

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brandpdf/pdf"
)

// Layout fixes the geometry and fonts of the page.  All lengths are in PDF
// units (1/72 inch), with the origin in the bottom-left corner of the page.
type Layout struct {
	// MediaBox is the page size.
	MediaBox rect.Rect

	// Origin is the start of the title baseline.
	Origin vec.Vec2

	// Font is the resource name used in the content stream, and BaseFont
	// is the standard font it refers to.
	Font     pdf.Name
	BaseFont pdf.Name

	TitleSize float64
	StampSize float64
	BodySize  float64

	// Leading is the distance between consecutive baselines.
	Leading float64

	// TitleGap is extra space between the title and the timestamp line.
	TitleGap float64
}

// DefaultLayout places the text on a US Letter page, starting one inch from
// the left edge and 72 units below the top.
var DefaultLayout = &Layout{
	MediaBox:  rect.Rect{LLx: 0, LLy: 0, URx: 612, URy: 792},
	Origin:    vec.Vec2{X: 72, Y: 720},
	Font:      "F1",
	BaseFont:  "Helvetica",
	TitleSize: 24,
	StampSize: 10,
	BodySize:  12,
	Leading:   16,
	TitleGap:  8,
}

func (l *Layout) stampOrigin() vec.Vec2 {
	return l.Origin.Sub(vec.Vec2{Y: l.Leading + l.TitleGap})
}

func (l *Layout) bodyOrigin() vec.Vec2 {
	return l.stampOrigin().Sub(vec.Vec2{Y: l.Leading})
}
