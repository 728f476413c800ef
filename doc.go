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

// Package brandpdf generates a one-page PDF branding sheet.
//
// The document contains a title, a timestamp line and a block of body
// text, set in the standard Helvetica font.  The text is given by a [Page]
// and its placement by a [Layout].  [Generate] returns the complete file
// as a byte slice, and [WriteFile] stores it on disk:
//
//	data, err := brandpdf.Generate(brandpdf.DefaultPage, nil, time.Now())
//	if err != nil {
//		return err
//	}
//	err = brandpdf.WriteFile(brandpdf.DefaultFileName, data)
//
// The generated files can be read back using [seehuhn.de/go/brandpdf/pdf.Open]
// and [ReadText].
package brandpdf
