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

// Package pdf implements the low-level object layer of a PDF file.
//
// A [Writer] writes numbered objects sequentially, records the byte offset of
// each object, and finishes the file with a cross-reference table and a
// trailer:
//
//	w, err := pdf.NewWriter(buf, pdf.V1_4)
//	if err != nil {
//		return err
//	}
//	catalog := w.Alloc()
//	... allocate and write the remaining objects ...
//	err = w.Put(catalog, pdf.Dict{"Type": pdf.Name("Catalog"), "Pages": pages})
//	if err != nil {
//		return err
//	}
//	return w.Close(catalog)
//
// A [Reader] parses such a file again, locating objects through the
// cross-reference table.  It only understands what the Writer produces:
// classic cross-reference tables, unfiltered streams and direct objects of
// the native types.
//
// The following types implement the [Object] interface:
//
//	Array
//	Dict
//	Integer
//	Name
//	Number
//	Real
//	Reference
//	Stream
//	String
package pdf
