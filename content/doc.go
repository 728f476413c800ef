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

// Package content constructs and reads PDF content streams for text.
//
// The [Builder] type offers methods corresponding to the PDF text
// operators.  Errors are reported using the Builder.Err field.  Once an
// error occurs, all methods return immediately without doing anything.
//
// The following code places a heading and a block of body text:
//
//	b := content.New()
//	b.TextLine("F1", 24, vec.Vec2{X: 72, Y: 720}, content.WinAnsiEncode("Title"))
//	b.TextBlock("F1", 12, 16, vec.Vec2{X: 72, Y: 680}, lines)
//	stream, err := b.Harvest()
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := stream.Bytes()
//
// [ReadStream] and [ForAllText] go the other way and recover the text shown
// on a page.
package content
