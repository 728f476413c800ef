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

package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/brandpdf/pdf"
)

// WinAnsiEncode encodes s for a simple font with /WinAnsiEncoding.
// Characters which have no code in this encoding are replaced by '?'.
//
// WinAnsiEncoding agrees with the Windows-1252 code page for all
// characters which are defined in both.
func WinAnsiEncode(s string) pdf.String {
	res := make(pdf.String, 0, len(s))
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		res = append(res, c)
	}
	return res
}

// makeTextDecoder returns a function which maps strings shown using the
// given font to unicode.  Only simple fonts are supported.
func makeTextDecoder(r *pdf.Reader, ref pdf.Object) (func(pdf.String) string, error) {
	font, err := r.GetDict(ref)
	if err != nil {
		return nil, err
	}
	if font["Type"] != pdf.Name("Font") {
		return nil, fmt.Errorf("font: expected /Type /Font, got %v", font["Type"])
	}
	switch font["Subtype"] {
	case pdf.Name("Type1"), pdf.Name("TrueType"):
		// simple fonts, one byte per character
	default:
		return nil, fmt.Errorf("font: unsupported subtype %v", font["Subtype"])
	}

	var cm *charmap.Charmap
	switch font["Encoding"] {
	case pdf.Name("WinAnsiEncoding"):
		cm = charmap.Windows1252
	case pdf.Name("MacRomanEncoding"):
		cm = charmap.Macintosh
	case nil:
		// The built-in encoding of the standard Latin fonts agrees with
		// ISO 8859-1 for the printable ASCII range.
		cm = charmap.ISO8859_1
	default:
		return nil, fmt.Errorf("font: unsupported encoding %v", font["Encoding"])
	}

	decode := func(s pdf.String) string {
		b := &strings.Builder{}
		for _, c := range s {
			b.WriteRune(cm.DecodeByte(c))
		}
		return b.String()
	}
	return decode, nil
}
