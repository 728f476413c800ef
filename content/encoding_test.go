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
	"testing"

	"seehuhn.de/go/brandpdf/pdf"
)

func TestWinAnsiEncode(t *testing.T) {
	cases := []struct {
		in  string
		out pdf.String
	}{
		{"", pdf.String{}},
		{"hello", pdf.String("hello")},
		{"Robbie McCutcheon — Frontend", pdf.String("Robbie McCutcheon \x97 Frontend")},
		{"café", pdf.String("caf\xe9")},
		{"€5", pdf.String("\x805")},
		{"中", pdf.String("?")},
	}
	for _, test := range cases {
		got := WinAnsiEncode(test.in)
		if string(got) != string(test.out) {
			t.Errorf("WinAnsiEncode(%q) = %q, want %q", test.in, got, test.out)
		}
	}
}
