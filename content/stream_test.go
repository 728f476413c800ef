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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brandpdf/pdf"
)

func TestReadStream(t *testing.T) {
	in := `BT
/F1 12 Tf % select the font
72 680.5 Td
(A \(B\) C\\D) Tj
<414243> Tj
[(x) -120 (y)] TJ
0 -16 Td
ET`
	stream, err := ReadStream([]byte(in))
	if err != nil {
		t.Fatal(err)
	}

	want := Stream{
		{Name: OpTextBegin},
		{Name: OpTextSetFont, Args: []pdf.Object{pdf.Name("F1"), pdf.Integer(12)}},
		{Name: OpTextMoveOffset, Args: []pdf.Object{pdf.Integer(72), pdf.Real(680.5)}},
		{Name: OpTextShow, Args: []pdf.Object{pdf.String(`A (B) C\D`)}},
		{Name: OpTextShow, Args: []pdf.Object{pdf.String("ABC")}},
		{Name: OpTextShowArray, Args: []pdf.Object{
			pdf.Array{pdf.String("x"), pdf.Integer(-120), pdf.String("y")},
		}},
		{Name: OpTextMoveOffset, Args: []pdf.Object{pdf.Integer(0), pdf.Integer(-16)}},
		{Name: OpTextEnd},
	}
	if d := cmp.Diff(want, stream); d != "" {
		t.Errorf("wrong operators (-want +got):\n%s", d)
	}
}

func TestStreamRoundTrip(t *testing.T) {
	lines := []pdf.String{
		pdf.String("Selected highlights:"),
		pdf.String(""),
		pdf.String("(nested (parens)) and \\backslash"),
		WinAnsiEncode("Robbie McCutcheon — Frontend"),
	}
	b := New()
	b.TextBlock("F1", 12, 16, vec.Vec2{X: 72, Y: 680}, lines)
	stream, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}
	data, err := stream.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	back, err := ReadStream(data)
	if err != nil {
		t.Fatal(err)
	}

	var shown []pdf.String
	for _, op := range back {
		if op.Name == OpTextShow {
			shown = append(shown, op.Args[0].(pdf.String))
		}
	}
	if d := cmp.Diff(normalize(lines), normalize(shown)); d != "" {
		t.Errorf("shown text differs (-want +got):\n%s", d)
	}
}

func normalize(ss []pdf.String) []string {
	res := make([]string, len(ss))
	for i, s := range ss {
		res[i] = string(s)
	}
	return res
}

func TestReadStreamErrors(t *testing.T) {
	cases := []string{
		"(unterminated Tj",
		"<< /A 1 >> BDC",
		"[(a) TJ",
		"(a) ] TJ",
		"12 0",
		"<4142 Tj",
		") Tj",
	}
	for _, test := range cases {
		_, err := ReadStream([]byte(test))
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("%q: expected SyntaxError, got %v", test, err)
		}
	}
}
