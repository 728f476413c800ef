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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brandpdf/pdf"
)

func TestTextLine(t *testing.T) {
	b := New()
	b.TextLine("F1", 24, vec.Vec2{X: 72, Y: 720}, pdf.String("A (B) C\\D"))
	stream, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}

	data, err := stream.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	want := "BT\n/F1 24 Tf\n72 720 Td\n(A \\(B\\) C\\\\D) Tj\nET"
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}
}

func TestTextBlock(t *testing.T) {
	lines := []pdf.String{
		pdf.String("About:"),
		pdf.String(""),
		pdf.String("- item"),
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
	want := `BT
/F1 12 Tf
72 680 Td
(About:) Tj
0 -16 Td
() Tj
0 -16 Td
(- item) Tj
0 -16 Td
ET`
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}

	if n := stream.Count(OpTextShow); n != len(lines) {
		t.Errorf("expected %d Tj operators, got %d", len(lines), n)
	}
	// every line, including the empty one, advances by one leading
	if n := stream.Count(OpTextMoveOffset); n != len(lines)+1 {
		t.Errorf("expected %d Td operators, got %d", len(lines)+1, n)
	}
}

func TestTextBlockEmpty(t *testing.T) {
	b := New()
	b.TextBlock("F1", 12, 16, vec.Vec2{X: 72, Y: 680}, nil)
	stream, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}

	want := Stream{
		{Name: OpTextBegin},
		{Name: OpTextSetFont, Args: []pdf.Object{pdf.Name("F1"), pdf.Number(12)}},
		{Name: OpTextMoveOffset, Args: []pdf.Object{pdf.Number(72), pdf.Number(680)}},
		{Name: OpTextEnd},
	}
	if d := cmp.Diff(want, stream); d != "" {
		t.Errorf("wrong operators (-want +got):\n%s", d)
	}
}

func TestBuilderErrors(t *testing.T) {
	cases := []struct {
		name  string
		build func(b *Builder)
		want  error
	}{
		{"ShowOutsideText", func(b *Builder) {
			b.TextSetFont("F1", 12)
			b.TextShowRaw(pdf.String("x"))
		}, ErrTextObject},
		{"NestedBT", func(b *Builder) {
			b.TextBegin()
			b.TextBegin()
		}, ErrTextObject},
		{"MissingET", func(b *Builder) {
			b.TextBegin()
		}, ErrTextObject},
		{"ExtraET", func(b *Builder) {
			b.TextEnd()
		}, ErrTextObject},
		{"NoFont", func(b *Builder) {
			b.TextBegin()
			b.TextShowRaw(pdf.String("x"))
			b.TextEnd()
		}, ErrNoFont},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			b := New()
			test.build(b)
			_, err := b.Harvest()
			if !errors.Is(err, test.want) {
				t.Errorf("expected %v, got %v", test.want, err)
			}
		})
	}
}

func TestBuilderInvalidSize(t *testing.T) {
	b := New()
	b.TextBegin()
	b.TextSetFont("F1", -1)
	b.TextEnd()
	if b.Err == nil {
		t.Fatal("negative font size accepted")
	}

	// errors are sticky
	_, err := b.Harvest()
	if err == nil {
		t.Error("Harvest succeeded after error")
	}
	if len(b.Stream) != 1 {
		t.Errorf("operators emitted after error: %v", b.Stream)
	}
}

func TestHarvestClears(t *testing.T) {
	b := New()
	b.TextBegin()
	b.TextSetFont("F1", 10)
	b.TextShowRaw(pdf.String("a"))
	b.TextFirstLine(0, -14)
	b.TextShowRaw(pdf.String("b"))
	b.TextEnd()

	stream, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}
	if len(stream) != 6 {
		t.Errorf("expected 6 operators, got %d", len(stream))
	}
	if len(b.Stream) != 0 {
		t.Error("stream not cleared after Harvest")
	}
}

func TestCoordinateRounding(t *testing.T) {
	b := New()
	b.TextLine("F1", 10.000001, vec.Vec2{X: 72.123456, Y: 1.0 / 3}, pdf.String("x"))
	stream, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}
	data, err := stream.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	want := "BT\n/F1 10 Tf\n72.1235 0.3333 Td\n(x) Tj\nET"
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}
}

func TestNonFiniteNumbers(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	cases := []struct {
		name  string
		build func(b *Builder)
	}{
		{"NaN size", func(b *Builder) {
			b.TextLine("F1", nan, vec.Vec2{X: 72, Y: 720}, pdf.String("x"))
		}},
		{"infinite size", func(b *Builder) {
			b.TextLine("F1", inf, vec.Vec2{X: 72, Y: 720}, pdf.String("x"))
		}},
		{"NaN position", func(b *Builder) {
			b.TextLine("F1", 12, vec.Vec2{X: nan, Y: 720}, pdf.String("x"))
		}},
		{"NaN leading", func(b *Builder) {
			b.TextBlock("F1", 12, nan, vec.Vec2{X: 72, Y: 680}, []pdf.String{pdf.String("x")})
		}},
		{"infinite leading", func(b *Builder) {
			b.TextBlock("F1", 12, -inf, vec.Vec2{X: 72, Y: 680}, []pdf.String{pdf.String("x")})
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := New()
			c.build(b)
			_, err := b.Harvest()
			if !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("expected ErrInvalidNumber, got %v", err)
			}
		})
	}
}
