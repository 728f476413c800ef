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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brandpdf/internal/float"
	"seehuhn.de/go/brandpdf/pdf"
)

var (
	// ErrTextObject indicates a text operator used outside of a text
	// object, a nested text object, or a text object which is not closed.
	ErrTextObject = errors.New("unbalanced text object")

	// ErrNoFont indicates that text was shown before a font was selected.
	ErrNoFont = errors.New("no font selected")

	// ErrInvalidNumber indicates a NaN or infinite font size or coordinate.
	ErrInvalidNumber = errors.New("number is not finite")
)

// Builder constructs a content stream operator by operator.
//
// Errors are recorded in the Err field.  Once an error has occurred, all
// methods return immediately without doing anything.
type Builder struct {
	Stream Stream
	Err    error

	inText  bool
	hasFont bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// coordDigits is the number of decimal digits kept for lengths and
// coordinates.
const coordDigits = 4

func num(x float64) pdf.Number {
	return pdf.Number(float.Round(x, coordDigits))
}

// checkFinite records an error if any of the values is NaN or infinite.
func (b *Builder) checkFinite(name OpName, values ...float64) bool {
	if b.Err != nil {
		return false
	}
	for _, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			b.Err = fmt.Errorf("%s: %g: %w", name, x, ErrInvalidNumber)
			return false
		}
	}
	return true
}

func (b *Builder) emit(name OpName, args ...pdf.Object) {
	if b.Err != nil {
		return
	}
	b.Stream = append(b.Stream, Operator{Name: name, Args: args})
}

func (b *Builder) requireText(name OpName) bool {
	if b.Err != nil {
		return false
	}
	if !b.inText {
		b.Err = fmt.Errorf("%s outside text object: %w", name, ErrTextObject)
		return false
	}
	return true
}

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (b *Builder) TextBegin() {
	if b.Err != nil {
		return
	}
	if b.inText {
		b.Err = fmt.Errorf("nested BT: %w", ErrTextObject)
		return
	}
	b.inText = true
	b.emit(OpTextBegin)
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (b *Builder) TextEnd() {
	if !b.requireText(OpTextEnd) {
		return
	}
	b.inText = false
	b.emit(OpTextEnd)
}

// TextSetFont selects the font resource with the given name and the font
// size.
//
// This implements the PDF graphics operator "Tf".
func (b *Builder) TextSetFont(font pdf.Name, size float64) {
	if !b.checkFinite(OpTextSetFont, size) {
		return
	}
	if size <= 0 {
		b.Err = fmt.Errorf("TextSetFont: invalid font size %g", size)
		return
	}
	b.hasFont = true
	b.emit(OpTextSetFont, font, num(size))
}

// TextFirstLine moves to the start of the next line of text.  The new text
// position is (x, y), relative to the start of the current line.
//
// This implements the PDF graphics operator "Td".
func (b *Builder) TextFirstLine(x, y float64) {
	if !b.requireText(OpTextMoveOffset) || !b.checkFinite(OpTextMoveOffset, x, y) {
		return
	}
	b.emit(OpTextMoveOffset, num(x), num(y))
}

// TextShowRaw shows an already encoded text string.
//
// This implements the PDF graphics operator "Tj".
func (b *Builder) TextShowRaw(s pdf.String) {
	if !b.requireText(OpTextShow) {
		return
	}
	if !b.hasFont {
		b.Err = fmt.Errorf("%s: %w", OpTextShow, ErrNoFont)
		return
	}
	b.emit(OpTextShow, s)
}

// TextLine places a single line of text in its own text object.  The
// baseline of the text starts at the point at.
func (b *Builder) TextLine(font pdf.Name, size float64, at vec.Vec2, s pdf.String) {
	b.TextBegin()
	b.TextSetFont(font, size)
	b.TextFirstLine(at.X, at.Y)
	b.TextShowRaw(s)
	b.TextEnd()
}

// TextBlock places several lines of text in a single text object.  The font
// is selected once, the first baseline starts at the point at, and after
// each line the text position moves down by leading.  Empty lines are shown
// as empty strings, so that they take up one line of space.
func (b *Builder) TextBlock(font pdf.Name, size, leading float64, at vec.Vec2, lines []pdf.String) {
	b.TextBegin()
	b.TextSetFont(font, size)
	b.TextFirstLine(at.X, at.Y)
	for _, line := range lines {
		b.TextShowRaw(line)
		b.TextFirstLine(0, -leading)
	}
	b.TextEnd()
}

// Harvest returns the operators constructed so far and clears the stream.
// An error is returned if a text object is still open, or if any earlier
// error occurred.  Errors are sticky.
func (b *Builder) Harvest() (Stream, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	if b.inText {
		return nil, fmt.Errorf("missing ET: %w", ErrTextObject)
	}
	res := b.Stream
	b.Stream = nil
	return res, nil
}
