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
	"bytes"

	"seehuhn.de/go/brandpdf/pdf"
)

// OpName is the name of a content stream operator.
type OpName string

// The operators used for placing text.
const (
	// Text Objects
	OpTextBegin OpName = "BT"
	OpTextEnd   OpName = "ET"

	// Text State
	OpTextSetFont OpName = "Tf"

	// Text Positioning
	OpTextMoveOffset OpName = "Td"

	// Text Showing
	OpTextShow             OpName = "Tj"
	OpTextShowArray        OpName = "TJ"
	OpTextShowMoveNextLine OpName = "'"
)

// Operator represents a content stream operator with its arguments.
type Operator struct {
	Name OpName
	Args []pdf.Object
}

// Stream is a sequence of content stream operators.
type Stream []Operator

// Bytes returns the PDF representation of the content stream.  Each
// operator is written on its own line, with the arguments preceding the
// operator name.  There is no newline after the last operator.
func (s Stream) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	for i, op := range s {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for _, arg := range op.Args {
			if arg == nil {
				buf.WriteString("null")
			} else if err := arg.PDF(buf); err != nil {
				return nil, err
			}
			buf.WriteByte(' ')
		}
		buf.WriteString(string(op.Name))
	}
	return buf.Bytes(), nil
}

// Count returns the number of operators with the given name.
func (s Stream) Count(name OpName) int {
	n := 0
	for _, op := range s {
		if op.Name == name {
			n++
		}
	}
	return n
}
