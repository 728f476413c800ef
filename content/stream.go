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
	"io"

	"seehuhn.de/go/brandpdf/pdf"
)

// ReadStream parses a content stream into a sequence of operators.
//
// Operands may be numbers, names, strings and arrays of these.  Inline
// images and dictionary operands are not supported.
func ReadStream(data []byte) (Stream, error) {
	s := &scanner{data: data}

	var stream Stream
	var args []pdf.Object
	var stack [][]pdf.Object
	for {
		tok, err := s.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		switch {
		case tok.op == "[":
			stack = append(stack, args)
			args = nil
		case tok.op == "]":
			if len(stack) == 0 {
				return nil, s.errorf("unexpected ']'")
			}
			array := pdf.Array(args)
			args = append(stack[len(stack)-1], array)
			stack = stack[:len(stack)-1]
		case tok.op != "":
			if len(stack) > 0 {
				return nil, s.errorf("operator %s inside array", tok.op)
			}
			stream = append(stream, Operator{Name: tok.op, Args: args})
			args = nil
		default:
			args = append(args, tok.obj)
		}
	}

	if len(stack) > 0 {
		return nil, s.errorf("unterminated array")
	}
	if len(args) > 0 {
		return nil, &SyntaxError{Pos: s.pos, Err: errTrailingOperands}
	}
	return stream, nil
}
