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
	"io"
	"math"
	"strconv"

	"seehuhn.de/go/brandpdf/pdf"
)

// scanner splits a content stream into operands and operator names.
type scanner struct {
	data []byte
	pos  int
}

// token is either an operand (obj) or an operator (op, with obj == nil).
type token struct {
	obj pdf.Object
	op  OpName
}

func (s *scanner) next() (token, error) {
	s.skipWhiteSpace()
	if s.pos >= len(s.data) {
		return token{}, io.EOF
	}

	c := s.data[s.pos]
	switch {
	case c == '(':
		str, err := s.readString()
		return token{obj: str}, err
	case c == '<' && s.peekAt(1) == '<':
		return token{}, s.errorf("dictionaries are not supported")
	case c == '<':
		str, err := s.readHexString()
		return token{obj: str}, err
	case c == '/':
		s.pos++
		return token{obj: s.readName()}, nil
	case c == '[' || c == ']':
		s.pos++
		return token{op: OpName(c)}, nil
	case isDelimiter(c):
		return token{}, s.errorf("unexpected %q", c)
	}

	start := s.pos
	for s.pos < len(s.data) && isRegular(s.data[s.pos]) {
		s.pos++
	}
	word := s.data[start:s.pos]
	if x, ok := parseNumber(word); ok {
		return token{obj: x}, nil
	}
	return token{op: OpName(word)}, nil
}

// readString reads a literal string, including the enclosing parentheses.
func (s *scanner) readString() (pdf.String, error) {
	start := s.pos
	level := 0
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '\\':
			s.pos++
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				return pdf.ParseString(s.data[start:s.pos])
			}
		}
	}
	s.pos = start
	return nil, s.errorf("unterminated string")
}

func (s *scanner) readHexString() (pdf.String, error) {
	start := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		if c == '>' {
			return pdf.ParseString(s.data[start:s.pos])
		}
	}
	s.pos = start
	return nil, s.errorf("unterminated hex string")
}

func (s *scanner) readName() pdf.Name {
	var name []byte
	for s.pos < len(s.data) && isRegular(s.data[s.pos]) {
		c := s.data[s.pos]
		s.pos++
		if c == '#' && s.pos+2 <= len(s.data) {
			v, err := strconv.ParseUint(string(s.data[s.pos:s.pos+2]), 16, 8)
			if err == nil {
				c = byte(v)
				s.pos += 2
			}
		}
		name = append(name, c)
	}
	return pdf.Name(name)
}

func (s *scanner) skipWhiteSpace() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == '%' {
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		} else if isSpace(c) {
			s.pos++
		} else {
			return
		}
	}
}

func (s *scanner) peekAt(i int) byte {
	if s.pos+i >= len(s.data) {
		return 0
	}
	return s.data[s.pos+i]
}

func (s *scanner) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: s.pos, Err: fmt.Errorf(format, args...)}
}

// SyntaxError reports a content stream which cannot be parsed.
type SyntaxError struct {
	Pos int
	Err error
}

func (err *SyntaxError) Error() string {
	return "content stream: " + err.Err.Error() + " (at byte " + strconv.Itoa(err.Pos) + ")"
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

var errTrailingOperands = errors.New("operands without operator")

func parseNumber(s []byte) (pdf.Object, bool) {
	x, err := strconv.ParseInt(string(s), 10, 64)
	if err == nil {
		return pdf.Integer(x), true
	}

	for i, c := range s {
		if i == 0 && (c == '+' || c == '-') {
			continue
		}
		if c != '.' && (c < '0' || c > '9') {
			return nil, false
		}
	}
	y, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsInf(y, 0) || math.IsNaN(y) {
		return nil, false
	}
	return pdf.Real(y), true
}

func isSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isRegular(c byte) bool {
	return !isSpace(c) && !isDelimiter(c)
}
