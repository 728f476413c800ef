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

package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// scanner reads PDF objects from an in-memory copy of the file.
type scanner struct {
	data []byte
	pos  int

	// getInt resolves the /Length of streams.
	getInt func(Object) (Integer, error)
}

func newScanner(data []byte, pos int, getInt func(Object) (Integer, error)) *scanner {
	if getInt == nil {
		getInt = func(obj Object) (Integer, error) {
			x, ok := obj.(Integer)
			if !ok {
				return 0, fmt.Errorf("expected Integer but got %T", obj)
			}
			return x, nil
		}
	}
	return &scanner{data: data, pos: pos, getInt: getInt}
}

func (s *scanner) filePos() int64 {
	return int64(s.pos)
}

// ReadIndirectObject reads an object of the form "n g obj ... endobj".
func (s *scanner) ReadIndirectObject() (Reference, Object, error) {
	number, err := s.ReadInteger()
	if err != nil {
		return Reference{}, nil, err
	}
	s.SkipWhiteSpace()
	generation, err := s.ReadInteger()
	if err != nil {
		return Reference{}, nil, err
	}
	s.SkipWhiteSpace()
	err = s.SkipString("obj")
	if err != nil {
		return Reference{}, nil, err
	}
	s.SkipWhiteSpace()

	obj, err := s.ReadObject()
	if err != nil {
		return Reference{}, nil, err
	}
	s.SkipWhiteSpace()

	if a, ok := obj.(Integer); ok && !s.HasPrefix("endobj") {
		obj, err = s.finishReference(a)
		if err != nil {
			return Reference{}, nil, err
		}
	}

	err = s.SkipString("endobj")
	if err != nil {
		return Reference{}, nil, err
	}

	ref := Reference{Number: int(number), Generation: uint16(generation)}
	return ref, obj, nil
}

// ReadObject reads a direct object.  Integers are returned as they are; it
// is the caller's responsibility to check whether they start a reference.
func (s *scanner) ReadObject() (Object, error) {
	c, ok := s.Peek()
	switch {
	case !ok:
		return nil, &MalformedFileError{Pos: s.filePos(), Err: io.ErrUnexpectedEOF}
	case s.HasPrefix("null"):
		s.pos += 4
		return nil, nil
	case c == '/':
		return s.ReadName()
	case c >= '0' && c <= '9', c == '+', c == '-', c == '.':
		return s.ReadNumber()
	case s.HasPrefix("<<"):
		dict, err := s.ReadDict()
		if err != nil {
			return nil, err
		}
		s.SkipWhiteSpace()
		if !s.HasPrefix("stream") {
			return dict, nil
		}
		return s.ReadStreamData(dict)
	case c == '(':
		s.pos++
		return s.ReadQuotedString()
	case c == '<':
		s.pos++
		return s.ReadHexString()
	case c == '[':
		s.pos++
		return s.ReadArray()
	}
	return nil, &MalformedFileError{
		Pos: s.filePos(),
		Err: fmt.Errorf("unexpected character %q", c),
	}
}

// finishReference reads the "g R" part of a reference, after the object
// number a has already been read.
func (s *scanner) finishReference(a Integer) (Reference, error) {
	b, err := s.ReadInteger()
	if err != nil {
		return Reference{}, err
	}
	s.SkipWhiteSpace()
	err = s.SkipString("R")
	if err != nil {
		return Reference{}, err
	}
	s.SkipWhiteSpace()
	return Reference{Number: int(a), Generation: uint16(b)}, nil
}

// ReadInteger reads an integer.
func (s *scanner) ReadInteger() (Integer, error) {
	start := s.pos
	if c, ok := s.Peek(); ok && (c == '+' || c == '-') {
		s.pos++
	}
	for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
	}

	x, err := strconv.ParseInt(string(s.data[start:s.pos]), 10, 64)
	if err != nil {
		return 0, &MalformedFileError{Pos: int64(start), Err: err}
	}
	return Integer(x), nil
}

// ReadNumber reads an integer or real number.
func (s *scanner) ReadNumber() (Object, error) {
	start := s.pos
	hasDot := false
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == '.' && !hasDot {
			hasDot = true
		} else if (c == '+' || c == '-') && s.pos == start {
			// sign
		} else if c < '0' || c > '9' {
			break
		}
		s.pos++
	}
	text := string(s.data[start:s.pos])

	if hasDot {
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &MalformedFileError{Pos: int64(start), Err: err}
		}
		return Real(x), nil
	}
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &MalformedFileError{Pos: int64(start), Err: err}
	}
	return Integer(x), nil
}

// ReadQuotedString reads a ()-delimited string, starting after the opening
// bracket.
func (s *scanner) ReadQuotedString() (String, error) {
	start := s.pos
	var res []byte
	level := 0
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '(':
			level++
		case ')':
			if level == 0 {
				return String(res), nil
			}
			level--
		case '\r':
			// an end-of-line marker in a string is read as a single '\n'
			if s.pos < len(s.data) && s.data[s.pos] == '\n' {
				s.pos++
			}
			c = '\n'
		case '\\':
			if s.pos >= len(s.data) {
				continue
			}
			c = s.data[s.pos]
			s.pos++
			switch c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case '\r':
				if s.pos < len(s.data) && s.data[s.pos] == '\n' {
					s.pos++
				}
				continue
			case '\n':
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7':
				c -= '0'
				for i := 0; i < 2 && s.pos < len(s.data); i++ {
					d := s.data[s.pos]
					if d < '0' || d > '7' {
						break
					}
					c = c*8 + (d - '0')
					s.pos++
				}
			}
		}
		res = append(res, c)
	}
	return nil, &MalformedFileError{
		Pos: int64(start),
		Err: errors.New("unterminated string"),
	}
}

// ReadHexString reads a <>-delimited string, starting after the opening
// angled bracket.
func (s *scanner) ReadHexString() (String, error) {
	start := s.pos
	var res []byte
	var hexVal byte
	first := true
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++

		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c == '>':
			if !first {
				res = append(res, 16*hexVal)
			}
			return String(res), nil
		case isSpace(c):
			continue
		default:
			return nil, &MalformedFileError{
				Pos: s.filePos() - 1,
				Err: fmt.Errorf("invalid hex digit %q", c),
			}
		}
		if first {
			hexVal = d
		} else {
			res = append(res, 16*hexVal+d)
		}
		first = !first
	}
	return nil, &MalformedFileError{
		Pos: int64(start),
		Err: errors.New("unterminated hex string"),
	}
}

// ReadName reads a PDF name object.
func (s *scanner) ReadName() (Name, error) {
	err := s.SkipString("/")
	if err != nil {
		return "", err
	}

	var res []byte
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if isSpace(c) || isDelimiter(c) {
			break
		}
		s.pos++
		if c == '#' && s.pos+2 <= len(s.data) {
			v, err := strconv.ParseUint(string(s.data[s.pos:s.pos+2]), 16, 8)
			if err == nil {
				c = byte(v)
				s.pos += 2
			}
		}
		res = append(res, c)
	}
	return Name(res), nil
}

// ReadArray reads an array, starting after the opening "[".
func (s *scanner) ReadArray() (Array, error) {
	var array Array
	integersSeen := 0
	for {
		s.SkipWhiteSpace()

		c, ok := s.Peek()
		if !ok {
			return nil, &MalformedFileError{Pos: s.filePos(), Err: io.ErrUnexpectedEOF}
		}
		if c == ']' {
			break
		}
		if integersSeen >= 2 && c == 'R' {
			s.pos++
			k := len(array)
			a := int(array[k-2].(Integer))
			b := uint16(array[k-1].(Integer))
			array = append(array[:k-2], Reference{Number: a, Generation: b})
			integersSeen = 0
			continue
		}

		obj, err := s.ReadObject()
		if err != nil {
			return nil, err
		}
		if _, isInt := obj.(Integer); isInt {
			integersSeen++
		} else {
			integersSeen = 0
		}
		array = append(array, obj)
	}
	s.pos++ // we have already seen the closing "]"

	return array, nil
}

// ReadDict reads a PDF dictionary.
func (s *scanner) ReadDict() (Dict, error) {
	err := s.SkipString("<<")
	if err != nil {
		return nil, err
	}

	dict := Dict{}
	for {
		s.SkipWhiteSpace()
		if s.HasPrefix(">>") {
			break
		}

		key, err := s.ReadName()
		if err != nil {
			return nil, err
		}
		s.SkipWhiteSpace()

		val, err := s.ReadObject()
		if err != nil {
			return nil, err
		}
		s.SkipWhiteSpace()

		// If we found an integer, check whether this is a reference to an
		// indirect object.
		if a, isInt := val.(Integer); isInt {
			c, ok := s.Peek()
			if ok && c >= '0' && c <= '9' {
				val, err = s.finishReference(a)
				if err != nil {
					return nil, err
				}
			}
		}

		if val != nil {
			dict[key] = val
		}
	}
	s.pos += 2

	return dict, nil
}

// ReadStreamData reads the data of a PDF Stream, starting after the Dict.
func (s *scanner) ReadStreamData(dict Dict) (*Stream, error) {
	length, err := s.getInt(dict["Length"])
	if err != nil {
		return nil, &MalformedFileError{Pos: s.filePos(), Err: err}
	} else if length < 0 {
		return nil, &MalformedFileError{
			Pos: s.filePos(),
			Err: errors.New("stream with negative length"),
		}
	}

	err = s.SkipString("stream")
	if err != nil {
		return nil, err
	}
	if s.HasPrefix("\r\n") {
		s.pos += 2
	} else if s.HasPrefix("\n") {
		s.pos++
	} else {
		return nil, &MalformedFileError{
			Pos: s.filePos(),
			Err: errors.New("missing end-of-line after \"stream\""),
		}
	}

	data, ok := s.Next(int(length))
	if !ok {
		return nil, &MalformedFileError{Pos: s.filePos(), Err: io.ErrUnexpectedEOF}
	}

	s.SkipWhiteSpace()
	err = s.SkipString("endstream")
	if err != nil {
		return nil, err
	}

	return &Stream{
		Dict: dict,
		Data: bytes.Clone(data),
	}, nil
}

// Peek returns the next input byte without consuming it.
func (s *scanner) Peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

// Next consumes and returns the next n bytes of input.
func (s *scanner) Next(n int) ([]byte, bool) {
	if n < 0 || s.pos+n > len(s.data) {
		return nil, false
	}
	buf := s.data[s.pos : s.pos+n]
	s.pos += n
	return buf, true
}

// HasPrefix reports whether the unread input starts with pat.
func (s *scanner) HasPrefix(pat string) bool {
	return bytes.HasPrefix(s.data[s.pos:], []byte(pat))
}

// SkipWhiteSpace skips white space and comments.
func (s *scanner) SkipWhiteSpace() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == '%' {
			for s.pos < len(s.data) && s.data[s.pos] != '\r' && s.data[s.pos] != '\n' {
				s.pos++
			}
		} else if isSpace(c) {
			s.pos++
		} else {
			return
		}
	}
}

// SkipString consumes pat, which must be the next part of the input.
func (s *scanner) SkipString(pat string) error {
	if !s.HasPrefix(pat) {
		end := min(s.pos+len(pat), len(s.data))
		return &MalformedFileError{
			Pos: s.filePos(),
			Err: fmt.Errorf("expected %q but found %q", pat, s.data[s.pos:end]),
		}
	}
	s.pos += len(pat)
	return nil
}

// ParseString parses a string in literal "(...)" or hexadecimal "<...>"
// notation and returns the decoded bytes.
func ParseString(buf []byte) (String, error) {
	s := newScanner(buf, 0, nil)
	obj, err := s.ReadObject()
	if err != nil {
		return nil, err
	}
	str, ok := obj.(String)
	if !ok || s.pos != len(buf) {
		return nil, &MalformedFileError{Err: errors.New("not a string")}
	}
	return str, nil
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
