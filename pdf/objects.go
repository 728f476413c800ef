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
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/brandpdf/internal/float"
)

// Object represents an object in a PDF file.  The types implementing this
// interface are Array, Dict, Integer, Name, Number, Real, Reference, Stream
// and String.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Object interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents an real number in a PDF file.
type Real float64

// PDF implements the Object interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// A Number is either an Integer or a Real, depending on whether the value
// has a fractional part.
type Number float64

// PDF implements the Object interface.
func (x Number) PDF(w io.Writer) error {
	var obj Object
	if float.IsInteger(float64(x)) {
		obj = Integer(x)
	} else {
		obj = Real(x)
	}
	return obj.PDF(w)
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.
//
// Strings are always written in literal form, using Escape.
type String []byte

// PDF implements the Object interface.
func (x String) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "("+Escape(string(x))+")")
	return err
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the Object interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range []byte(x) {
		if isSpace(c) || isDelimiter(c) || c < 0x21 || c > 0x7e || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Array represent an array of objects in a PDF file.
type Array []Object

// PDF implements the Object interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// Dict represent a Dictionary object in a PDF file.
//
// Dictionaries are written on a single line.  The /Type entry comes first,
// followed by /Subtype, followed by the remaining keys in sorted order.
// Entries with a nil value are omitted.
type Dict map[Name]Object

func (x Dict) String() string {
	res := []string{}
	if tp, ok := x["Type"].(Name); ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	res = append(res, strconv.Itoa(len(x))+" entries")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the Object interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, key := range x.keys() {
		val := x[key]
		if val == nil {
			continue
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, " >>")
	return err
}

func (x Dict) keys() []Name {
	var head, tail []Name
	for key := range x {
		switch key {
		case "Type", "Subtype":
			head = append(head, key)
		default:
			tail = append(tail, key)
		}
	}
	slices.Sort(head)
	slices.Reverse(head) // "Type" before "Subtype"
	slices.Sort(tail)
	return append(head, tail...)
}

// Stream represent a stream object in a PDF file.
//
// When the stream is written, the /Length entry is always set to the number
// of bytes in Data.  Any /Length value in Dict is ignored.
type Stream struct {
	Dict
	Data []byte
}

func (x *Stream) String() string {
	return fmt.Sprintf("<Stream, %d bytes>", len(x.Data))
}

// PDF implements the Object interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := maps.Clone(x.Dict)
	if dict == nil {
		dict = Dict{}
	}
	dict["Length"] = Integer(len(x.Data))

	err := dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(x.Data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
type Reference struct {
	Number     int
	Generation uint16
}

func (x Reference) String() string {
	s := "obj_" + strconv.Itoa(x.Number)
	if x.Generation > 0 {
		s += "@" + strconv.FormatUint(uint64(x.Generation), 10)
	}
	return s
}

// PDF implements the Object interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	return err
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Format returns the PDF representation of obj as a string.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		return "<error: " + err.Error() + ">"
	}
	return buf.String()
}
