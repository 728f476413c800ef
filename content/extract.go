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

	"seehuhn.de/go/brandpdf/pdf"
)

// TextRun is a string shown by a single text showing operator.
type TextRun struct {
	Font pdf.Name
	Size float64
	Text string
}

// ForAllText loads the given page of a PDF file and calls yield for each
// text string on the page, in content stream order.
func ForAllText(r *pdf.Reader, pageDict pdf.Object, yield func(TextRun) error) error {
	page, err := r.GetDict(pageDict)
	if err != nil {
		return err
	}
	if page["Type"] != pdf.Name("Page") {
		return fmt.Errorf("expected /Type /Page, got %v", page["Type"])
	}

	var fonts pdf.Dict
	if page["Resources"] != nil {
		resources, err := r.GetDict(page["Resources"])
		if err != nil {
			return err
		}
		if resources["Font"] != nil {
			fonts, err = r.GetDict(resources["Font"])
			if err != nil {
				return err
			}
		}
	}

	data, err := pageContents(r, page["Contents"])
	if err != nil {
		return err
	}
	stream, err := ReadStream(data)
	if err != nil {
		return err
	}

	decoders := make(map[pdf.Name]func(pdf.String) string)
	var run TextRun
	var decode func(pdf.String) string
	show := func(s pdf.String) error {
		if decode == nil {
			return ErrNoFont
		}
		run.Text = decode(s)
		return yield(run)
	}

	for _, op := range stream {
		switch op.Name {
		case OpTextSetFont:
			if len(op.Args) != 2 {
				return fmt.Errorf("Tf: expected 2 arguments, got %d", len(op.Args))
			}
			name, ok := op.Args[0].(pdf.Name)
			if !ok {
				return fmt.Errorf("Tf: font name %v is not a name", op.Args[0])
			}
			size, ok := asNumber(op.Args[1])
			if !ok {
				return fmt.Errorf("Tf: font size %v is not a number", op.Args[1])
			}

			d, ok := decoders[name]
			if !ok {
				ref, found := fonts[name]
				if !found {
					return fmt.Errorf("Tf: font %q not in resources", name)
				}
				d, err = makeTextDecoder(r, ref)
				if err != nil {
					return err
				}
				decoders[name] = d
			}
			decode = d
			run.Font = name
			run.Size = size

		case OpTextShow, OpTextShowMoveNextLine:
			if len(op.Args) != 1 {
				return fmt.Errorf("%s: expected 1 argument, got %d", op.Name, len(op.Args))
			}
			s, ok := op.Args[0].(pdf.String)
			if !ok {
				return fmt.Errorf("%s: argument %v is not a string", op.Name, op.Args[0])
			}
			err = show(s)
			if err != nil {
				return err
			}

		case OpTextShowArray:
			if len(op.Args) != 1 {
				return fmt.Errorf("TJ: expected 1 argument, got %d", len(op.Args))
			}
			a, ok := op.Args[0].(pdf.Array)
			if !ok {
				return fmt.Errorf("TJ: argument %v is not an array", op.Args[0])
			}
			var s pdf.String
			for _, elem := range a {
				if part, ok := elem.(pdf.String); ok {
					s = append(s, part...)
				}
			}
			err = show(s)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// pageContents returns the concatenated data of all content streams of a
// page.
func pageContents(r *pdf.Reader, contents pdf.Object) ([]byte, error) {
	obj, err := r.Resolve(contents)
	if err != nil {
		return nil, err
	}

	switch obj := obj.(type) {
	case nil:
		return nil, nil
	case *pdf.Stream:
		if obj.Dict["Filter"] != nil {
			return nil, errFiltered
		}
		return obj.Data, nil
	case pdf.Array:
		var res []byte
		for i, part := range obj {
			data, err := pageContents(r, part)
			if err != nil {
				return nil, err
			}
			if i > 0 {
				res = append(res, '\n')
			}
			res = append(res, data...)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("/Contents: unexpected object of type %T", obj)
	}
}

func asNumber(obj pdf.Object) (float64, bool) {
	switch x := obj.(type) {
	case pdf.Integer:
		return float64(x), true
	case pdf.Real:
		return float64(x), true
	case pdf.Number:
		return float64(x), true
	}
	return 0, false
}

var errFiltered = errors.New("compressed content streams are not supported")
