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

package brandpdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"seehuhn.de/go/brandpdf/pdf"
)

// Generate returns the complete PDF file for the page p.  If p is nil,
// DefaultPage is used, and if l is nil, DefaultLayout is used.  The time now is shown in the timestamp line.
func Generate(p *Page, l *Layout, now time.Time) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := Write(buf, p, l, now)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the PDF file for the page p to w.  The file consists of
// five objects: catalog, page tree, page, font and content stream.
// Nil arguments are replaced by DefaultPage and DefaultLayout.
func Write(w io.Writer, p *Page, l *Layout, now time.Time) error {
	if p == nil {
		p = DefaultPage
	}
	if l == nil {
		l = DefaultLayout
	}

	ops, err := p.Contents(l, now)
	if err != nil {
		return err
	}
	data, err := ops.Bytes()
	if err != nil {
		return err
	}

	out, err := pdf.NewWriter(w, pdf.V1_4)
	if err != nil {
		return err
	}
	catalogRef := out.Alloc()
	pagesRef := out.Alloc()
	pageRef := out.Alloc()
	fontRef := out.Alloc()
	contentRef := out.Alloc()

	objects := []struct {
		ref pdf.Reference
		obj pdf.Object
	}{
		{catalogRef, pdf.Dict{
			"Type":  pdf.Name("Catalog"),
			"Pages": pagesRef,
		}},
		{pagesRef, pdf.Dict{
			"Type":  pdf.Name("Pages"),
			"Count": pdf.Integer(1),
			"Kids":  pdf.Array{pageRef},
		}},
		{pageRef, pdf.Dict{
			"Type":     pdf.Name("Page"),
			"Parent":   pagesRef,
			"MediaBox": pdf.Rectangle(l.MediaBox),
			"Resources": pdf.Dict{
				"Font": pdf.Dict{l.Font: fontRef},
			},
			"Contents": contentRef,
		}},
		{fontRef, pdf.Dict{
			"Type":     pdf.Name("Font"),
			"Subtype":  pdf.Name("Type1"),
			"BaseFont": l.BaseFont,
			"Encoding": pdf.Name("WinAnsiEncoding"),
		}},
		{contentRef, &pdf.Stream{Data: data}},
	}
	for _, o := range objects {
		err := out.Put(o.ref, o.obj)
		if err != nil {
			return fmt.Errorf("object %d: %w", o.ref.Number, err)
		}
	}

	return out.Close(catalogRef)
}

// WriteFile writes data to the named file using a single write call.  An
// existing file is overwritten.
func WriteFile(name string, data []byte) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil {
			err = closeErr
		}
	}()

	_, err = fd.Write(data)
	return err
}
