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
	"fmt"
	"io"
)

// Writer writes the objects of a PDF file sequentially.  Byte offsets of
// all objects are recorded as they are written, and Close appends the
// cross-reference table and the trailer.
type Writer struct {
	w       *posWriter
	xref    map[int]int64
	nextRef int
}

// NewWriter prepares a PDF file for writing and writes the file header.
// The header consists of the version line and a comment line made of four
// bytes with the high bit set, so that the file is recognised as binary.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	if ver < V1_0 || ver >= tooHighVersion {
		return nil, errVersion
	}
	pdf := &Writer{
		w:       &posWriter{w: w},
		xref:    make(map[int]int64),
		nextRef: 1,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\xE2\xE3\xCF\xD3\n", ver)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.  Object numbers
// start at 1 and are handed out in increasing order.
func (pdf *Writer) Alloc() Reference {
	ref := Reference{Number: pdf.nextRef}
	pdf.nextRef++
	return ref
}

// Put writes obj to the file as the indirect object ref.  The reference
// must have been obtained from Alloc, and each reference can only be used
// once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if ref.Number < 1 || ref.Number >= pdf.nextRef || ref.Generation != 0 {
		return fmt.Errorf("%s: %w", ref, ErrNotAllocated)
	}
	if _, seen := pdf.xref[ref.Number]; seen {
		return fmt.Errorf("%s: %w", ref, ErrAlreadyWritten)
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
	if err != nil {
		return err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	if err != nil {
		return err
	}

	pdf.xref[ref.Number] = pos
	return nil
}

// Offset returns the byte offset at which the given object starts.
// The second return value is false if the object has not been written.
func (pdf *Writer) Offset(ref Reference) (int64, bool) {
	pos, ok := pdf.xref[ref.Number]
	return pos, ok
}

// Close writes the cross-reference table and the trailer, using root as
// the document catalog.  Every allocated object must have been written
// before Close is called.  The underlying io.Writer is not closed.
func (pdf *Writer) Close(root Reference) error {
	if pdf.w == nil {
		return ErrClosed
	}
	for i := 1; i < pdf.nextRef; i++ {
		if _, ok := pdf.xref[i]; !ok {
			return fmt.Errorf("%s: %w", Reference{Number: i}, ErrMissingObject)
		}
	}
	if _, ok := pdf.xref[root.Number]; !ok {
		return fmt.Errorf("catalog %s: %w", root, ErrMissingObject)
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "trailer\n<< /Size %d /Root %s >>\nstartxref\n%d\n%%%%EOF\n",
		pdf.nextRef, Format(root), xRefPos)
	if err != nil {
		return err
	}

	// make sure we don't accidentally write beyond the end of file
	pdf.w = nil
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
