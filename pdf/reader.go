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
	"os"
)

// Reader gives random access to the objects of a PDF file with a classic
// cross-reference table.  The whole file is held in memory.
type Reader struct {
	// Version is the PDF version from the file header.
	Version Version

	// Trailer is the trailer dictionary of the file.
	Trailer Dict

	data []byte
	xref map[int]int64
}

// Open reads the named PDF file.
func Open(fname string) (*Reader, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

// NewReader reads a PDF file from r, which must contain size bytes.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	data := make([]byte, size)
	n, err := r.ReadAt(data, 0)
	if n < len(data) {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	res := &Reader{data: data}

	res.Version, err = res.readHeaderVersion()
	if err != nil {
		return nil, err
	}

	start, err := res.findXRef()
	if err != nil {
		return nil, err
	}
	res.xref, res.Trailer, err = res.readXRefTable(start)
	if err != nil {
		return nil, err
	}

	if _, ok := res.Trailer["Root"].(Reference); !ok {
		return nil, &MalformedFileError{Err: errors.New("missing /Root in trailer")}
	}
	return res, nil
}

// NumObjects returns the number of in-use objects listed in the
// cross-reference table.
func (r *Reader) NumObjects() int {
	return len(r.xref)
}

// Offset returns the byte offset recorded for object number n.
func (r *Reader) Offset(n int) (int64, bool) {
	pos, ok := r.xref[n]
	return pos, ok
}

// Get reads the indirect object ref from the file.
func (r *Reader) Get(ref Reference) (Object, error) {
	pos, ok := r.xref[ref.Number]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ref, ErrMissingObject)
	}
	if pos < 0 || pos >= int64(len(r.data)) {
		return nil, &MalformedFileError{
			Pos: pos,
			Err: fmt.Errorf("%s: offset out of range", ref),
		}
	}

	s := r.scannerAt(pos)
	found, obj, err := s.ReadIndirectObject()
	if err != nil {
		return nil, err
	}
	if found != ref {
		return nil, &MalformedFileError{
			Pos: pos,
			Err: fmt.Errorf("xref points to %s instead of %s", found, ref),
		}
	}
	return obj, nil
}

// Resolve returns obj, with a reference replaced by the object it points to.
func (r *Reader) Resolve(obj Object) (Object, error) {
	ref, ok := obj.(Reference)
	if !ok {
		return obj, nil
	}
	return r.Get(ref)
}

// GetDict resolves obj and checks that the result is a dictionary.
func (r *Reader) GetDict(obj Object) (Dict, error) {
	obj, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	dict, ok := obj.(Dict)
	if !ok {
		return nil, fmt.Errorf("expected Dict but got %T", obj)
	}
	return dict, nil
}

// GetStream resolves obj and checks that the result is a stream.
func (r *Reader) GetStream(obj Object) (*Stream, error) {
	obj, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	stm, ok := obj.(*Stream)
	if !ok {
		return nil, fmt.Errorf("expected Stream but got %T", obj)
	}
	return stm, nil
}

// Catalog returns the document catalog.
func (r *Reader) Catalog() (Dict, error) {
	catalog, err := r.GetDict(r.Trailer["Root"])
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if catalog["Type"] != Name("Catalog") {
		return nil, &MalformedFileError{Err: errors.New("root object is not a /Catalog")}
	}
	return catalog, nil
}

func (r *Reader) getInt(obj Object) (Integer, error) {
	obj, err := r.Resolve(obj)
	if err != nil {
		return 0, err
	}
	x, ok := obj.(Integer)
	if !ok {
		return 0, fmt.Errorf("expected Integer but got %T", obj)
	}
	return x, nil
}

func (r *Reader) scannerAt(pos int64) *scanner {
	return newScanner(r.data, int(pos), r.getInt)
}

func (r *Reader) lastOccurence(pat string) (int64, error) {
	idx := bytes.LastIndex(r.data, []byte(pat))
	if idx < 0 {
		return 0, &MalformedFileError{Err: fmt.Errorf("%q not found", pat)}
	}
	return int64(idx), nil
}

func (r *Reader) readHeaderVersion() (Version, error) {
	const prefix = "%PDF-"
	if !bytes.HasPrefix(r.data, []byte(prefix)) || len(r.data) < len(prefix)+3 {
		return 0, &MalformedFileError{Err: errors.New("PDF header not found")}
	}
	ver, err := ParseVersion(string(r.data[len(prefix) : len(prefix)+3]))
	if err != nil {
		return 0, &MalformedFileError{Pos: int64(len(prefix)), Err: err}
	}
	return ver, nil
}
