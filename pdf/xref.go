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
	"errors"
	"fmt"
	"io"
)

// xRefEntrySize is the length of one entry in a cross-reference table,
// including the two-byte end-of-line marker.
const xRefEntrySize = 20

func (pdf *Writer) writeXRefTable() error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "0000000000 65535 f \n")
	if err != nil {
		return err
	}
	for i := 1; i < pdf.nextRef; i++ {
		_, err = fmt.Fprintf(pdf.w, "%010d 00000 n \n", pdf.xref[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// findXRef reads the byte offset following the last "startxref" keyword.
func (r *Reader) findXRef() (int64, error) {
	pos, err := r.lastOccurence("startxref")
	if err != nil {
		return 0, err
	}
	s := r.scannerAt(pos + 9)
	s.SkipWhiteSpace()
	xRefPos, err := s.ReadInteger()
	if err != nil {
		return 0, err
	}
	if xRefPos <= 0 || int64(xRefPos) >= int64(len(r.data)) {
		return 0, &MalformedFileError{
			Pos: s.filePos(),
			Err: errors.New("invalid xref position"),
		}
	}
	return int64(xRefPos), nil
}

// readXRefTable reads a classic cross-reference table, followed by the
// trailer dictionary.  Cross-reference streams are not supported.
func (r *Reader) readXRefTable(start int64) (map[int]int64, Dict, error) {
	s := r.scannerAt(start)
	err := s.SkipString("xref")
	if err != nil {
		return nil, nil, err
	}
	s.SkipWhiteSpace()

	xref := make(map[int]int64)
	for {
		c, ok := s.Peek()
		if !ok || c < '0' || c > '9' {
			break
		}

		first, err := s.ReadInteger()
		if err != nil {
			return nil, nil, err
		}
		s.SkipWhiteSpace()
		count, err := s.ReadInteger()
		if err != nil {
			return nil, nil, err
		}
		s.SkipWhiteSpace()

		for i := int(first); i < int(first+count); i++ {
			err = decodeXRefEntry(xref, s, i)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	err = s.SkipString("trailer")
	if err != nil {
		return nil, nil, err
	}
	s.SkipWhiteSpace()
	trailer, err := s.ReadDict()
	if err != nil {
		return nil, nil, err
	}
	return xref, trailer, nil
}

func decodeXRefEntry(xref map[int]int64, s *scanner, number int) error {
	entryPos := s.filePos()
	buf, ok := s.Next(xRefEntrySize)
	if !ok {
		return &MalformedFileError{Pos: entryPos, Err: io.ErrUnexpectedEOF}
	}

	var pos int64
	var gen int
	var tp byte
	_, err := fmt.Sscanf(string(buf[:18]), "%10d %5d %c", &pos, &gen, &tp)
	if err != nil {
		return &MalformedFileError{
			Pos: entryPos,
			Err: fmt.Errorf("malformed xref entry for object %d: %w", number, err),
		}
	}

	switch tp {
	case 'n':
		if gen != 0 {
			return &MalformedFileError{
				Pos: entryPos,
				Err: fmt.Errorf("object %d: unsupported generation %d", number, gen),
			}
		}
		xref[number] = pos
	case 'f':
		// free entry
	default:
		return &MalformedFileError{
			Pos: entryPos,
			Err: fmt.Errorf("object %d: invalid xref entry type %q", number, tp),
		}
	}
	return nil
}
