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
	"strconv"
)

var (
	// ErrAlreadyWritten is returned by Writer.Put if an object number is
	// used a second time.
	ErrAlreadyWritten = errors.New("object already written")

	// ErrNotAllocated is returned by Writer.Put for references which were
	// not obtained from Writer.Alloc.
	ErrNotAllocated = errors.New("object number not allocated")

	// ErrMissingObject is returned by Writer.Close if an allocated object
	// was never written.
	ErrMissingObject = errors.New("allocated object not written")

	// ErrClosed is returned when a Writer is used after Close.
	ErrClosed = errors.New("writer is closed")

	errVersion = errors.New("unsupported PDF version")
)

// MalformedFileError indicates that the PDF file could not be parsed.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid PDF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
