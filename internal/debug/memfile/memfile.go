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

package memfile

import (
	"errors"
	"io"
)

// MemFile is a temporary in-memory file.
//
// This type implements the [io.ReadWriteSeeker], [io.ReaderAt] and
// [io.Closer] interfaces.
type MemFile struct {
	// Data are the file contents.
	Data []byte

	// Offset is the current file offset.
	Offset int64

	// Limit, if positive, is the maximum file size.  Writes which would grow
	// the file beyond this size are truncated and fail with ErrNoSpace.
	Limit int64

	closed bool
}

// New creates a new, empty MemFile.
func New() *MemFile {
	return &MemFile{}
}

// WithLimit creates a new, empty MemFile which can hold at most limit bytes.
func WithLimit(limit int64) *MemFile {
	return &MemFile{Limit: limit}
}

// Write writes data to the file at the current offset.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}

	var err error
	if f.Limit > 0 && f.Offset+int64(len(p)) > f.Limit {
		keep := max(f.Limit-f.Offset, 0)
		p = p[:keep]
		err = ErrNoSpace
	}

	if f.Offset > int64(len(f.Data)) {
		f.Data = append(f.Data, make([]byte, f.Offset-int64(len(f.Data)))...)
	}
	n := copy(f.Data[f.Offset:], p)
	if n < len(p) {
		f.Data = append(f.Data, p[n:]...)
	}
	f.Offset += int64(len(p))
	return len(p), err
}

// Read reads data from the file at the current offset.
// This implements the [io.Reader] interface.
func (f *MemFile) Read(p []byte) (int, error) {
	if f.Offset >= int64(len(f.Data)) {
		return 0, io.EOF
	}
	n := copy(p, f.Data[f.Offset:])
	f.Offset += int64(n)
	return n, nil
}

// ReadAt reads len(p) bytes starting at offset off.
// This implements the [io.ReaderAt] interface.
func (f *MemFile) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errInvalidOffset
	}
	if off >= int64(len(f.Data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, f.Data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Seek sets the offset in the file.
// This implements the [io.Seeker] interface.
func (f *MemFile) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = f.Offset + offset
	case io.SeekEnd:
		newOffset = int64(len(f.Data)) + offset
	default:
		return 0, errInvalidWhence
	}
	if newOffset < 0 {
		return 0, errInvalidOffset
	}
	f.Offset = newOffset
	return newOffset, nil
}

// Size returns the current length of the file.
func (f *MemFile) Size() int64 {
	return int64(len(f.Data))
}

// Close marks the file as closed.  The contents can still be read after
// Close, but further writes fail.
func (f *MemFile) Close() error {
	if f.closed {
		return ErrClosed
	}
	f.closed = true
	return nil
}

var (
	// ErrNoSpace is returned by Write when the size limit is reached.
	ErrNoSpace = errors.New("no space left on device")

	// ErrClosed is returned when writing to or closing a closed file.
	ErrClosed = errors.New("file already closed")

	errInvalidWhence = errors.New("invalid whence")
	errInvalidOffset = errors.New("invalid offset")
)
