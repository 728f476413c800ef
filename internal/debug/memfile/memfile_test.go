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
	"testing"
)

func TestReadAt(t *testing.T) {
	f := New()
	_, err := f.Write([]byte("hello world"))
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 5)
	n, err := f.ReadAt(buf, 6)
	if err != nil || n != 5 || string(buf) != "world" {
		t.Errorf("ReadAt = %d %v %q", n, err, buf)
	}

	n, err = f.ReadAt(buf, 8)
	if err != io.EOF || n != 3 {
		t.Errorf("short ReadAt = %d %v", n, err)
	}
}

func TestLimit(t *testing.T) {
	f := WithLimit(8)
	n, err := f.Write([]byte("12345"))
	if err != nil || n != 5 {
		t.Fatalf("first write: %d %v", n, err)
	}
	n, err = f.Write([]byte("67890"))
	if !errors.Is(err, ErrNoSpace) {
		t.Errorf("expected ErrNoSpace, got %v", err)
	}
	if n != 3 || string(f.Data) != "12345678" {
		t.Errorf("wrong partial write: %d %q", n, f.Data)
	}
}

func TestWriteAfterClose(t *testing.T) {
	f := New()
	err := f.Close()
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Write([]byte("x"))
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestSeekOverwrite(t *testing.T) {
	f := New()
	f.Write([]byte("abcdef"))
	_, err := f.Seek(2, io.SeekStart)
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte("XY"))
	if string(f.Data) != "abXYef" {
		t.Errorf("got %q", f.Data)
	}

	_, err = f.Seek(-1, io.SeekStart)
	if err == nil {
		t.Error("negative offset accepted")
	}
}
