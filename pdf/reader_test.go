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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/brandpdf/internal/debug/memfile"
)

func TestRoundTrip(t *testing.T) {
	f := memfile.New()
	err := writeSample(f, "A (B) C\\D")
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(f, f.Size())
	if err != nil {
		t.Fatal(err)
	}
	if r.Version != V1_4 {
		t.Errorf("wrong version %s", r.Version)
	}
	if r.NumObjects() != 5 {
		t.Errorf("expected 5 objects, got %d", r.NumObjects())
	}
	if d := cmp.Diff(Dict{"Size": Integer(6), "Root": Reference{Number: 1}}, r.Trailer); d != "" {
		t.Errorf("trailer (-want +got):\n%s", d)
	}

	catalog, err := r.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	pages, err := r.GetDict(catalog["Pages"])
	if err != nil {
		t.Fatal(err)
	}
	if pages["Count"] != Integer(1) {
		t.Errorf("wrong page count %v", pages["Count"])
	}
	kids, ok := pages["Kids"].(Array)
	if !ok || len(kids) != 1 {
		t.Fatalf("wrong /Kids %v", pages["Kids"])
	}
	page, err := r.GetDict(kids[0])
	if err != nil {
		t.Fatal(err)
	}
	if page["Parent"] != catalog["Pages"] {
		t.Errorf("page parent %v != %v", page["Parent"], catalog["Pages"])
	}

	box, err := AsRectangle(page["MediaBox"].(Array))
	if err != nil {
		t.Fatal(err)
	}
	if box.URx != 612 || box.URy != 792 {
		t.Errorf("wrong media box %v", box)
	}

	stm, err := r.GetStream(page["Contents"])
	if err != nil {
		t.Fatal(err)
	}
	want := "BT\n/F1 12 Tf\n72 720 Td\n(A \\(B\\) C\\\\D) Tj\nET"
	if d := cmp.Diff(want, string(stm.Data)); d != "" {
		t.Errorf("content stream (-want +got):\n%s", d)
	}
	if stm.Dict["Length"] != Integer(len(stm.Data)) {
		t.Errorf("/Length %v does not match %d data bytes", stm.Dict["Length"], len(stm.Data))
	}
}

func TestOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.pdf")
	err := os.WriteFile(fname, writeTestFile(t, "hello"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 5; i++ {
		_, err := r.Get(Reference{Number: i})
		if err != nil {
			t.Errorf("object %d: %s", i, err)
		}
	}
	_, err = r.Get(Reference{Number: 6})
	if !errors.Is(err, ErrMissingObject) {
		t.Errorf("expected ErrMissingObject, got %v", err)
	}
}

func TestReaderBadOffset(t *testing.T) {
	data := writeTestFile(t, "hello")
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}

	// Make the xref entry for object 2 point to object 3.
	pos2, _ := r.Offset(2)
	pos3, _ := r.Offset(3)
	entry2 := fmt.Sprintf("%010d 00000 n \n", pos2)
	entry3 := fmt.Sprintf("%010d 00000 n \n", pos3)
	broken := bytes.Replace(data, []byte(entry2), []byte(entry3), 1)

	r, err = NewReader(bytes.NewReader(broken), int64(len(broken)))
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Get(Reference{Number: 2})
	var malformed *MalformedFileError
	if !errors.As(err, &malformed) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}
	_, err = r.Get(Reference{Number: 3})
	if err != nil {
		t.Error(err)
	}
}

func TestReaderMalformed(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"%PDF-1.4\n",
		"%PDF-1.4\nstartxref\n0\n%%EOF\n",
		"%PDF-1.4\nxref\n0 1\n0000000000 65535 f \ntrailer\n<< /Size 1 >>\nstartxref\n9\n%%EOF\n",
	}
	for _, test := range cases {
		_, err := NewReader(bytes.NewReader([]byte(test)), int64(len(test)))
		if err == nil {
			t.Errorf("%q: malformed file accepted", test)
		}
	}
}
