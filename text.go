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
	"errors"
	"fmt"

	"seehuhn.de/go/brandpdf/content"
	"seehuhn.de/go/brandpdf/pdf"
)

var errNotSinglePage = errors.New("document does not have exactly one page")

// ReadText returns the text shown on the page of a single-page PDF file, in
// content stream order.
func ReadText(r *pdf.Reader) ([]content.TextRun, error) {
	catalog, err := r.Catalog()
	if err != nil {
		return nil, err
	}
	pages, err := r.GetDict(catalog["Pages"])
	if err != nil {
		return nil, fmt.Errorf("page tree: %w", err)
	}
	if pages["Type"] != pdf.Name("Pages") {
		return nil, fmt.Errorf("page tree: unexpected /Type %v", pages["Type"])
	}
	kidsObj, err := r.Resolve(pages["Kids"])
	if err != nil {
		return nil, err
	}
	kids, _ := kidsObj.(pdf.Array)
	if pages["Count"] != pdf.Integer(1) || len(kids) != 1 {
		return nil, errNotSinglePage
	}

	var res []content.TextRun
	err = content.ForAllText(r, kids[0], func(run content.TextRun) error {
		res = append(res, run)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
