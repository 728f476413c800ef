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

// Branding-page writes a one-page PDF branding sheet.
//
// The file branding_page.pdf is created in the directory which contains the
// executable.  An existing file of the same name is overwritten.  If the
// executable is located inside the temporary directory, as is the case for
// "go run", the file is written to the current working directory instead.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seehuhn.de/go/brandpdf"
)

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outName, err := outputPath()
	if err != nil {
		return err
	}

	data, err := brandpdf.Generate(brandpdf.DefaultPage, brandpdf.DefaultLayout, time.Now())
	if err != nil {
		return err
	}
	err = brandpdf.WriteFile(outName, data)
	if err != nil {
		return err
	}

	fmt.Println("Wrote", outName)
	return nil
}

// outputPath returns the location of the output file, next to the
// executable.
func outputPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	dir := filepath.Dir(exe)

	tmp := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		tmp = resolved
	}
	if isWithin(dir, tmp) {
		dir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, brandpdf.DefaultFileName), nil
}

// isWithin reports whether dir equals base or is a subdirectory of base.
func isWithin(dir, base string) bool {
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
