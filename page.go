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
	"time"

	"seehuhn.de/go/brandpdf/content"
	"seehuhn.de/go/brandpdf/pdf"
)

// DefaultFileName is the name of the generated file.
const DefaultFileName = "branding_page.pdf"

// Page holds the text shown on the branding page.
type Page struct {
	// Title is shown in large type at the top of the page.
	Title string

	// Body lines are shown below the timestamp, one per line.  Empty
	// strings produce blank lines.
	Body []string
}

// DefaultPage is the branding page for the workshop submission.
var DefaultPage = &Page{
	Title: "Robbie McCutcheon — Frontend Workshop Branding",
	Body: []string{
		"About:",
		"I am a frontend engineer focused on building clean, performant web experiences. This page is a professional branding sample for the FrontEndWorkshop assignment.",
		"",
		"Selected highlights:",
		"- Design systems and component libraries for accessible products",
		"- Performance-driven single-page apps",
		"- Mentoring and workshops teaching HTML/CSS/React",
		"",
		"Contact:",
		"robbiem@example.com",
		"",
		"Repository (replace with your repo URL after publishing): https://github.com/YOUR-USERNAME/YOUR-REPO",
	},
}

// Timestamp returns the text of the line which records when the document
// was generated.  This line is shown directly below the title and is the
// only place where the generation time appears on the page.
func Timestamp(now time.Time) string {
	return "Generated: " + now.UTC().Format("2006-01-02 15:04:05") + " UTC"
}

// Contents returns the content stream for the page: the title, the
// timestamp line below it, and the body text as a single block.  If p is
// nil, DefaultPage is used.
func (p *Page) Contents(l *Layout, now time.Time) (content.Stream, error) {
	if p == nil {
		p = DefaultPage
	}
	if l == nil {
		l = DefaultLayout
	}

	body := make([]pdf.String, len(p.Body))
	for i, line := range p.Body {
		body[i] = content.WinAnsiEncode(line)
	}

	b := content.New()
	b.TextLine(l.Font, l.TitleSize, l.Origin, content.WinAnsiEncode(p.Title))
	b.TextLine(l.Font, l.StampSize, l.stampOrigin(), content.WinAnsiEncode(Timestamp(now)))
	b.TextBlock(l.Font, l.BodySize, l.Leading, l.bodyOrigin(), body)
	return b.Harvest()
}
