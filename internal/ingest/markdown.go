// Package ingest turns source documents into spans ready for routing.
// Markdown documents are sectioned on page markers and top-level
// headings; PDFs are extracted one span per page.
package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// pageMarker is the page-break comment written by the PDF-to-markdown
// conversion step.
var pageMarker = regexp.MustCompile(`<!-- Page: (\d+) -->`)

// sectionHeading matches level-1 and level-2 markdown headings, the
// granularity at which concept notes begin new sections.
var sectionHeading = regexp.MustCompile(`(?m)^#{1,2}[ \t]+(.+?)[ \t]*$`)

// Sections splits a markdown document into spans. The document is first
// divided at page markers, carrying the page number onto each span, then
// each page is divided at level-1 and level-2 headings with the heading
// text recorded as the section title. Whitespace-only spans are dropped.
func Sections(doc, source string) []types.Span {
	var spans []types.Span
	for _, pg := range pages(doc) {
		for _, sec := range sections(pg.text) {
			if strings.TrimSpace(sec.text) == "" {
				continue
			}
			spans = append(spans, types.Span{
				Source:       source,
				Page:         pg.number,
				SectionTitle: sec.title,
				Content:      sec.text,
			})
		}
	}
	return spans
}

type page struct {
	number int
	text   string
}

// pages splits the document at page markers. Content before the first
// marker belongs to page 1; the marker line itself is dropped.
func pages(doc string) []page {
	locs := pageMarker.FindAllStringSubmatchIndex(doc, -1)
	if len(locs) == 0 {
		return []page{{number: 1, text: doc}}
	}

	var out []page
	if head := doc[:locs[0][0]]; strings.TrimSpace(head) != "" {
		out = append(out, page{number: 1, text: head})
	}
	for i, loc := range locs {
		num, _ := strconv.Atoi(doc[loc[2]:loc[3]])
		end := len(doc)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, page{number: num, text: doc[loc[1]:end]})
	}
	return out
}

type section struct {
	title string
	text  string
}

// sections splits page text at level-1/2 heading lines. Each section
// starts with its heading; text before the first heading becomes an
// untitled section.
func sections(text string) []section {
	locs := sectionHeading.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return []section{{text: text}}
	}

	var out []section
	if head := text[:locs[0][0]]; strings.TrimSpace(head) != "" {
		out = append(out, section{text: head})
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, section{
			title: text[loc[2]:loc[3]],
			text:  text[loc[0]:end],
		})
	}
	return out
}
