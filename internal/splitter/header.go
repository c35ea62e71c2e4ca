package splitter

import (
	"regexp"
	"strings"
)

var headingLine = regexp.MustCompile(`^(#{1,4})[ \t]+(.+?)\s*$`)

// Header is the header-hierarchy strategy. It segments at markdown
// heading markers (levels 1-4), keeping each heading together with its
// body text. A section larger than the target size is subdivided by the
// character-window rule, with the heading retained in each sub-piece's
// SectionTitle rather than duplicated into the body.
type Header struct {
	size   int
	window *Window
}

// NewHeader creates a header-hierarchy splitter. minSize is the floor
// applied when an oversized section is window-subdivided.
func NewHeader(size, overlap, minSize int) *Header {
	if size <= 0 {
		size = 1000
	}
	return &Header{size: size, window: NewWindow(size, overlap, minSize)}
}

func (h *Header) Name() string { return "header_hierarchy" }

type headerSection struct {
	title string
	text  string
}

// Split cuts the text into heading-delimited sections, then window-splits
// any section that exceeds the target size. Sections tile the input: the
// heading line itself stays in the body of its section (once), and every
// piece from that section carries the heading text as metadata.
func (h *Header) Split(text string) []Piece {
	if len(text) == 0 {
		return nil
	}

	sections := h.sections(text)

	var pieces []Piece
	for _, sec := range sections {
		if len(sec.text) <= h.size {
			pieces = append(pieces, Piece{Text: sec.text, SectionTitle: sec.title})
			continue
		}
		for _, sub := range h.window.Split(sec.text) {
			sub.SectionTitle = sec.title
			pieces = append(pieces, sub)
		}
	}

	return pieces
}

// sections splits at every heading line. Text before the first heading
// forms an untitled preamble section.
func (h *Header) sections(text string) []headerSection {
	lines := strings.SplitAfter(text, "\n")

	var sections []headerSection
	var current strings.Builder
	title := ""
	started := false

	flush := func() {
		if current.Len() == 0 {
			return
		}
		sections = append(sections, headerSection{title: title, text: current.String()})
		current.Reset()
	}

	for _, line := range lines {
		if m := headingLine.FindStringSubmatch(strings.TrimRight(line, "\n")); m != nil {
			if started {
				flush()
			}
			title = m[2]
			started = true
		}
		current.WriteString(line)
		started = started || len(strings.TrimSpace(line)) > 0
	}
	flush()

	return sections
}
