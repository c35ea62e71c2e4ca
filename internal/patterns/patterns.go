package patterns

import (
	"regexp"
	"strings"
)

// FenceMarker delimits a fenced code block.
const FenceMarker = "```"

// minCapsHeadingLen is the minimum length for an all-caps line to count as
// a heuristic heading.
const minCapsHeadingLen = 8

// Match is a half-open [Start, End) character span within the input text.
type Match struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the match.
func (m Match) Len() int { return m.End - m.Start }

// Fenced blocks, interactive prompt lines, function definitions, and
// bracketed assignments.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```.*?```"),
	regexp.MustCompile(`(?m)^[ \t]*>>\s+`),
	regexp.MustCompile(`function\s+\w+\s*\(`),
	regexp.MustCompile(`(?m)^[ \t]*\w+\s*=\s*\[`),
}

// Block and inline math delimiters, LaTeX environments, and common math
// macros.
var formulaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\$\$.*?\$\$`),
	regexp.MustCompile(`\$[^$\n]+\$`),
	regexp.MustCompile(`(?s)\\begin\{equation\}.*?\\end\{equation\}`),
	regexp.MustCompile(`(?s)\\begin\{align\}.*?\\end\{align\}`),
	regexp.MustCompile(`\\frac\{[^}]+\}\{[^}]+\}`),
	regexp.MustCompile(`\\sum_\{[^}]+\}\^\{[^}]+\}`),
	regexp.MustCompile(`\\int_\{[^}]+\}\^\{[^}]+\}`),
}

// Markdown headings at levels 1-4 and all-caps lines of at least
// minCapsHeadingLen characters.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,4}[ \t]+.+$`),
	regexp.MustCompile(`(?m)^[A-Z][A-Z0-9 \t:,&-]{7,}$`),
}

// Code returns match spans for code-like constructs: fenced blocks,
// prompt lines, function definitions, and bracketed assignments.
func Code(text string) []Match {
	return matchAll(codePatterns, text)
}

// Formula returns match spans for mathematical markup: block and inline
// math delimiters, LaTeX environments, and common math macros.
func Formula(text string) []Match {
	return matchAll(formulaPatterns, text)
}

// Heading returns match spans for heading markup: leading # markers at
// levels 1-4 and long all-caps lines.
func Heading(text string) []Match {
	return matchAll(headingPatterns, text)
}

func matchAll(res []*regexp.Regexp, text string) []Match {
	var out []Match
	for _, re := range res {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			out = append(out, Match{Start: loc[0], End: loc[1]})
		}
	}
	return out
}

// MatchedLen sums the lengths of all matches. Spans from different
// patterns may overlap; overlapping lengths are counted once per match,
// mirroring how the ratios are defined.
func MatchedLen(matches []Match) int {
	total := 0
	for _, m := range matches {
		total += m.Len()
	}
	return total
}

// Flags are the chunk-local boolean content markers.
type Flags struct {
	HasCode    bool
	HasFormula bool
	HasHeading bool
}

// DetectFlags reports which pattern families match anywhere in the text.
// A lone fence marker counts as code so that chunks recovered from an
// unterminated fence keep the flag.
func DetectFlags(text string) Flags {
	return Flags{
		HasCode:    len(Code(text)) > 0 || strings.Contains(text, FenceMarker),
		HasFormula: len(Formula(text)) > 0,
		HasHeading: len(Heading(text)) > 0,
	}
}

// BalancedFences reports whether the number of fence markers in the text
// is even, i.e. every opening marker has a matching close.
func BalancedFences(text string) bool {
	return strings.Count(text, FenceMarker)%2 == 0
}

// FenceRegions scans for fenced code regions and pairs markers in order of
// appearance. If the final opening marker has no close, the last region
// extends to the end of the text and unterminated is true. Malformed input
// never causes an error; it simply yields best-effort regions.
func FenceRegions(text string) (regions []Match, unterminated bool) {
	offset := 0
	for {
		open := strings.Index(text[offset:], FenceMarker)
		if open < 0 {
			return regions, false
		}
		start := offset + open
		after := start + len(FenceMarker)
		closeIdx := strings.Index(text[after:], FenceMarker)
		if closeIdx < 0 {
			regions = append(regions, Match{Start: start, End: len(text)})
			return regions, true
		}
		end := after + closeIdx + len(FenceMarker)
		regions = append(regions, Match{Start: start, End: end})
		offset = end
	}
}
