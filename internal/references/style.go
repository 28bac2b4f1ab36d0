package references

import (
	"regexp"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

// styleSampleSize is how many characters of the bibliography span are
// inspected when classifying its citation style.
const styleSampleSize = 1000

var (
	// bracketMarker matches a bracket-numbered entry marker: [12].
	bracketMarker = regexp.MustCompile(`\[\d{1,3}\]\s*`)

	// dotMarker matches a dot- or parenthesis-numbered entry marker at
	// the start of a line: "12. " or "12) ". Line anchoring keeps years
	// and page numbers inside running text from counting as markers.
	dotMarker = regexp.MustCompile(`(?m)^\s*\d{1,3}[.)]\s+`)

	// authorStart matches an author-year entry opening: "Smith, J."
	authorStart = regexp.MustCompile(`^[A-Z][a-z]+,\s*[A-Z]\.`)
)

// ClassifyStyle inspects the first portion of a bibliography span and
// returns its citation style. When the evidence is ambiguous a numbered
// style wins over an unnumbered one: explicit markers are the most
// reliable split signal available.
func ClassifyStyle(span string) domain.CitationStyle {
	sample := span
	if len(sample) > styleSampleSize {
		sample = sample[:styleSampleSize]
	}

	if len(bracketMarker.FindAllStringIndex(sample, -1)) > 0 {
		return domain.StyleNumberedBracket
	}
	if len(dotMarker.FindAllStringIndex(sample, -1)) > 0 {
		return domain.StyleNumberedDot
	}

	// Unnumbered: if enough lines open like author-year citations the
	// span is line-per-reference, otherwise it is running text.
	lines := nonEmptyLines(sample)
	authorLines := 0
	for _, line := range lines {
		if authorStart.MatchString(line) {
			authorLines++
		}
	}
	if len(lines) >= 2 && authorLines*2 >= len(lines) {
		return domain.StyleAuthorYear
	}
	return domain.StyleBlob
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
