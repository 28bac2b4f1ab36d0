package textproc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ligatures maps typographic ligature codepoints to ASCII expansions.
// PDF extraction leaves these in the text whenever the source font
// used ligature glyphs.
var ligatures = strings.NewReplacer(
	"ﬀ", "ff",
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"ﬅ", "ft",
	"ﬆ", "st",
	"Œ", "OE",
	"œ", "oe",
	"Æ", "AE",
	"æ", "ae",
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
)

var (
	// cidPattern matches unresolvable glyph placeholders that some
	// PDF extractors emit for embedded fonts: (cid:123).
	cidPattern = regexp.MustCompile(`\(cid:\d+\)`)

	// hyphenBreakPattern matches a word hyphenated across a line
	// break: "word-\nbreak". Both sides must be alphabetic and the
	// continuation lowercase, so legitimate compound terms that start
	// a new line capitalised are left alone.
	hyphenBreakPattern = regexp.MustCompile(`([A-Za-z])-\s*\n\s*([a-z])`)

	// pageNumberLine matches a line consisting solely of a short integer.
	pageNumberLine = regexp.MustCompile(`^\s*\d{1,4}\s*$`)

	// innerSpacePattern collapses runs of spaces and tabs within a line.
	innerSpacePattern = regexp.MustCompile(`[ \t]{2,}`)
)

// noiseLineMaxLen bounds boilerplate line matching: headers, footers
// and front-matter credits are short, and the length guard keeps the
// patterns from eating body sentences that merely mention a journal
// or a university.
const noiseLineMaxLen = 120

// noiseLinePatterns recognise publisher and journal boilerplate that
// PDF extraction interleaves with body text: copyright notices,
// licensing footers, identifier prefixes, submission-date lines,
// affiliation lines and correspondence markers.
var noiseLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)copyright|\(c\)\s*\d{4}|©`),
	regexp.MustCompile(`(?i)all rights reserved`),
	regexp.MustCompile(`(?i)authorized licensed use limited to`),
	regexp.MustCompile(`(?i)^\s*(e-?issn|p-?issn|issn|isbn)\b`),
	regexp.MustCompile(`(?i)^\s*doi\s*:`),
	regexp.MustCompile(`(?i)^\s*https?://(dx\.)?doi\.org/`),
	regexp.MustCompile(`(?i)\b(received|revised|accepted|published)\b.*\b(19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)\b(diterima|direvisi|disetujui|diterbitkan)\b.*\b(19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)^\s*(department|faculty|school)\s+of\b`),
	regexp.MustCompile(`(?i)^\s*(universit(y|as|i)|institut|politeknik|fakultas|jurusan|program\s+studi)\b`),
	regexp.MustCompile(`(?i)corresponding\s+author|penulis\s+korespondensi`),
	regexp.MustCompile(`(?i)^\s*e-?mail\s*:`),
	regexp.MustCompile(`(?i)^\s*(jurnal|journal\s+of|international\s+journal|proceedings\s+of|ieee\s+transactions)\b`),
	regexp.MustCompile(`(?i)^\s*vol\.?\s*\d+\s*,?\s*no\.?\s*\d+`),
	regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.]+`),
}

// Normalise removes text-extraction artifacts from raw document text.
//
// It folds ligatures, strips control characters and CID placeholders,
// rejoins words hyphenated across line breaks, drops page-number-only
// lines and recognised publisher boilerplate, and collapses whitespace.
//
// The transform is idempotent and never fails: malformed input comes
// back best-effort cleaned.
func Normalise(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = stripControl(text)
	text = ligatures.Replace(text)
	text = norm.NFKC.String(text)
	text = cidPattern.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(innerSpacePattern.ReplaceAllString(line, " "))
		if line == "" {
			// Keep at most one blank line between paragraphs.
			if !blank && len(kept) > 0 {
				kept = append(kept, "")
				blank = true
			}
			continue
		}
		if pageNumberLine.MatchString(line) {
			continue
		}
		if isNoiseLine(line) {
			continue
		}
		kept = append(kept, line)
		blank = false
	}

	// Trim a trailing blank line left by the paragraph rule.
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}

	// Rejoin hyphenated words only after line filtering, so a page
	// number or boilerplate line sitting between the two word halves
	// cannot block the join.
	return hyphenBreakPattern.ReplaceAllString(strings.Join(kept, "\n"), "$1$2")
}

// stripControl removes control characters, keeping newlines and tabs.
func stripControl(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || r == '�' {
			return -1
		}
		return r
	}, text)
}

// isNoiseLine reports whether a line is recognised publisher or
// journal boilerplate. Long lines are never treated as noise.
func isNoiseLine(line string) bool {
	if len(line) > noiseLineMaxLen {
		return false
	}
	for _, pattern := range noiseLinePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
