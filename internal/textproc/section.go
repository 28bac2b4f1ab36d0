package textproc

import "regexp"

var (
	// introPattern matches an Introduction heading, optionally
	// numbered with arabic or roman numerals: "1. Introduction",
	// "I. Introduction", "PENDAHULUAN".
	introPattern = regexp.MustCompile(`(?i)(?:^|\n)\s*(?:(?:\d{1,2}|[IVX]{1,4})[.)]?\s*)?(?:introduction|pendahuluan)\b`)

	// abstractPattern matches an Abstract heading.
	abstractPattern = regexp.MustCompile(`(?i)(?:^|\n)\s*(?:abstract|abstrak)\b`)
)

// LocateCoreSection bounds the text region used for keyword, summary
// and embedding generation, discarding front-matter noise (title page,
// author list, table of contents).
//
// It returns the suffix of the input starting at the Introduction
// heading, falling back to the Abstract heading, falling back to the
// whole input. The result is always a suffix of the input; text is
// never reordered or fabricated.
func LocateCoreSection(text string) string {
	if loc := introPattern.FindStringIndex(text); loc != nil {
		return text[loc[0]:]
	}
	if loc := abstractPattern.FindStringIndex(text); loc != nil {
		return text[loc[0]:]
	}
	return text
}
