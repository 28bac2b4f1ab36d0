package domain

// Reference is a single segmented bibliography entry.
type Reference struct {
	// Ordinal is the sequential record number, reassigned after
	// segmentation starting at "1". Original marker numbers are
	// discarded once splitting is validated.
	Ordinal string

	// Text is the full citation text. When a continuation heuristic
	// fires this is the concatenation of what was originally split
	// across multiple physical lines.
	Text string
}

// CitationStyle classifies how a bibliography renders its entries.
// The segmenter threads this tag through its splitting rules so each
// style's behaviour is independently testable.
type CitationStyle string

// Recognised citation styles.
const (
	// StyleNumberedBracket marks entries with bracketed numbers: [12].
	StyleNumberedBracket CitationStyle = "numbered_bracket"

	// StyleNumberedDot marks entries with dotted numbers: 12.
	StyleNumberedDot CitationStyle = "numbered_dot"

	// StyleAuthorYear has unnumbered entries, one per line, in
	// author-year (Harvard) form.
	StyleAuthorYear CitationStyle = "author_year"

	// StyleBlob is a bibliography rendered as unbroken running text
	// with no numbering or reliable line breaks between entries.
	StyleBlob CitationStyle = "blob"
)

// IsValid returns true if the citation style is recognised.
func (s CitationStyle) IsValid() bool {
	switch s {
	case StyleNumberedBracket, StyleNumberedDot, StyleAuthorYear, StyleBlob:
		return true
	default:
		return false
	}
}

// Numbered returns true for styles that carry explicit entry markers.
func (s CitationStyle) Numbered() bool {
	return s == StyleNumberedBracket || s == StyleNumberedDot
}

// String returns the string representation.
func (s CitationStyle) String() string {
	return string(s)
}

// Description returns a human-readable description of the style.
func (s CitationStyle) Description() string {
	switch s {
	case StyleNumberedBracket:
		return "Numbered (bracketed: [1])"
	case StyleNumberedDot:
		return "Numbered (dotted: 1.)"
	case StyleAuthorYear:
		return "Author-year (one entry per line)"
	case StyleBlob:
		return "Unstructured running text"
	default:
		return unknownDescription
	}
}
