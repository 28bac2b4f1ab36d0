// Package references locates a document's bibliography, classifies its
// citation style and splits it into discrete reference records. It is
// fully deterministic and has no model dependency.
package references

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/logger"
)

// Default segmentation limits.
const (
	// DefaultMinLength is the minimum character length for a record to
	// count as a reference rather than noise.
	DefaultMinLength = 20

	// DefaultMaxRecords caps output against pathological input.
	DefaultMaxRecords = 50

	// tailSearchFraction is the trailing share of the document searched
	// for bibliography keywords when no anchored header is found.
	tailSearchFraction = 0.30

	// dedupePrefixLength is how many characters of each record are
	// compared when discarding duplicates.
	dedupePrefixLength = 100
)

var (
	// headerPattern matches a bibliography heading on its own line,
	// optionally preceded by a section number.
	headerPattern = regexp.MustCompile(`(?im)^\s*(?:(?:\d{1,2}|[IVX]{1,4})[.)]?\s*)?(references|referensi|bibliography|daftar\s+pustaka)\s*$`)

	// tailKeywordPattern is the relaxed fallback used inside the
	// document tail when no anchored heading exists.
	tailKeywordPattern = regexp.MustCompile(`(?i)(references|referensi|bibliography|daftar\s+pustaka)`)

	// endPattern marks the start of a post-bibliography section.
	endPattern = regexp.MustCompile(`(?im)^\s*(appendix|lampiran|acknowledg\w*|ucapan\s+terima\s+kasih|supplementa\w*|about\s+the\s+authors?|biograph\w*|data\s+samples|table\s+\d|figure\s+\d)`)

	// Continuation openers: a chunk starting with one of these belongs
	// to the previous record, not a new one.
	pageRangeStart = regexp.MustCompile(`^\d{1,4}\s*[-\x{2013}]\s*\d{1,4}`)
	bareYearStart  = regexp.MustCompile(`^(19|20)\d{2}\b`)
	metadataStart  = regexp.MustCompile(`(?i)^(vol\.|no\.|pp\.|doi:|isbn)`)

	// Plausibility indicators: a high-confidence record must carry at
	// least one of these.
	yearIndicator     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	etAlIndicator     = regexp.MustCompile(`\bet\s+al\.`)
	metadataIndicator = regexp.MustCompile(`(?i)\b(vol|pp|doi|isbn)\b`)
	urlIndicator      = regexp.MustCompile(`(?i)https?://|www\.`)
	authorIndicator   = regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]\.`)

	// falsePositivePattern rejects structural headings that survive the
	// end-of-bibliography scan.
	falsePositivePattern = regexp.MustCompile(`(?i)^(appendix|lampiran|chapter\s+\d|table\s+of\s+contents|daftar\s+isi)`)

	// Blob re-segmentation break points: a new citation plausibly
	// starts at an author token, an "et al." token or a parenthesised
	// year followed by a capitalised word.
	blobAuthorBreak = regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]\.`)
	blobEtAlBreak   = regexp.MustCompile(`[A-Z][a-z]+\s+et\s+al\.`)
	blobYearBreak   = regexp.MustCompile(`\(\d{4}\)\.?\s+[A-Z]`)

	// initialTail detects an author initial right before a year, so the
	// year break does not tear "Smith, J. (2020)" in two.
	initialTail = regexp.MustCompile(`[A-Z]\.\s*$`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Segmenter splits bibliography text into reference records.
type Segmenter struct {
	minLength      int
	maxRecords     int
	mergeLowercase bool
}

// Option configures the segmenter.
type Option func(*Segmenter)

// WithMinLength sets the minimum record length.
func WithMinLength(n int) Option {
	return func(s *Segmenter) {
		if n > 0 {
			s.minLength = n
		}
	}
}

// WithMaxRecords sets the output cap.
func WithMaxRecords(n int) Option {
	return func(s *Segmenter) {
		if n > 0 {
			s.maxRecords = n
		}
	}
}

// WithLowercaseContinuationMerge controls whether a chunk opening with
// a lowercase letter is merged into the previous record. The merge can
// swallow legitimate short references, so it is explicit configuration.
func WithLowercaseContinuationMerge(enabled bool) Option {
	return func(s *Segmenter) {
		s.mergeLowercase = enabled
	}
}

// New creates a reference segmenter.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{
		minLength:      DefaultMinLength,
		maxRecords:     DefaultMaxRecords,
		mergeLowercase: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract locates the bibliography in the full document text and
// returns its discrete reference records, renumbered sequentially from
// "1". Without header evidence no references are claimed: the result is
// an empty slice, never an error.
func (s *Segmenter) Extract(fullText string) []domain.Reference {
	span, found := s.locateBibliography(fullText)
	if !found {
		return []domain.Reference{}
	}
	span = truncateTail(span)
	if strings.TrimSpace(span) == "" {
		return []domain.Reference{}
	}

	style := ClassifyStyle(span)
	logger.Debug("Bibliography span: %d chars, style %s", len(span), style)

	var chunks []string
	switch style {
	case domain.StyleNumberedBracket:
		chunks = splitNumbered(span, bracketMarker)
	case domain.StyleNumberedDot:
		chunks = splitNumbered(span, dotMarker)
	case domain.StyleAuthorYear:
		chunks = s.splitLines(span)
	default:
		chunks = s.splitLines(resegmentBlob(span))
	}

	chunks = mergeContinuations(chunks)
	records := s.finalise(chunks, style)
	logger.Debug("Segmented %d reference records", len(records))
	return records
}

// locateBibliography returns the text after the bibliography heading.
// An anchored heading is preferred; the last occurrence wins because a
// table of contents can mention "References" long before the section
// itself. Without an anchored heading the trailing portion of the
// document is searched for the same keywords.
func (s *Segmenter) locateBibliography(text string) (string, bool) {
	if locs := headerPattern.FindAllStringIndex(text, -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		return text[last[1]:], true
	}

	tailStart := int(float64(len(text)) * (1 - tailSearchFraction))
	if tailStart >= len(text) {
		return "", false
	}
	tail := text[tailStart:]
	if loc := tailKeywordPattern.FindStringIndex(tail); loc != nil {
		return tail[loc[1]:], true
	}
	return "", false
}

// truncateTail cuts the span at the first marker of a new major section
// so appendices and figure captions never leak into the records.
func truncateTail(span string) string {
	if loc := endPattern.FindStringIndex(span); loc != nil {
		return span[:loc[0]]
	}
	return span
}

// splitNumbered splits on explicit entry markers. Chunk boundaries sit
// immediately before each marker so no record is merged with its
// neighbour or truncated mid-text; the marker itself is stripped.
func splitNumbered(span string, marker *regexp.Regexp) []string {
	locs := marker.FindAllStringIndex(span, -1)
	if len(locs) == 0 {
		return nil
	}

	chunks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(span)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunk := span[loc[1]:end]
		chunks = append(chunks, flatten(chunk))
	}
	return chunks
}

// splitLines treats each non-empty line as a candidate record, folding
// lowercase-opening lines into the previous record when that merge is
// enabled.
func (s *Segmenter) splitLines(span string) []string {
	var chunks []string
	for _, line := range strings.Split(span, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if s.mergeLowercase && len(chunks) > 0 && startsLowercase(line) {
			chunks[len(chunks)-1] = chunks[len(chunks)-1] + " " + line
			continue
		}
		chunks = append(chunks, line)
	}
	return chunks
}

// resegmentBlob inserts synthetic line breaks before plausible citation
// starts so blob text can be split like line-per-reference text. Break
// positions are collected first and applied in one rebuild; a year
// break directly after an author initial is suppressed because that
// position sits inside a single citation, not between two.
func resegmentBlob(span string) string {
	text := flatten(span)

	breaks := make(map[int]struct{})
	for _, loc := range blobAuthorBreak.FindAllStringIndex(text, -1) {
		breaks[loc[0]] = struct{}{}
	}
	for _, loc := range blobEtAlBreak.FindAllStringIndex(text, -1) {
		breaks[loc[0]] = struct{}{}
	}
	for _, loc := range blobYearBreak.FindAllStringIndex(text, -1) {
		if !initialTail.MatchString(text[:loc[0]]) {
			breaks[loc[0]] = struct{}{}
		}
	}

	var b strings.Builder
	b.Grow(len(text) + len(breaks))
	for i, r := range text {
		if _, ok := breaks[i]; ok && i > 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mergeContinuations folds records that open with a page range, a bare
// year or bibliographic metadata tokens into their predecessor. Those
// openings mark text a line break tore off the previous record.
func mergeContinuations(chunks []string) []string {
	var merged []string
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if len(merged) > 0 && isContinuation(chunk) {
			merged[len(merged)-1] = merged[len(merged)-1] + " " + chunk
			continue
		}
		merged = append(merged, chunk)
	}
	return merged
}

func isContinuation(chunk string) bool {
	return pageRangeStart.MatchString(chunk) ||
		bareYearStart.MatchString(chunk) ||
		metadataStart.MatchString(chunk)
}

// finalise applies the plausibility and length filters, discards
// duplicates and renumbers the survivors from "1".
func (s *Segmenter) finalise(chunks []string, style domain.CitationStyle) []domain.Reference {
	records := make([]domain.Reference, 0, len(chunks))
	seen := make(map[string]struct{})

	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) < s.minLength {
			continue
		}
		if falsePositivePattern.MatchString(chunk) {
			continue
		}
		if style.Numbered() && !plausibleReference(chunk) {
			continue
		}

		key := dedupeKey(chunk)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		records = append(records, domain.Reference{Text: chunk})
		if len(records) >= s.maxRecords {
			break
		}
	}

	for i := range records {
		records[i].Ordinal = strconv.Itoa(i + 1)
	}
	return records
}

// plausibleReference checks that a record carries at least one
// bibliographic indicator: a publication year, an author token, an
// "et al.", metadata tokens or a URL.
func plausibleReference(chunk string) bool {
	return yearIndicator.MatchString(chunk) ||
		authorIndicator.MatchString(chunk) ||
		etAlIndicator.MatchString(chunk) ||
		metadataIndicator.MatchString(chunk) ||
		urlIndicator.MatchString(chunk)
}

func dedupeKey(chunk string) string {
	key := strings.ToLower(chunk)
	if len(key) > dedupePrefixLength {
		key = key[:dedupePrefixLength]
	}
	return key
}

func startsLowercase(line string) bool {
	r := []rune(line)[0]
	return r >= 'a' && r <= 'z'
}

// flatten collapses newlines and whitespace runs into single spaces.
func flatten(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

