package references

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

func TestExtract_BracketNumbered(t *testing.T) {
	input := "REFERENCES\n[1] Smith, J. (2020). A Study. Journal X. [2] Doe, A. (2019). Another Study."

	records := New().Extract(input)

	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].Ordinal)
	assert.Equal(t, "2", records[1].Ordinal)
	assert.Contains(t, records[0].Text, "2020")
	assert.Contains(t, records[1].Text, "2019")
	for _, rec := range records {
		assert.False(t, strings.HasPrefix(rec.Text, "["), "leading marker survived: %q", rec.Text)
	}
}

func TestExtract_DotNumbered(t *testing.T) {
	input := strings.Join([]string{
		"Daftar Pustaka",
		"1. Smith, J. (2020). A Study of Clustering. Journal X.",
		"2. Doe, A. (2019). Another Study of Methods. Journal Y.",
	}, "\n")

	records := New().Extract(input)

	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].Ordinal)
	assert.True(t, strings.HasPrefix(records[0].Text, "Smith"))
	assert.True(t, strings.HasPrefix(records[1].Text, "Doe"))
}

func TestExtract_NoHeaderReturnsEmpty(t *testing.T) {
	input := "This document discusses clustering at length but cites nothing formally.\nIt has several paragraphs of body text and no bibliography section."

	records := New().Extract(input)

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestExtract_TailKeywordFallback(t *testing.T) {
	filler := strings.Repeat("Body paragraph about document clustering methods.\n", 40)
	input := filler + "Complete references [1] Smith, J. (2020). A Study of Methods. Journal X. [2] Doe, A. (2019). Another Long Study. Journal Y."

	records := New().Extract(input)

	require.Len(t, records, 2)
	assert.Contains(t, records[0].Text, "Smith")
}

func TestExtract_TruncatesAtAppendix(t *testing.T) {
	input := strings.Join([]string{
		"References",
		"[1] Smith, J. (2020). A Study of Clustering. Journal X.",
		"Appendix A",
		"[2] This looks like a reference but sits past the appendix, 2019.",
	}, "\n")

	records := New().Extract(input)

	require.Len(t, records, 1)
	assert.Contains(t, records[0].Text, "Smith")
}

func TestExtract_AuthorYearLines(t *testing.T) {
	input := strings.Join([]string{
		"References",
		"Smith, J. (2020). Understanding document clustering. Journal of",
		"information systems, 12(3), 45-60.",
		"Doe, A. (2019). Neural text segmentation in practice. Journal Y, 8(1), 10-22.",
	}, "\n")

	records := New().Extract(input)

	require.Len(t, records, 2)
	// The lowercase continuation folds back into the first record.
	assert.Contains(t, records[0].Text, "information systems")
	assert.Contains(t, records[1].Text, "Doe")
}

func TestExtract_LowercaseMergeDisabled(t *testing.T) {
	input := strings.Join([]string{
		"References",
		"Smith, J. (2020). Understanding document clustering methods. Journal X.",
		"a long lowercase line that is plainly part of something but not merged here, over twenty chars.",
	}, "\n")

	records := New(WithLowercaseContinuationMerge(false)).Extract(input)

	require.Len(t, records, 2)
	assert.True(t, strings.HasPrefix(records[1].Text, "a long lowercase"))
}

func TestExtract_BlobResegmentation(t *testing.T) {
	input := "REFERENCES\nSmith, J. (2020). A comprehensive study of clustering methods. Journal X, 12, 45-60. Doe, A. (2019). Neural approaches to text segmentation. Journal Y, 8, 10-22."

	records := New().Extract(input)

	require.Len(t, records, 2)
	assert.True(t, strings.HasPrefix(records[0].Text, "Smith, J. (2020)"))
	assert.True(t, strings.HasPrefix(records[1].Text, "Doe, A. (2019)"))
}

func TestMergeContinuations(t *testing.T) {
	chunks := []string{"[1] Author A. pp.", "16-18.", "[2] Author B. 2021."}

	merged := mergeContinuations(chunks)

	require.Len(t, merged, 2)
	assert.Equal(t, "[1] Author A. pp. 16-18.", merged[0])
	assert.Equal(t, "[2] Author B. 2021.", merged[1])
}

func TestMergeContinuations_Openers(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   int
	}{
		{"page range", []string{"Smith, J. (2020). Study. Journal,", "45-60."}, 1},
		{"bare year", []string{"Smith, J. A long study of methods.", "2020. Journal X."}, 1},
		{"vol token", []string{"Smith, J. (2020). Study.", "vol. 12, Journal X."}, 1},
		{"doi token", []string{"Smith, J. (2020). Study.", "doi:10.1000/x"}, 1},
		{"new author is not merged", []string{"Smith, J. (2020). Study.", "Doe, A. (2019). Other."}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, mergeContinuations(tt.chunks), tt.want)
		})
	}
}

func TestExtract_ImplausibleNumberedChunksDropped(t *testing.T) {
	input := strings.Join([]string{
		"References",
		"[1] Smith, J. (2020). A Study of Clustering. Journal X.",
		"[2] this chunk carries no year, author token or metadata at all",
	}, "\n")

	records := New().Extract(input)

	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].Ordinal)
	assert.Contains(t, records[0].Text, "Smith")
}

func TestExtract_ShortChunksDropped(t *testing.T) {
	input := "References\n[1] Too short 2020.\n[2] Doe, A. (2019). A sufficiently long reference entry. Journal Y."

	records := New().Extract(input)

	require.Len(t, records, 1)
	assert.Contains(t, records[0].Text, "Doe")
}

func TestExtract_DeduplicatesRepeatedEntries(t *testing.T) {
	entry := "[1] Smith, J. (2020). A Study of Clustering. Journal X."
	dup := "[2] Smith, J. (2020). A Study of Clustering. Journal X."
	input := "References\n" + entry + "\n" + dup

	records := New().Extract(input)

	require.Len(t, records, 1)
}

func TestExtract_CapsRecordCount(t *testing.T) {
	var b strings.Builder
	b.WriteString("References\n")
	for i := 1; i <= 10; i++ {
		b.WriteString("[1] Author")
		b.WriteByte(byte('A' + i - 1))
		b.WriteString(", X. (2020). Study number entry padding text. Journal.\n")
	}

	records := New(WithMaxRecords(3)).Extract(b.String())

	assert.Len(t, records, 3)
}

func TestExtract_LastHeaderWins(t *testing.T) {
	// A table of contents can mention the section long before it
	// appears; segmentation must start at the real section.
	input := strings.Join([]string{
		"References",
		"This early mention is a table of contents artefact, not entries.",
		strings.Repeat("Body text about clustering.\n", 5),
		"References",
		"[1] Smith, J. (2020). A Study of Clustering. Journal X.",
	}, "\n")

	records := New().Extract(input)

	require.Len(t, records, 1)
	assert.Contains(t, records[0].Text, "Smith")
}

func TestClassifyStyle(t *testing.T) {
	tests := []struct {
		name string
		span string
		want domain.CitationStyle
	}{
		{"bracketed", "[1] Smith, J. (2020). Study.\n[2] Doe, A. (2019). Other.", domain.StyleNumberedBracket},
		{"dotted", "1. Smith, J. (2020). Study.\n2. Doe, A. (2019). Other.", domain.StyleNumberedDot},
		{"author-year lines", "Smith, J. (2020). Study one.\nDoe, A. (2019). Study two.", domain.StyleAuthorYear},
		{"blob", "Smith, J. (2020). Study one. Journal X. Doe, A. (2019). Study two. Journal Y.", domain.StyleBlob},
		{"bracket beats lines", "Smith, J. [1] mentions a marker.\nDoe, A. (2019). Study.", domain.StyleNumberedBracket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStyle(tt.span))
		})
	}
}
