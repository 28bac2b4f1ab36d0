package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCitationStyle_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		style CitationStyle
		want  bool
	}{
		{"numbered bracket", StyleNumberedBracket, true},
		{"numbered dot", StyleNumberedDot, true},
		{"author year", StyleAuthorYear, true},
		{"blob", StyleBlob, true},
		{"empty", CitationStyle(""), false},
		{"unknown", CitationStyle("footnote"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.IsValid())
		})
	}
}

func TestCitationStyle_Numbered(t *testing.T) {
	assert.True(t, StyleNumberedBracket.Numbered())
	assert.True(t, StyleNumberedDot.Numbered())
	assert.False(t, StyleAuthorYear.Numbered())
	assert.False(t, StyleBlob.Numbered())
}

func TestCitationStyle_Description(t *testing.T) {
	for _, style := range []CitationStyle{
		StyleNumberedBracket, StyleNumberedDot, StyleAuthorYear, StyleBlob,
	} {
		assert.NotEqual(t, "Unknown", style.Description())
	}
	assert.Equal(t, "Unknown", CitationStyle("footnote").Description())
}
