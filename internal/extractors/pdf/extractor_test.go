package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []domain.Format{domain.FormatPDF}, New().SupportedFormats())
}

func TestExtract_InvalidInput(t *testing.T) {
	extractor := New()

	tests := []struct {
		name string
		raw  *domain.RawDocument
	}{
		{"nil document", nil},
		{"empty content", &domain.RawDocument{URI: "x.pdf", Format: domain.FormatPDF}},
		{"not a pdf", &domain.RawDocument{URI: "x.pdf", Format: domain.FormatPDF, Content: []byte("this is not a pdf")}},
		{"truncated header", &domain.RawDocument{URI: "x.pdf", Format: domain.FormatPDF, Content: []byte("%PDF-1.4\ngarbage")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := extractor.Extract(context.Background(), tt.raw)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, doc)
		})
	}
}

func TestTitleFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"/uploads/skripsi_bab-1.pdf", "skripsi bab 1"},
		{"paper.pdf", "paper"},
		{"/deep/path/My_Thesis_Final.pdf", "My Thesis Final"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleFromURI(tt.uri))
	}
}
