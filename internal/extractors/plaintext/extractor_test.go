package plaintext

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

func TestExtract_Success(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		URI:     "/uploads/catatan_kuliah.txt",
		Format:  domain.FormatText,
		Content: []byte("Penelitian ini membahas klasifikasi dokumen."),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "catatan kuliah", doc.Title)
	assert.Equal(t, "Penelitian ini membahas klasifikasi dokumen.", doc.Content)
}

func TestExtract_InvalidUTF8IsReplaced(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		URI:     "/uploads/legacy.txt",
		Format:  domain.FormatText,
		Content: []byte{'o', 'k', 0xff, 0xfe, ' ', 't', 'e', 'x', 't'},
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(doc.Content))
	assert.Contains(t, doc.Content, "ok")
	assert.Contains(t, doc.Content, "text")
}

func TestExtract_InvalidInput(t *testing.T) {
	extractor := New()

	_, err := extractor.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = extractor.Extract(context.Background(), &domain.RawDocument{URI: "x.txt", Format: domain.FormatText})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []domain.Format{domain.FormatText}, New().SupportedFormats())
}
