package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

// createTestDOCX creates a minimal valid DOCX file in memory.
func createTestDOCX(documentXML, coreXML string) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	contentTypes, _ := w.Create("[Content_Types].xml")
	contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))

	if documentXML != "" {
		doc, _ := w.Create("word/document.xml")
		doc.Write([]byte(documentXML))
	}

	if coreXML != "" {
		core, _ := w.Create("docProps/core.xml")
		core.Write([]byte(coreXML))
	}

	w.Close()
	return buf.Bytes()
}

const bodyXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Pendahuluan</w:t></w:r></w:p>
<w:p><w:r><w:t>Penelitian ini membahas </w:t></w:r><w:r><w:t>klasifikasi dokumen.</w:t></w:r></w:p>
</w:body>
</w:document>`

const titleXML = `<?xml version="1.0" encoding="UTF-8"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title>Klasifikasi Dokumen Akademik</dc:title>
</cp:coreProperties>`

func TestExtract_Success(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		URI:     "/uploads/skripsi_final.docx",
		Format:  domain.FormatDOCX,
		Content: createTestDOCX(bodyXML, titleXML),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Klasifikasi Dokumen Akademik", doc.Title)
	assert.Contains(t, doc.Content, "Pendahuluan")
	// Runs within one paragraph join without separators; paragraphs
	// join with newlines.
	assert.Contains(t, doc.Content, "Penelitian ini membahas klasifikasi dokumen.")
	assert.Equal(t, 2, len(bytes.Split([]byte(doc.Content), []byte("\n"))))
}

func TestExtract_TitleFallsBackToFilename(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		URI:     "/uploads/skripsi_final-v2.docx",
		Format:  domain.FormatDOCX,
		Content: createTestDOCX(bodyXML, ""),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, "skripsi final v2", doc.Title)
}

func TestExtract_InvalidInput(t *testing.T) {
	extractor := New()

	tests := []struct {
		name string
		raw  *domain.RawDocument
	}{
		{"nil document", nil},
		{"empty content", &domain.RawDocument{URI: "x.docx", Format: domain.FormatDOCX}},
		{"not a zip", &domain.RawDocument{URI: "x.docx", Format: domain.FormatDOCX, Content: []byte("plain text, not a zip")}},
		{"zip without document xml", &domain.RawDocument{URI: "x.docx", Format: domain.FormatDOCX, Content: createTestDOCX("", "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract(context.Background(), tt.raw)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []domain.Format{domain.FormatDOCX}, New().SupportedFormats())
}
