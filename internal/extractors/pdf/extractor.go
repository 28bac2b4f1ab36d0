// Package pdf extracts text from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedFormats returns the formats this extractor handles.
func (e *Extractor) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatPDF}
}

// Extract decodes PDF bytes into a document. Corrupt or encrypted
// input yields domain.ErrInvalidInput, never a panic.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil || len(raw.Content) == 0 {
		return nil, domain.ErrInvalidInput
	}

	content, err := extractText(raw.Content)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	return &domain.Document{
		ID:        uuid.New().String(),
		URI:       raw.URI,
		Title:     titleFromURI(raw.URI),
		Content:   content,
		Metadata:  raw.Metadata,
		CreatedAt: time.Now(),
	}, nil
}

// extractText reads the plain text of every page. The underlying
// parser panics on some malformed xref tables, so the panic is
// converted to an error here.
func extractText(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.ErrInvalidInput
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// titleFromURI derives a readable title from the file name.
func titleFromURI(uri string) string {
	filename := filepath.Base(uri)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return strings.TrimSpace(filename)
}
