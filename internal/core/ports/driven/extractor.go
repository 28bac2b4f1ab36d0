package driven

import (
	"context"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

// Extractor decodes raw uploaded bytes into document text.
// Each extractor handles specific file formats (PDF, DOCX, plain text).
type Extractor interface {
	// SupportedFormats returns the formats this extractor handles.
	SupportedFormats() []domain.Format

	// Extract decodes a raw document into text.
	// Unreadable input returns domain.ErrInvalidInput; the caller
	// treats that as "nothing to do", never as a fatal pipeline error.
	Extract(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
