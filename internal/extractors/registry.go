// Package extractors provides implementations of the Extractor
// interface for the supported upload formats. Each extractor knows how
// to decode one format into plain text.
//
// Extractors are registered with the Registry at startup.
package extractors

import (
	"context"
	"fmt"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
)

// Registry dispatches raw documents to the extractor registered for
// their format.
type Registry struct {
	byFormat map[domain.Format]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		byFormat: make(map[domain.Format]driven.Extractor),
	}
}

// Register adds an extractor for every format it supports. A later
// registration for the same format wins.
func (r *Registry) Register(extractor driven.Extractor) {
	for _, format := range extractor.SupportedFormats() {
		r.byFormat[format] = extractor
	}
}

// SupportedFormats returns the formats with a registered extractor.
func (r *Registry) SupportedFormats() []domain.Format {
	formats := make([]domain.Format, 0, len(r.byFormat))
	for format := range r.byFormat {
		formats = append(formats, format)
	}
	return formats
}

// Extract decodes the raw document with the extractor registered for
// its format.
func (r *Registry) Extract(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	extractor, ok := r.byFormat[raw.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, raw.Format)
	}
	return extractor.Extract(ctx, raw)
}
