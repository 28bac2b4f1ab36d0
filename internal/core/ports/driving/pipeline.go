package driving

import (
	"context"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

// PipelineService exposes the document knowledge-extraction pipeline.
//
// All operations are synchronous and side-effect free; background
// execution, retries and timeouts belong to the caller. Stage-internal
// failures are converted into each stage's defined empty/fallback
// result rather than surfacing as errors.
type PipelineService interface {
	// ExtractText decodes raw file bytes into text.
	// Unreadable input yields domain.ErrInvalidInput.
	ExtractText(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)

	// Normalise removes extraction artifacts from raw text.
	// Pure and idempotent.
	Normalise(text string) string

	// DetectLanguage classifies text as Indonesian or English.
	DetectLanguage(text string) domain.Language

	// ExtractKeywords returns up to topN ranked keyphrases.
	// Never fails; internal errors produce an empty list.
	ExtractKeywords(ctx context.Context, text string, lang domain.Language, topN int) []string

	// Summarise produces a natural-language synthesis of the text,
	// walking the generative -> abstractive -> extractive fallback chain.
	Summarise(ctx context.Context, text string, lang domain.Language) string

	// ExtractReferences segments the bibliography into discrete records.
	// No header evidence yields an empty list.
	ExtractReferences(text string) []domain.Reference

	// Embed produces a fixed-length vector for the bounded core text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch embeds multiple documents, substituting a zero vector
	// for any document whose embedding fails.
	EmbedBatch(ctx context.Context, texts []string) [][]float32

	// SimilarityMatrix computes the pairwise cosine similarity matrix.
	SimilarityMatrix(vectors [][]float32) [][]float64

	// BuildGraph renders threshold-filtered similarity edges.
	BuildGraph(nodes []domain.GraphNode, matrix [][]float64, threshold float64) domain.Graph

	// Process runs the full per-document pipeline: extract, normalise,
	// detect language, keywords, summary, references, embedding.
	Process(ctx context.Context, raw *domain.RawDocument) (*domain.Document, *domain.Analysis, error)
}
