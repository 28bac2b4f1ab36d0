package services

import (
	"context"
	"errors"
	"time"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driving"
	"github.com/pustaka-labs/naskah/internal/embeddings"
	"github.com/pustaka-labs/naskah/internal/extractors"
	"github.com/pustaka-labs/naskah/internal/keywords"
	"github.com/pustaka-labs/naskah/internal/logger"
	"github.com/pustaka-labs/naskah/internal/references"
	"github.com/pustaka-labs/naskah/internal/similarity"
	"github.com/pustaka-labs/naskah/internal/summary"
	"github.com/pustaka-labs/naskah/internal/textproc"
)

// Ensure Pipeline implements the interface.
var _ driving.PipelineService = (*Pipeline)(nil)

// DefaultTopKeywords is the keyword count Process requests per document.
const DefaultTopKeywords = 10

// Pipeline orchestrates the document knowledge-extraction stages.
// The embedder may be nil when no embedding service is configured;
// every stage that needs it has a deterministic fallback or an empty
// result.
type Pipeline struct {
	registry   *extractors.Registry
	keywords   *keywords.Extractor
	summariser *summary.Summariser
	segmenter  *references.Segmenter
	embedder   *embeddings.Generator
	settings   domain.PipelineSettings
}

// NewPipeline creates a pipeline service from its stage components.
// embedder may be nil.
func NewPipeline(
	registry *extractors.Registry,
	keywordExtractor *keywords.Extractor,
	summariser *summary.Summariser,
	segmenter *references.Segmenter,
	embedder *embeddings.Generator,
	settings domain.PipelineSettings,
) *Pipeline {
	return &Pipeline{
		registry:   registry,
		keywords:   keywordExtractor,
		summariser: summariser,
		segmenter:  segmenter,
		embedder:   embedder,
		settings:   settings,
	}
}

// ExtractText decodes raw file bytes into text.
func (p *Pipeline) ExtractText(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	return p.registry.Extract(ctx, raw)
}

// Normalise removes extraction artifacts from raw text.
func (p *Pipeline) Normalise(text string) string {
	return textproc.Normalise(text)
}

// DetectLanguage classifies text as Indonesian or English.
func (p *Pipeline) DetectLanguage(text string) domain.Language {
	return textproc.DetectLanguageWithThreshold(text, p.settings.MarkerThreshold)
}

// ExtractKeywords returns up to topN ranked keyphrases.
func (p *Pipeline) ExtractKeywords(ctx context.Context, text string, lang domain.Language, topN int) []string {
	return p.keywords.Extract(ctx, text, lang, topN)
}

// Summarise produces a natural-language synthesis of the text.
func (p *Pipeline) Summarise(ctx context.Context, text string, lang domain.Language) string {
	return p.summariser.Summarise(ctx, text, lang)
}

// ExtractReferences segments the bibliography into discrete records.
func (p *Pipeline) ExtractReferences(text string) []domain.Reference {
	return p.segmenter.Extract(text)
}

// Embed produces a fixed-length vector for the bounded core text.
func (p *Pipeline) Embed(ctx context.Context, text string) ([]float32, error) {
	if p.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	return p.embedder.Embed(ctx, text)
}

// EmbedBatch embeds multiple documents, substituting a zero vector for
// any document whose embedding fails. Without an embedding service the
// result is nil; similarity is unavailable offline.
func (p *Pipeline) EmbedBatch(ctx context.Context, texts []string) [][]float32 {
	if p.embedder == nil {
		return nil
	}
	vectors, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		logger.Warn("Batch embedding failed: %v", err)
		return nil
	}
	return vectors
}

// SimilarityMatrix computes the pairwise cosine similarity matrix.
func (p *Pipeline) SimilarityMatrix(vectors [][]float32) [][]float64 {
	return similarity.Matrix(vectors)
}

// BuildGraph renders threshold-filtered similarity edges. A threshold
// of zero or below uses the configured default.
func (p *Pipeline) BuildGraph(nodes []domain.GraphNode, matrix [][]float64, threshold float64) domain.Graph {
	if threshold <= 0 {
		threshold = p.settings.SimilarityThreshold
	}
	return similarity.BuildGraph(nodes, matrix, threshold)
}

// Process runs the full per-document pipeline. Extraction failure is
// the only fatal outcome; every later stage degrades to its defined
// empty or fallback result.
func (p *Pipeline) Process(ctx context.Context, raw *domain.RawDocument) (*domain.Document, *domain.Analysis, error) {
	started := time.Now()

	logger.Section("Extract")
	doc, err := p.ExtractText(ctx, raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			logger.Warn("Extraction produced nothing usable for %s: %v", raw.URI, err)
		}
		return nil, nil, err
	}

	logger.Section("Normalise")
	doc.Content = p.Normalise(doc.Content)
	core := textproc.LocateCoreSection(doc.Content)

	lang := p.DetectLanguage(doc.Content)
	logger.Debug("Detected language: %s", lang)

	logger.Section("Keywords")
	kws := p.ExtractKeywords(ctx, core, lang, DefaultTopKeywords)
	logger.Debug("Extracted %d keywords", len(kws))

	logger.Section("Summary")
	summaryText := p.Summarise(ctx, core, lang)

	logger.Section("References")
	refs := p.ExtractReferences(doc.Content)
	logger.Debug("Segmented %d references", len(refs))

	analysis := &domain.Analysis{
		DocumentID: doc.ID,
		Language:   lang,
		Keywords:   kws,
		Summary:    summaryText,
		References: refs,
	}

	if p.embedder != nil {
		logger.Section("Embedding")
		vec, err := p.Embed(ctx, core)
		if err != nil {
			logger.Warn("Embedding failed for %s: %v", doc.ID, err)
		} else {
			analysis.Embedding = vec
		}
	}

	logger.Info("Processed %s in %s", raw.URI, time.Since(started).Round(time.Millisecond))
	return doc, analysis, nil
}
