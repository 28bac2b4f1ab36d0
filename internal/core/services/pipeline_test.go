package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/embeddings"
	"github.com/pustaka-labs/naskah/internal/extractors"
	"github.com/pustaka-labs/naskah/internal/keywords"
	"github.com/pustaka-labs/naskah/internal/references"
	"github.com/pustaka-labs/naskah/internal/summary"
)

// stubExtractor decodes txt fixtures without touching real parsers.
type stubExtractor struct {
	err error
}

func (s *stubExtractor) SupportedFormats() []domain.Format {
	return []domain.Format{domain.FormatText}
}

func (s *stubExtractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Document{
		ID:      "doc-1",
		URI:     raw.URI,
		Title:   "stub",
		Content: string(raw.Content),
	}, nil
}

// mockEmbeddingService returns fixed-size vectors without a network.
type mockEmbeddingService struct {
	dims   int
	embeds int
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	m.embeds++
	vec := make([]float32, m.dims)
	vec[0] = 1
	return vec, nil
}

func (m *mockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i], _ = m.Embed(ctx, texts[i])
	}
	return out, nil
}

func (m *mockEmbeddingService) Dimensions() int              { return m.dims }
func (m *mockEmbeddingService) ModelName() string            { return "mock" }
func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error                 { return nil }

const thesisFixture = `Introduction
In this paper, we propose a method for classifying academic documents using term statistics. The method was evaluated on a corpus of student theses collected from two campuses. The results show that the approach achieves strong accuracy on held-out documents.

References
[1] Smith, J. (2020). Document classification methods. Journal of Computing Research, 14(2), 101-118.
[2] Tan, W. (2021). Text mining for student theses. Proceedings of the Text Analytics Conference.
`

func newOfflinePipeline() *Pipeline {
	registry := extractors.NewRegistry()
	registry.Register(&stubExtractor{})

	return NewPipeline(
		registry,
		keywords.New(nil),
		summary.New(nil, nil),
		references.New(),
		nil,
		domain.DefaultAppSettings().Pipeline,
	)
}

func TestPipeline_Process_Offline(t *testing.T) {
	p := newOfflinePipeline()

	raw := &domain.RawDocument{
		URI:     "thesis.txt",
		Format:  domain.FormatText,
		Content: []byte(thesisFixture),
	}

	doc, analysis, err := p.Process(context.Background(), raw)

	require.NoError(t, err)
	require.NotNil(t, doc)
	require.NotNil(t, analysis)

	assert.Equal(t, doc.ID, analysis.DocumentID)
	assert.Equal(t, domain.LanguageEnglish, analysis.Language)
	assert.NotEmpty(t, analysis.Keywords)
	assert.NotEmpty(t, analysis.Summary)
	assert.NotEqual(t, summary.FailedSummary, analysis.Summary)
	require.Len(t, analysis.References, 2)
	assert.Equal(t, "1", analysis.References[0].Ordinal)
	assert.Nil(t, analysis.Embedding)
}

func TestPipeline_Process_ExtractionFailure(t *testing.T) {
	registry := extractors.NewRegistry()
	registry.Register(&stubExtractor{err: domain.ErrInvalidInput})

	p := NewPipeline(
		registry,
		keywords.New(nil),
		summary.New(nil, nil),
		references.New(),
		nil,
		domain.DefaultAppSettings().Pipeline,
	)

	raw := &domain.RawDocument{
		URI:     "broken.txt",
		Format:  domain.FormatText,
		Content: []byte("x"),
	}

	doc, analysis, err := p.Process(context.Background(), raw)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, doc)
	assert.Nil(t, analysis)
}

func TestPipeline_Process_UnsupportedFormat(t *testing.T) {
	p := newOfflinePipeline()

	raw := &domain.RawDocument{
		URI:     "thesis.epub",
		Format:  domain.Format("epub"),
		Content: []byte("irrelevant"),
	}

	_, _, err := p.Process(context.Background(), raw)

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestPipeline_Process_WithEmbedder(t *testing.T) {
	registry := extractors.NewRegistry()
	registry.Register(&stubExtractor{})

	svc := &mockEmbeddingService{dims: 4}
	p := NewPipeline(
		registry,
		keywords.New(nil),
		summary.New(nil, nil),
		references.New(),
		embeddings.New(svc, nil),
		domain.DefaultAppSettings().Pipeline,
	)

	raw := &domain.RawDocument{
		URI:     "thesis.txt",
		Format:  domain.FormatText,
		Content: []byte(thesisFixture),
	}

	_, analysis, err := p.Process(context.Background(), raw)

	require.NoError(t, err)
	require.NotNil(t, analysis)
	assert.Len(t, analysis.Embedding, 4)
}

func TestPipeline_Embed_WithoutService(t *testing.T) {
	p := newOfflinePipeline()

	_, err := p.Embed(context.Background(), "some text")

	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestPipeline_EmbedBatch_WithoutService(t *testing.T) {
	p := newOfflinePipeline()

	vectors := p.EmbedBatch(context.Background(), []string{"a", "b"})

	assert.Nil(t, vectors)
}

func TestPipeline_BuildGraph_DefaultThreshold(t *testing.T) {
	p := newOfflinePipeline()

	nodes := []domain.GraphNode{{ID: "a"}, {ID: "b"}}
	matrix := [][]float64{
		{1.0, 0.35},
		{0.35, 1.0},
	}

	// Threshold zero falls back to the configured 0.30 default.
	graph := p.BuildGraph(nodes, matrix, 0)

	require.Len(t, graph.Edges, 1)
	assert.InDelta(t, 0.35, graph.Edges[0].Weight, 1e-9)
}

func TestPipeline_DetectLanguage_UsesConfiguredThreshold(t *testing.T) {
	registry := extractors.NewRegistry()
	settings := domain.DefaultAppSettings().Pipeline
	settings.MarkerThreshold = 2

	p := NewPipeline(
		registry,
		keywords.New(nil),
		summary.New(nil, nil),
		references.New(),
		nil,
		settings,
	)

	// Two marker words meet the lowered threshold.
	assert.Equal(t, domain.LanguageIndonesian, p.DetectLanguage("penelitian ini membahas klasifikasi"))
}
