package keywords

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

// mockEmbedder is a test double for the embedding service. It maps
// each input to a fixed 4-dimensional vector keyed by the tokens the
// input contains, so cosine ranking is deterministic.
type mockEmbedder struct {
	err   error
	calls int
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.vectorFor(text), nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = m.vectorFor(t)
	}
	return out, nil
}

// vectorFor maps topical token groups onto axes: clustering terms on
// axis 0, farming terms on axis 1, everything else on axis 2.
func (m *mockEmbedder) vectorFor(text string) []float32 {
	lower := strings.ToLower(text)
	vec := []float32{0, 0, 0, 0}
	for _, w := range []string{"cluster", "clustering", "document", "similarity"} {
		if strings.Contains(lower, w) {
			vec[0]++
		}
	}
	for _, w := range []string{"farm", "crop", "harvest"} {
		if strings.Contains(lower, w) {
			vec[1]++
		}
	}
	if vec[0] == 0 && vec[1] == 0 {
		vec[2] = 1
	}
	return vec
}

func (m *mockEmbedder) Dimensions() int                 { return 4 }
func (m *mockEmbedder) ModelName() string               { return "mock" }
func (m *mockEmbedder) Ping(ctx context.Context) error  { return nil }
func (m *mockEmbedder) Close() error                    { return nil }

const englishSample = `Document clustering groups similar documents together.
The clustering algorithm computes document similarity from embeddings.
Document clustering is evaluated on benchmark corpora.`

func TestExtract_FrequencyFallback(t *testing.T) {
	extractor := New(nil)

	keywords := extractor.Extract(context.Background(), englishSample, domain.LanguageEnglish, 5)

	require.NotEmpty(t, keywords)
	assert.LessOrEqual(t, len(keywords), 5)
	assert.Contains(t, keywords, "clustering")
	assert.Contains(t, keywords, "document")
}

func TestExtract_SemanticPath(t *testing.T) {
	embedder := &mockEmbedder{}
	extractor := New(embedder)

	keywords := extractor.Extract(context.Background(), englishSample, domain.LanguageEnglish, 5)

	require.NotEmpty(t, keywords)
	assert.LessOrEqual(t, len(keywords), 5)
	assert.Equal(t, 1, embedder.calls, "one batch call expected")
	// Topical phrases must outrank off-topic ones.
	assert.Contains(t, strings.Join(keywords, " "), "clustering")
}

func TestExtract_EmbedderErrorFallsBackToFrequency(t *testing.T) {
	embedder := &mockEmbedder{err: errors.New("connection refused")}
	extractor := New(embedder)

	keywords := extractor.Extract(context.Background(), englishSample, domain.LanguageEnglish, 5)

	// Never aborts: the frequency path still produces keywords.
	require.NotEmpty(t, keywords)
	assert.Contains(t, keywords, "clustering")
}

func TestExtract_IndonesianUsesLightweightPath(t *testing.T) {
	embedder := &mockEmbedder{}
	extractor := New(embedder)

	text := `Penelitian ini menggunakan machine learning dan deep learning untuk klasifikasi dokumen.
Machine learning adalah teknologi penting dalam pengolahan bahasa alami.
Hasil penelitian menunjukkan bahwa deep learning memberikan akurasi lebih tinggi.`

	keywords := extractor.Extract(context.Background(), text, domain.LanguageIndonesian, 5)

	require.NotEmpty(t, keywords)
	assert.LessOrEqual(t, len(keywords), 5)
	assert.Zero(t, embedder.calls, "Indonesian path must not call the embedder")
	assert.Contains(t, keywords, "learning")

	// Indonesian stopwords never appear.
	for _, kw := range keywords {
		assert.NotEqual(t, "dengan", kw)
		assert.NotEqual(t, "untuk", kw)
		assert.NotEqual(t, "penelitian", kw)
	}
}

func TestExtract_Invariants(t *testing.T) {
	extractor := New(nil)
	digits := regexp.MustCompile(`^\d+$`)

	text := `The 2021 survey covered 1500 responses and 42 institutions.
Neural networks achieved 95 percent accuracy on the 2020 dataset.
Neural networks remain the dominant classification architecture.`

	keywords := extractor.Extract(context.Background(), text, domain.LanguageEnglish, 10)

	require.NotEmpty(t, keywords)
	seen := make(map[string]struct{})
	for _, kw := range keywords {
		assert.False(t, digits.MatchString(kw), "pure-numeric keyword: %q", kw)
		assert.GreaterOrEqual(t, len([]rune(kw)), 4, "too-short keyword: %q", kw)
		_, dup := seen[kw]
		assert.False(t, dup, "duplicate keyword: %q", kw)
		seen[kw] = struct{}{}
	}
}

func TestExtract_EmptyAndShortInput(t *testing.T) {
	extractor := New(nil)

	assert.Empty(t, extractor.Extract(context.Background(), "", domain.LanguageEnglish, 10))
	assert.Empty(t, extractor.Extract(context.Background(), "   \n ", domain.LanguageEnglish, 10))
	// A text of nothing but stopwords and digits yields nothing.
	assert.Empty(t, extractor.Extract(context.Background(), "the of 123 and 456", domain.LanguageEnglish, 10))
}

func TestExtract_RespectsTopN(t *testing.T) {
	extractor := New(nil)

	keywords := extractor.Extract(context.Background(), englishSample, domain.LanguageEnglish, 2)
	assert.Len(t, keywords, 2)

	// Non-positive topN falls back to the default.
	keywords = extractor.Extract(context.Background(), englishSample, domain.LanguageEnglish, 0)
	assert.LessOrEqual(t, len(keywords), DefaultTopN)
}

func TestExtract_DeterministicOrdering(t *testing.T) {
	extractor := New(nil)

	first := extractor.Extract(context.Background(), englishSample, domain.LanguageEnglish, 8)
	second := extractor.Extract(context.Background(), englishSample, domain.LanguageEnglish, 8)

	assert.Equal(t, first, second)
}
