// Package embeddings wraps an embedding service with content-hash
// caching, input truncation and batch failure substitution.
package embeddings

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
	"github.com/pustaka-labs/naskah/internal/logger"
	"github.com/pustaka-labs/naskah/internal/textproc"
)

const (
	// DefaultCharBudget caps the characters fed to the embedding model.
	DefaultCharBudget = 6000

	// cacheKeyPrefixLength is how many leading characters feed the
	// cache key hash. Documents differing only past this point share a
	// cached vector, a deliberate trade for cheap keys.
	cacheKeyPrefixLength = 500
)

// Generator produces document embeddings through an embedding service,
// consulting the cache first. The cache may be nil.
type Generator struct {
	service    driven.EmbeddingService
	cache      driven.EmbeddingCache
	charBudget int
}

// Option configures the generator.
type Option func(*Generator)

// WithCharBudget sets the maximum characters fed to the model.
func WithCharBudget(budget int) Option {
	return func(g *Generator) {
		if budget > 0 {
			g.charBudget = budget
		}
	}
}

// New creates an embedding generator. service must be non-nil; cache
// may be nil to disable caching.
func New(service driven.EmbeddingService, cache driven.EmbeddingCache, opts ...Option) *Generator {
	g := &Generator{
		service:    service,
		cache:      cache,
		charBudget: DefaultCharBudget,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dimensions returns the embedding vector size.
func (g *Generator) Dimensions() int {
	return g.service.Dimensions()
}

// Embed returns the embedding for the text, truncated to the character
// budget, consulting the cache first.
func (g *Generator) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	input := g.truncate(text)
	key := cacheKey(input)

	if g.cache != nil {
		if vec, ok := g.cache.Get(key); ok {
			return vec, nil
		}
	}

	vec, err := g.service.Embed(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("embedding generation: %w", err)
	}
	if g.cache != nil {
		g.cache.Add(key, vec)
	}
	return vec, nil
}

// EmbedBatch returns one vector per input text. A document whose
// embedding fails gets a zero vector instead of aborting the batch, so
// the result always has one fully-defined row per input. The zero rows
// score near zero against everything downstream.
func (g *Generator) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		if text == "" {
			vectors[i] = g.zeroVector()
			continue
		}
		vec, err := g.Embed(ctx, text)
		if err != nil {
			logger.Warn("Embedding failed for document %d, substituting zero vector: %v", i, err)
			vectors[i] = g.zeroVector()
			continue
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func (g *Generator) truncate(text string) string {
	return textproc.TruncateBytes(text, g.charBudget)
}

func (g *Generator) zeroVector() []float32 {
	return make([]float32, g.service.Dimensions())
}

// cacheKey hashes the leading characters of the (already truncated)
// input.
func cacheKey(input string) string {
	if len(input) > cacheKeyPrefixLength {
		input = input[:cacheKeyPrefixLength]
	}
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
