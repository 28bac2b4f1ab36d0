// Package keywords provides phrase-level keyword extraction with a
// semantic (embedding-ranked) path and a deterministic frequency
// fallback for offline operation.
package keywords

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
	"github.com/pustaka-labs/naskah/internal/logger"
	"github.com/pustaka-labs/naskah/internal/textproc"
)

// Default tuning values. Tuned empirically; override via Options.
const (
	// DefaultCharBudget caps the characters fed to phrase ranking.
	DefaultCharBudget = 6000

	// DefaultTopN is the number of keywords returned.
	DefaultTopN = 10

	// candidatePool is the semantic pre-selection size reduced to
	// topN by max-sum diversification.
	candidatePool = 20

	// minTokenLength is the minimum rune length for a keyword token.
	minTokenLength = 4

	// diversityWeight balances relevance against redundancy when
	// diversifying the candidate pool.
	diversityWeight = 0.7
)

var (
	tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)
	digitsOnly   = regexp.MustCompile(`^\d+$`)
)

// Extractor ranks keyphrases from document text.
// The embedding service is optional; when nil (or when extraction is
// Indonesian and the lightweight path is preferred) the extractor
// falls back to frequency ranking.
type Extractor struct {
	embedder   driven.EmbeddingService
	charBudget int
}

// Option configures the extractor.
type Option func(*Extractor)

// WithCharBudget sets the maximum characters considered for ranking.
func WithCharBudget(budget int) Option {
	return func(e *Extractor) {
		if budget > 0 {
			e.charBudget = budget
		}
	}
}

// New creates a keyword extractor. embedder may be nil.
func New(embedder driven.EmbeddingService, opts ...Option) *Extractor {
	e := &Extractor{
		embedder:   embedder,
		charBudget: DefaultCharBudget,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns up to topN ranked keyphrases from the text.
//
// English text with an embedding service available takes the semantic
// path; Indonesian text and offline operation take the frequency path.
// Extraction never fails: any internal error produces an empty list so
// keyword extraction cannot abort document processing.
func (e *Extractor) Extract(ctx context.Context, text string, lang domain.Language, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	text = textproc.TruncateBytes(text, e.charBudget)

	if e.embedder != nil && lang == domain.LanguageEnglish {
		ranked, err := e.semanticRank(ctx, text, lang, topN)
		if err == nil {
			return ranked
		}
		logger.Warn("Semantic keyword ranking failed, falling back to frequency: %v", err)
	}

	return e.frequencyRank(text, lang, topN)
}

// semanticRank scores candidate phrases by cosine centrality to the
// whole passage, then diversifies the top pool with a greedy max-sum
// pass so near-duplicate phrases don't crowd the result.
func (e *Extractor) semanticRank(ctx context.Context, text string, lang domain.Language, topN int) ([]string, error) {
	candidates := candidatePhrases(text, lang)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	pool := candidates
	if len(pool) > candidatePool*3 {
		pool = pool[:candidatePool*3]
	}

	inputs := make([]string, 0, len(pool)+1)
	inputs = append(inputs, text)
	inputs = append(inputs, pool...)

	vectors, err := e.embedder.EmbedBatch(ctx, inputs)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(inputs) {
		return nil, domain.ErrEmbeddingUnavailable
	}

	docVec := vectors[0]
	type scored struct {
		phrase string
		vector []float32
		score  float64
	}
	ranked := make([]scored, 0, len(pool))
	for i, phrase := range pool {
		ranked = append(ranked, scored{
			phrase: phrase,
			vector: vectors[i+1],
			score:  cosine(docVec, vectors[i+1]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > candidatePool {
		ranked = ranked[:candidatePool]
	}

	// Greedy max-sum diversification: always take the most relevant
	// phrase, then repeatedly take the candidate with the best
	// relevance-minus-redundancy margin against what is selected.
	selected := make([]scored, 0, topN)
	remaining := make([]scored, len(ranked))
	copy(remaining, ranked)
	for len(selected) < topN && len(remaining) > 0 {
		bestIdx := 0
		bestMargin := -2.0
		for i, cand := range remaining {
			redundancy := 0.0
			for _, s := range selected {
				if sim := cosine(cand.vector, s.vector); sim > redundancy {
					redundancy = sim
				}
			}
			margin := diversityWeight*cand.score - (1-diversityWeight)*redundancy
			if margin > bestMargin {
				bestMargin = margin
				bestIdx = i
			}
		}
		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	result := make([]string, 0, len(selected))
	for _, s := range selected {
		result = append(result, s.phrase)
	}
	return result, nil
}

// frequencyRank is the dependency-free fallback: stopword-filtered
// token counting, highest frequency first.
func (e *Extractor) frequencyRank(text string, lang domain.Language, topN int) []string {
	counts := make(map[string]int)
	order := make(map[string]int)
	for i, token := range tokenize(text) {
		if !validToken(token, lang) {
			continue
		}
		if _, seen := counts[token]; !seen {
			order[token] = i
		}
		counts[token]++
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	// Rank by frequency; break ties by first appearance so the
	// ordering is deterministic.
	sort.SliceStable(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return order[tokens[i]] < order[tokens[j]]
	})

	if len(tokens) > topN {
		tokens = tokens[:topN]
	}
	return tokens
}

// candidatePhrases generates deduplicated 1-2 token phrases ordered by
// raw frequency, filtered the same way single tokens are.
func candidatePhrases(text string, lang domain.Language) []string {
	tokens := tokenize(text)
	counts := make(map[string]int)
	order := make(map[string]int)

	note := func(phrase string, pos int) {
		if _, seen := counts[phrase]; !seen {
			order[phrase] = pos
		}
		counts[phrase]++
	}

	for i, token := range tokens {
		if validToken(token, lang) {
			note(token, i)
		}
		if i+1 < len(tokens) {
			a, b := token, tokens[i+1]
			// Bigrams must be stopword-free on both ends and carry
			// at least one valid content token.
			if !textproc.IsStopword(a, lang) && !textproc.IsStopword(b, lang) &&
				(validToken(a, lang) || validToken(b, lang)) &&
				!digitsOnly.MatchString(a) && !digitsOnly.MatchString(b) {
				phrase := a + " " + b
				if len([]rune(phrase)) >= minTokenLength {
					note(phrase, i)
				}
			}
		}
	}

	phrases := make([]string, 0, len(counts))
	for phrase := range counts {
		phrases = append(phrases, phrase)
	}
	sort.SliceStable(phrases, func(i, j int) bool {
		if counts[phrases[i]] != counts[phrases[j]] {
			return counts[phrases[i]] > counts[phrases[j]]
		}
		return order[phrases[i]] < order[phrases[j]]
	})
	return phrases
}

// tokenize lowercases and splits on non-alphanumeric boundaries.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// validToken applies the keyword invariants: no stopwords, no pure
// digits, minimum length.
func validToken(token string, lang domain.Language) bool {
	if len([]rune(token)) < minTokenLength {
		return false
	}
	if digitsOnly.MatchString(token) {
		return false
	}
	return !textproc.IsStopword(token, lang)
}

// cosine computes cosine similarity between two vectors.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
