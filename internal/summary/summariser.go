// Package summary produces document summaries through a fallback
// chain: a generative LLM when one is configured, a local abstractive
// model for English text, and a deterministic extractive pass that
// needs no model at all. The chain always yields prose or one of two
// fixed literals; it never fails with an error.
package summary

import (
	"context"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
	"github.com/pustaka-labs/naskah/internal/logger"
)

// Fixed outputs for degenerate inputs. Callers and downstream storage
// rely on the exact strings.
const (
	TextTooShort  = "Text too short."
	FailedSummary = "Failed to generate summary."
)

// Minimum input lengths per path. The model paths need enough text to
// condition on; the extractive path just needs a sentence or two.
const (
	minModelInput      = 100
	minExtractiveInput = 50
)

// DefaultCharBudget caps the characters fed to model summarisation.
const DefaultCharBudget = 3000

// Summariser runs the summarisation fallback chain. Both services are
// optional; with neither configured every call takes the extractive
// path.
type Summariser struct {
	llm         driven.LLMService
	abstractive driven.AbstractiveSummariser
	charBudget  int
}

// Option configures the summariser.
type Option func(*Summariser)

// WithCharBudget sets the maximum characters fed to the model paths.
func WithCharBudget(budget int) Option {
	return func(s *Summariser) {
		if budget > 0 {
			s.charBudget = budget
		}
	}
}

// New creates a summariser. llm and abstractive may each be nil.
func New(llm driven.LLMService, abstractive driven.AbstractiveSummariser, opts ...Option) *Summariser {
	s := &Summariser{
		llm:         llm,
		abstractive: abstractive,
		charBudget:  DefaultCharBudget,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarise returns a summary of the text, trying each path in order
// until one succeeds. The output is never the unmodified input and
// never carries sentence-start first-person phrasing; inputs below the
// active path's minimum length yield TextTooShort and total failure
// yields FailedSummary.
func (s *Summariser) Summarise(ctx context.Context, text string, lang domain.Language) string {
	trimmed := strings.TrimSpace(text)

	minLength := minModelInput
	if lang == domain.LanguageIndonesian {
		minLength = minExtractiveInput
	}
	if len(trimmed) < minLength {
		return TextTooShort
	}

	if s.llm != nil {
		out, err := s.generativeSummary(ctx, trimmed, lang)
		if err == nil {
			return rewriteFirstPerson(out)
		}
		logger.Warn("Generative summary failed, falling back: %v", err)
	}

	if s.abstractive != nil && lang == domain.LanguageEnglish {
		out, err := s.abstractiveSummary(ctx, trimmed)
		if err == nil {
			return out
		}
		logger.Warn("Abstractive summary failed, falling back: %v", err)
	}

	out := extractiveSummary(trimmed, lang)
	if out == "" || out == trimmed {
		return FailedSummary
	}
	return rewriteFirstPerson(out)
}
