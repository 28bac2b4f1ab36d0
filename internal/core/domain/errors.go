package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input
	// (corrupt file bytes, undecodable text).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unknown document format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrTextTooShort indicates the input is below the minimum
	// length a stage needs to produce a meaningful result.
	ErrTextTooShort = errors.New("text too short")

	// ErrLLMUnavailable indicates the generative LLM service is not
	// configured. Summarisation falls back to local methods.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Semantic keyword ranking and similarity are disabled.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrSummariserUnavailable indicates the local abstractive
	// summarisation model is not configured.
	ErrSummariserUnavailable = errors.New("abstractive summariser unavailable")
)
