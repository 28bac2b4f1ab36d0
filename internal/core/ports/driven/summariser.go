package driven

import "context"

// AbstractiveSummariser runs a local sequence-to-sequence summarisation
// model. This is an optional service - when nil, summarisation falls
// back to extractive sentence selection.
//
// Decoding must be deterministic: single beam, no sampling.
type AbstractiveSummariser interface {
	// Summarise produces an abstractive summary of the text.
	Summarise(ctx context.Context, text string, opts SummariseOptions) (string, error)

	// ModelName returns the name of the summarisation model being used.
	ModelName() string

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// SummariseOptions bounds the generated summary.
type SummariseOptions struct {
	// MinLength is the minimum summary length in tokens.
	MinLength int

	// MaxLength is the maximum summary length in tokens.
	MaxLength int

	// NoRepeatNGram forbids repeating n-grams of this size (0 disables).
	NoRepeatNGram int
}
