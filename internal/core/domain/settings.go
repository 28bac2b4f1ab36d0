package domain

// AIProvider identifies an AI service provider for embeddings or LLM.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderGemini is the Google Gemini cloud API.
	AIProviderGemini AIProvider = "gemini"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderGemini:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderGemini
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderGemini:
		return "Gemini (cloud)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string

	// Dimensions is the embedding vector size.
	Dimensions int
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings holds generative LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name. For Gemini this is the first
	// candidate; the adapter retries with fallback models.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI/Gemini).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// SummariserSettings holds local abstractive summarisation model
// configuration. Only local providers make sense here.
type SummariserSettings struct {
	// Provider is the summarisation service provider.
	Provider AIProvider

	// Model is the sequence-to-sequence model name.
	Model string

	// BaseURL is the API endpoint.
	BaseURL string
}

// IsConfigured returns true if the summariser is set up.
func (s SummariserSettings) IsConfigured() bool {
	return s.Provider.IsValid() && s.Provider.IsLocal()
}

// PipelineSettings holds the empirically-tuned pipeline thresholds.
// The exact values were tuned on real student uploads; they are
// adjustable configuration, not load-bearing invariants.
type PipelineSettings struct {
	// MarkerThreshold is the Indonesian marker-word count at or above
	// which text is classified as Indonesian.
	MarkerThreshold int

	// SimilarityThreshold is the minimum cosine similarity for a
	// graph edge.
	SimilarityThreshold float64

	// KeywordCharBudget caps the characters fed to keyword ranking.
	KeywordCharBudget int

	// SummaryCharBudget caps the characters fed to model summarisation.
	SummaryCharBudget int

	// EmbeddingCharBudget caps the characters fed to embedding
	// generation.
	EmbeddingCharBudget int

	// MinReferenceLength is the minimum character length for a
	// segmented reference record to survive as more than noise.
	MinReferenceLength int

	// MaxReferences caps segmenter output against pathological input.
	MaxReferences int

	// EmbeddingCacheSize bounds the in-process embedding cache.
	EmbeddingCacheSize int

	// MergeLowercaseContinuations controls whether a chunk starting
	// with a lowercase letter is merged into the previous reference.
	// This can mis-merge legitimate short references, so it is
	// explicit configuration rather than a buried heuristic.
	MergeLowercaseContinuations bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Pipeline holds the tuned pipeline thresholds.
	Pipeline PipelineSettings

	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// LLM holds generative LLM provider settings.
	LLM LLMSettings

	// Summariser holds local abstractive summariser settings.
	Summariser SummariserSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// AI services (Embedding, LLM, Summariser) are left unconfigured;
// every pipeline stage has an offline fallback.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Pipeline: PipelineSettings{
			MarkerThreshold:             4,
			SimilarityThreshold:         0.30,
			KeywordCharBudget:           6000,
			SummaryCharBudget:           3000,
			EmbeddingCharBudget:         6000,
			MinReferenceLength:          20,
			MaxReferences:               50,
			EmbeddingCacheSize:          1024,
			MergeLowercaseContinuations: true,
		},
		Embedding:  EmbeddingSettings{},
		LLM:        LLMSettings{},
		Summariser: SummariserSettings{},
	}
}
