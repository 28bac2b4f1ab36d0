package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in a TOML file within the naskah config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
}

// fileConfig is the on-disk TOML layout. Numeric fields left out of the
// file stay zero and are replaced by defaults on load; the boolean uses
// a pointer so an explicit false survives the round trip.
type fileConfig struct {
	Pipeline struct {
		MarkerThreshold             int     `toml:"marker_threshold,omitempty"`
		SimilarityThreshold         float64 `toml:"similarity_threshold,omitempty"`
		KeywordCharBudget           int     `toml:"keyword_char_budget,omitempty"`
		SummaryCharBudget           int     `toml:"summary_char_budget,omitempty"`
		EmbeddingCharBudget         int     `toml:"embedding_char_budget,omitempty"`
		MinReferenceLength          int     `toml:"min_reference_length,omitempty"`
		MaxReferences               int     `toml:"max_references,omitempty"`
		EmbeddingCacheSize          int     `toml:"embedding_cache_size,omitempty"`
		MergeLowercaseContinuations *bool   `toml:"merge_lowercase_continuations,omitempty"`
	} `toml:"pipeline"`

	Embedding struct {
		Provider   string `toml:"provider,omitempty"`
		Model      string `toml:"model,omitempty"`
		BaseURL    string `toml:"base_url,omitempty"`
		APIKey     string `toml:"api_key,omitempty"`
		Dimensions int    `toml:"dimensions,omitempty"`
	} `toml:"embedding"`

	LLM struct {
		Provider string `toml:"provider,omitempty"`
		Model    string `toml:"model,omitempty"`
		BaseURL  string `toml:"base_url,omitempty"`
		APIKey   string `toml:"api_key,omitempty"`
	} `toml:"llm"`

	Summariser struct {
		Provider string `toml:"provider,omitempty"`
		Model    string `toml:"model,omitempty"`
		BaseURL  string `toml:"base_url,omitempty"`
	} `toml:"summariser"`
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.naskah/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".naskah")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from the TOML file, applying defaults for any
// field the file omits. A missing file returns the defaults.
func (s *ConfigStore) Load() (domain.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := domain.DefaultAppSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return settings, fmt.Errorf("parse config: %w", err)
	}

	applyPipeline(&settings.Pipeline, cfg)

	settings.Embedding = domain.EmbeddingSettings{
		Provider:   domain.AIProvider(cfg.Embedding.Provider),
		Model:      cfg.Embedding.Model,
		BaseURL:    cfg.Embedding.BaseURL,
		APIKey:     cfg.Embedding.APIKey,
		Dimensions: cfg.Embedding.Dimensions,
	}
	settings.LLM = domain.LLMSettings{
		Provider: domain.AIProvider(cfg.LLM.Provider),
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		APIKey:   cfg.LLM.APIKey,
	}
	settings.Summariser = domain.SummariserSettings{
		Provider: domain.AIProvider(cfg.Summariser.Provider),
		Model:    cfg.Summariser.Model,
		BaseURL:  cfg.Summariser.BaseURL,
	}

	return settings, nil
}

// applyPipeline overlays file values onto the defaults. Zero values
// mean the field was absent; every tuned default is non-zero.
func applyPipeline(p *domain.PipelineSettings, cfg fileConfig) {
	if cfg.Pipeline.MarkerThreshold > 0 {
		p.MarkerThreshold = cfg.Pipeline.MarkerThreshold
	}
	if cfg.Pipeline.SimilarityThreshold > 0 {
		p.SimilarityThreshold = cfg.Pipeline.SimilarityThreshold
	}
	if cfg.Pipeline.KeywordCharBudget > 0 {
		p.KeywordCharBudget = cfg.Pipeline.KeywordCharBudget
	}
	if cfg.Pipeline.SummaryCharBudget > 0 {
		p.SummaryCharBudget = cfg.Pipeline.SummaryCharBudget
	}
	if cfg.Pipeline.EmbeddingCharBudget > 0 {
		p.EmbeddingCharBudget = cfg.Pipeline.EmbeddingCharBudget
	}
	if cfg.Pipeline.MinReferenceLength > 0 {
		p.MinReferenceLength = cfg.Pipeline.MinReferenceLength
	}
	if cfg.Pipeline.MaxReferences > 0 {
		p.MaxReferences = cfg.Pipeline.MaxReferences
	}
	if cfg.Pipeline.EmbeddingCacheSize > 0 {
		p.EmbeddingCacheSize = cfg.Pipeline.EmbeddingCacheSize
	}
	if cfg.Pipeline.MergeLowercaseContinuations != nil {
		p.MergeLowercaseContinuations = *cfg.Pipeline.MergeLowercaseContinuations
	}
}

// Save writes settings to the TOML file.
func (s *ConfigStore) Save(settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg fileConfig
	cfg.Pipeline.MarkerThreshold = settings.Pipeline.MarkerThreshold
	cfg.Pipeline.SimilarityThreshold = settings.Pipeline.SimilarityThreshold
	cfg.Pipeline.KeywordCharBudget = settings.Pipeline.KeywordCharBudget
	cfg.Pipeline.SummaryCharBudget = settings.Pipeline.SummaryCharBudget
	cfg.Pipeline.EmbeddingCharBudget = settings.Pipeline.EmbeddingCharBudget
	cfg.Pipeline.MinReferenceLength = settings.Pipeline.MinReferenceLength
	cfg.Pipeline.MaxReferences = settings.Pipeline.MaxReferences
	cfg.Pipeline.EmbeddingCacheSize = settings.Pipeline.EmbeddingCacheSize
	merge := settings.Pipeline.MergeLowercaseContinuations
	cfg.Pipeline.MergeLowercaseContinuations = &merge

	cfg.Embedding.Provider = settings.Embedding.Provider.String()
	cfg.Embedding.Model = settings.Embedding.Model
	cfg.Embedding.BaseURL = settings.Embedding.BaseURL
	cfg.Embedding.APIKey = settings.Embedding.APIKey
	cfg.Embedding.Dimensions = settings.Embedding.Dimensions

	cfg.LLM.Provider = settings.LLM.Provider.String()
	cfg.LLM.Model = settings.LLM.Model
	cfg.LLM.BaseURL = settings.LLM.BaseURL
	cfg.LLM.APIKey = settings.LLM.APIKey

	cfg.Summariser.Provider = settings.Summariser.Provider.String()
	cfg.Summariser.Model = settings.Summariser.Model
	cfg.Summariser.BaseURL = settings.Summariser.BaseURL

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
