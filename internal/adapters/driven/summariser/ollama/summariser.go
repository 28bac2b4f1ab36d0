// Package ollama provides an abstractive summariser adapter backed by
// a local Ollama instance.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
)

// Ensure Summariser implements the interface.
var _ driven.AbstractiveSummariser = (*Summariser)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "qwen2.5:1.5b"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Ollama summariser.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the summarisation model to use (default: qwen2.5:1.5b).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Summariser produces abstractive summaries using Ollama.
type Summariser struct {
	client  *http.Client
	baseURL string
	model   string
}

// generateRequest is the Ollama /api/generate request format.
type generateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Options *options `json:"options,omitempty"`
}

// options holds decoding parameters. Temperature and seed are pinned
// so repeated runs over the same document summarise identically.
type options struct {
	NumPredict    int     `json:"num_predict,omitempty"`
	Temperature   float64 `json:"temperature"`
	Seed          int     `json:"seed"`
	RepeatLastN   int     `json:"repeat_last_n,omitempty"`
	RepeatPenalty float64 `json:"repeat_penalty,omitempty"`
}

// generateResponse is the Ollama /api/generate response format.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// New creates a new Ollama summariser.
func New(cfg Config) *Summariser {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Summariser{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Summarise produces an abstractive summary of the text.
func (s *Summariser) Summarise(ctx context.Context, text string, opts driven.SummariseOptions) (string, error) {
	prompt := buildPrompt(text, opts)

	reqBody := generateRequest{
		Model:  s.model,
		Prompt: prompt,
		Stream: false,
		Options: &options{
			NumPredict:  opts.MaxLength,
			Temperature: 0,
			Seed:        42,
		},
	}
	if opts.NoRepeatNGram > 0 {
		reqBody.Options.RepeatLastN = 64
		reqBody.Options.RepeatPenalty = 1.3
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/generate",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return strings.TrimSpace(genResp.Response), nil
}

// buildPrompt renders the summarisation instruction.
func buildPrompt(text string, opts driven.SummariseOptions) string {
	var b strings.Builder
	b.WriteString("Summarise the following text in plain academic prose")
	if opts.MinLength > 0 && opts.MaxLength > 0 {
		fmt.Fprintf(&b, " using between %d and %d words", opts.MinLength, opts.MaxLength)
	}
	b.WriteString(". Output only the summary, nothing else.\n\nText:\n")
	b.WriteString(text)
	return b.String()
}

// ModelName returns the name of the summarisation model being used.
func (s *Summariser) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /api/tags endpoint.
func (s *Summariser) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("ollama: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("ollama: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *Summariser) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
