// Package cli implements the naskah command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pustaka-labs/naskah/internal/adapters/driven/ai"
	"github.com/pustaka-labs/naskah/internal/adapters/driven/cache/lru"
	"github.com/pustaka-labs/naskah/internal/adapters/driven/config/file"
	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driving"
	"github.com/pustaka-labs/naskah/internal/core/services"
	"github.com/pustaka-labs/naskah/internal/embeddings"
	"github.com/pustaka-labs/naskah/internal/extractors"
	"github.com/pustaka-labs/naskah/internal/extractors/docx"
	"github.com/pustaka-labs/naskah/internal/extractors/pdf"
	"github.com/pustaka-labs/naskah/internal/extractors/plaintext"
	"github.com/pustaka-labs/naskah/internal/keywords"
	"github.com/pustaka-labs/naskah/internal/logger"
	"github.com/pustaka-labs/naskah/internal/references"
	"github.com/pustaka-labs/naskah/internal/summary"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Shared services, initialised lazily by commands that need them.
var (
	pipelineService driving.PipelineService
	aiServices      *ai.InitResult
)

var rootCmd = &cobra.Command{
	Use:   "naskah",
	Short: "Extract structured knowledge from academic documents",
	Long: `naskah extracts structured knowledge from academic documents.

It reads PDF, DOCX and plain text files, normalises the extracted text,
detects Indonesian or English, and produces keywords, a summary, segmented
bibliography references and a document embedding. Everything works offline;
configured model services improve keyword ranking and summarisation.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.naskah)")
}

// Execute runs the root command.
func Execute() {
	defer closeServices()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices loads settings and wires the pipeline. Idempotent;
// commands call it from their RunE.
func initServices() error {
	if pipelineService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	appSettings, err := store.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	aiServices = ai.InitServices(appSettings)
	for _, warning := range aiServices.Warnings {
		logger.Warn("%s", warning)
	}

	registry := extractors.NewRegistry()
	registry.Register(pdf.New())
	registry.Register(docx.New())
	registry.Register(plaintext.New())

	pipeline := appSettings.Pipeline

	var embedder *embeddings.Generator
	if aiServices.EmbeddingService != nil {
		cache, err := lru.New(pipeline.EmbeddingCacheSize)
		if err != nil {
			return fmt.Errorf("create embedding cache: %w", err)
		}
		embedder = embeddings.New(
			aiServices.EmbeddingService,
			cache,
			embeddings.WithCharBudget(pipeline.EmbeddingCharBudget),
		)
	}

	pipelineService = services.NewPipeline(
		registry,
		keywords.New(
			aiServices.EmbeddingService,
			keywords.WithCharBudget(pipeline.KeywordCharBudget),
		),
		summary.New(
			aiServices.LLMService,
			aiServices.Summariser,
			summary.WithCharBudget(pipeline.SummaryCharBudget),
		),
		references.New(
			references.WithMinLength(pipeline.MinReferenceLength),
			references.WithMaxRecords(pipeline.MaxReferences),
			references.WithLowercaseContinuationMerge(pipeline.MergeLowercaseContinuations),
		),
		embedder,
		pipeline,
	)

	return nil
}

// closeServices releases model service connections.
func closeServices() {
	if aiServices != nil {
		aiServices.Close()
		aiServices = nil
	}
}

// loadRawDocument reads a file into a RawDocument, deriving the format
// from the extension.
func loadRawDocument(path string) (*domain.RawDocument, error) {
	format := domain.FormatFromPath(path)
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &domain.RawDocument{
		URI:     path,
		Format:  format,
		Content: content,
	}, nil
}
