package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pustaka-labs/naskah/internal/adapters/driven/config/file"
	"github.com/pustaka-labs/naskah/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and initialise pipeline thresholds and model providers.

Settings live in a TOML file under the config directory. Edit the file
directly to configure embedding, LLM and summariser providers.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes the default settings to the config file, creating the config
directory if needed. Existing settings are preserved; missing fields are
filled with defaults.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func openConfigStore() (*file.ConfigStore, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}
	return store, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}

	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("Config file: %s\n", store.Path())
	cmd.Println()

	cmd.Println("[Pipeline]")
	cmd.Printf("  Marker threshold:       %d\n", settings.Pipeline.MarkerThreshold)
	cmd.Printf("  Similarity threshold:   %.2f\n", settings.Pipeline.SimilarityThreshold)
	cmd.Printf("  Keyword char budget:    %d\n", settings.Pipeline.KeywordCharBudget)
	cmd.Printf("  Summary char budget:    %d\n", settings.Pipeline.SummaryCharBudget)
	cmd.Printf("  Embedding char budget:  %d\n", settings.Pipeline.EmbeddingCharBudget)
	cmd.Printf("  Min reference length:   %d\n", settings.Pipeline.MinReferenceLength)
	cmd.Printf("  Max references:         %d\n", settings.Pipeline.MaxReferences)
	cmd.Printf("  Embedding cache size:   %d\n", settings.Pipeline.EmbeddingCacheSize)
	cmd.Printf("  Merge continuations:    %t\n", settings.Pipeline.MergeLowercaseContinuations)
	cmd.Println()

	cmd.Println("[Embedding]")
	printProvider(cmd, settings.Embedding.Provider, settings.Embedding.Model)
	cmd.Println()

	cmd.Println("[LLM]")
	printProvider(cmd, settings.LLM.Provider, settings.LLM.Model)
	cmd.Println()

	cmd.Println("[Summariser]")
	printProvider(cmd, settings.Summariser.Provider, settings.Summariser.Model)

	return nil
}

func printProvider(cmd *cobra.Command, provider domain.AIProvider, model string) {
	if !provider.IsValid() {
		cmd.Println("  Not configured (offline fallback active)")
		return
	}
	cmd.Printf("  Provider: %s\n", provider.Description())
	if model != "" {
		cmd.Printf("  Model:    %s\n", model)
	}
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}

	// Load first so an existing file keeps its values.
	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := store.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Wrote %s\n", store.Path())
	return nil
}
