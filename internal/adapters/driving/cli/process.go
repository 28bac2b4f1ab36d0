package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

var processJSON bool

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Extract knowledge from documents",
	Long: `Runs the full extraction pipeline on each file: text extraction,
artifact normalisation, language detection, keywords, summary,
bibliography segmentation and (when an embedding service is configured)
a document embedding.

Supported formats: pdf, docx, txt.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&processJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(processCmd)
}

// analysisReport is the JSON payload for one processed document.
type analysisReport struct {
	ID         string            `json:"id"`
	URI        string            `json:"uri"`
	Title      string            `json:"title"`
	Language   string            `json:"language"`
	Keywords   []string          `json:"keywords"`
	Summary    string            `json:"summary"`
	References []referenceReport `json:"references"`
	Embedded   bool              `json:"embedded"`
	Error      string            `json:"error,omitempty"`
}

type referenceReport struct {
	Ordinal string `json:"ordinal"`
	Text    string `json:"text"`
}

func runProcess(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	ctx := context.Background()
	reports := make([]analysisReport, 0, len(args))

	for _, path := range args {
		reports = append(reports, processFile(ctx, path))
	}

	if processJSON {
		return outputProcessJSON(cmd, reports)
	}
	return outputProcessText(cmd, reports)
}

// processFile runs the pipeline on one file. Failures are captured in
// the report so one bad file never aborts the batch.
func processFile(ctx context.Context, path string) analysisReport {
	raw, err := loadRawDocument(path)
	if err != nil {
		return analysisReport{URI: path, Error: err.Error()}
	}

	doc, analysis, err := pipelineService.Process(ctx, raw)
	if err != nil {
		return analysisReport{URI: path, Error: err.Error()}
	}

	refs := make([]referenceReport, 0, len(analysis.References))
	for _, ref := range analysis.References {
		refs = append(refs, referenceReport{Ordinal: ref.Ordinal, Text: ref.Text})
	}

	return analysisReport{
		ID:         doc.ID,
		URI:        doc.URI,
		Title:      doc.Title,
		Language:   analysis.Language.String(),
		Keywords:   analysis.Keywords,
		Summary:    analysis.Summary,
		References: refs,
		Embedded:   analysis.Embedding != nil,
	}
}

func outputProcessJSON(cmd *cobra.Command, reports []analysisReport) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputProcessText(cmd *cobra.Command, reports []analysisReport) error {
	for i := range reports {
		r := &reports[i]

		if r.Error != "" {
			cmd.Printf("%s: FAILED (%s)\n\n", r.URI, r.Error)
			continue
		}

		cmd.Printf("%s\n", r.URI)
		cmd.Printf("  Title:    %s\n", r.Title)
		cmd.Printf("  Language: %s\n", domain.Language(r.Language).Description())
		cmd.Printf("  Keywords: %s\n", joinOrDash(r.Keywords))
		cmd.Printf("  Summary:  %s\n", r.Summary)
		cmd.Printf("  References: %d\n", len(r.References))
		for _, ref := range r.References {
			cmd.Printf("    [%s] %s\n", ref.Ordinal, ref.Text)
		}
		if r.Embedded {
			cmd.Println("  Embedding: computed")
		}
		cmd.Println()
	}
	return nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	out := items[0]
	for _, item := range items[1:] {
		out += ", " + item
	}
	return out
}
