package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/logger"
)

var graphThreshold float64

var graphCmd = &cobra.Command{
	Use:   "graph [files...]",
	Short: "Build a similarity graph across documents",
	Long: `Processes each document, embeds its core text and renders the
pairwise cosine similarity graph as JSON. Pairs scoring at or above the
threshold become edges; node labels are truncated document titles.

Requires a configured embedding service.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().Float64VarP(&graphThreshold, "threshold", "t", 0, "minimum similarity for an edge (default from config, 0.30)")
	rootCmd.AddCommand(graphCmd)
}

// graphPayload is the visualisation JSON shape.
type graphPayload struct {
	Nodes []graphNode `json:"nodes"`
	Edges []graphEdge `json:"edges"`
}

type graphNode struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

type graphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

func runGraph(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	ctx := context.Background()

	var (
		nodes   []domain.GraphNode
		vectors [][]float32
		dims    int
	)

	for _, path := range args {
		raw, err := loadRawDocument(path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}

		doc, analysis, err := pipelineService.Process(ctx, raw)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}

		nodes = append(nodes, domain.GraphNode{
			ID:       doc.ID,
			Label:    doc.Title,
			Keywords: analysis.Keywords,
		})
		vectors = append(vectors, analysis.Embedding)
		if len(analysis.Embedding) > dims {
			dims = len(analysis.Embedding)
		}
	}

	if len(nodes) < 2 {
		return fmt.Errorf("need at least 2 processable documents, got %d", len(nodes))
	}
	if dims == 0 {
		return fmt.Errorf("%w: configure one to compute similarity", domain.ErrEmbeddingUnavailable)
	}

	// A document whose embedding failed keeps its node with a zero
	// vector, scoring no edges.
	for i, vec := range vectors {
		if vec == nil {
			vectors[i] = make([]float32, dims)
		}
	}

	matrix := pipelineService.SimilarityMatrix(vectors)
	graph := pipelineService.BuildGraph(nodes, matrix, graphThreshold)

	return outputGraphJSON(cmd, graph)
}

func outputGraphJSON(cmd *cobra.Command, graph domain.Graph) error {
	payload := graphPayload{
		Nodes: make([]graphNode, 0, len(graph.Nodes)),
		Edges: make([]graphEdge, 0, len(graph.Edges)),
	}
	for _, n := range graph.Nodes {
		payload.Nodes = append(payload.Nodes, graphNode{
			ID:       n.ID,
			Label:    n.Label,
			Keywords: n.Keywords,
		})
	}
	for _, e := range graph.Edges {
		payload.Edges = append(payload.Edges, graphEdge{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal graph: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
