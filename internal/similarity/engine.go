// Package similarity computes pairwise cosine similarity over document
// embeddings and renders threshold-filtered graphs from the result.
package similarity

import (
	"math"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

const (
	// DefaultThreshold is the minimum similarity for a graph edge.
	DefaultThreshold = 0.30

	// labelLimit is the display length at which node labels are
	// truncated with an ellipsis.
	labelLimit = 25
)

// Matrix computes the symmetric cosine similarity matrix for the
// vectors. The diagonal is exactly 1.0 and a zero vector scores 0
// against everything off-diagonal, so a failed embedding never claims
// similarity it does not have.
func Matrix(vectors [][]float32) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}

	norms := make([]float64, n)
	for i, vec := range vectors {
		norms[i] = norm(vec)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score := 0.0
			if norms[i] > 0 && norms[j] > 0 && len(vectors[i]) == len(vectors[j]) {
				score = dot(vectors[i], vectors[j]) / (norms[i] * norms[j])
			}
			matrix[i][j] = score
			matrix[j][i] = score
		}
	}
	return matrix
}

// BuildGraph materialises one edge per document pair whose similarity
// meets the threshold. Node labels are truncated for rendering and edge
// weights carry the raw score rounded to 3 decimals.
func BuildGraph(nodes []domain.GraphNode, matrix [][]float64, threshold float64) domain.Graph {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	graph := domain.Graph{
		Nodes: make([]domain.GraphNode, len(nodes)),
		Edges: []domain.GraphEdge{},
	}
	for i, node := range nodes {
		node.Label = truncateLabel(node.Label)
		graph.Nodes[i] = node
	}

	for i := 0; i < len(nodes) && i < len(matrix); i++ {
		for j := i + 1; j < len(nodes) && j < len(matrix[i]); j++ {
			score := matrix[i][j]
			if score < threshold {
				continue
			}
			graph.Edges = append(graph.Edges, domain.GraphEdge{
				Source: nodes[i].ID,
				Target: nodes[j].ID,
				Weight: round3(score),
			})
		}
	}
	return graph
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= labelLimit {
		return label
	}
	return string(runes[:labelLimit]) + "..."
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func dot(a, b []float32) float64 {
	sum := 0.0
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func norm(v []float32) float64 {
	sum := 0.0
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
