package domain

// GraphNode is one document in the similarity graph.
type GraphNode struct {
	// ID is the document identifier.
	ID string

	// Label is the display name, truncated for rendering.
	Label string

	// Keywords are the document's top keywords, shown on hover.
	Keywords []string
}

// GraphEdge connects two documents whose similarity is at or above
// the caller's threshold. Edges are symmetric and materialised once
// per pair.
type GraphEdge struct {
	// Source is the first document ID.
	Source string

	// Target is the second document ID.
	Target string

	// Weight is the raw cosine similarity rounded to 3 decimals.
	Weight float64
}

// Graph is the visualisation payload built from a similarity matrix.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}
