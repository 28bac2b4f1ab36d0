// Package domain defines the core business entities for Naskah.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Opaque uploaded bytes before extraction
//   - Document: Extracted and normalised document text
//   - Analysis: Keywords, summary, references and embedding for a document
//   - Reference: A single segmented bibliography entry
//   - Graph: Similarity graph payload for visualisation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
