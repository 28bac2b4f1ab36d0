package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Format identifies the source file format of an uploaded document.
type Format string

// Supported document formats.
const (
	// FormatPDF is a PDF document.
	FormatPDF Format = "pdf"

	// FormatDOCX is an Office Open XML word-processing document.
	FormatDOCX Format = "docx"

	// FormatText is a plain text document.
	FormatText Format = "txt"
)

// IsValid returns true if the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatText:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// FormatFromPath derives the document format from a file path extension.
// Unknown extensions map to an invalid Format; callers must check IsValid.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return Format(ext)
}

// RawDocument represents opaque uploaded bytes before text extraction.
type RawDocument struct {
	// URI is the original location (file path, upload name, etc).
	URI string

	// Format is the source file format.
	Format Format

	// Content is the raw bytes.
	Content []byte

	// Metadata contains caller-specific key-value pairs.
	Metadata map[string]any
}

// Document represents an extracted document with normalised text.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path, upload name, etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content after artifact normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was extracted.
	CreatedAt time.Time
}

// Analysis holds the structured knowledge extracted from one document.
// All fields are recomputed per call; nothing here is persisted by the core.
type Analysis struct {
	// DocumentID links back to the analysed Document.
	DocumentID string

	// Language is the detected document language.
	Language Language

	// Keywords is the ranked keyphrase list, best first.
	Keywords []string

	// Summary is the generated natural-language synthesis.
	Summary string

	// References are the segmented bibliography entries.
	References []Reference

	// Embedding is the dense vector for similarity computation.
	// Nil when no embedding service is configured.
	Embedding []float32
}
