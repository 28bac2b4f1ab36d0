// Package services implements the driving port interfaces.
// The pipeline service orchestrates the extraction stages and converts
// stage-internal failures into each stage's defined fallback result.
package services
