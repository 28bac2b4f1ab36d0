// Package textproc provides the deterministic text-processing passes
// that run before any model-backed stage: artifact normalisation,
// language detection and core-section location.
//
// Everything in this package is a pure string transform with no model
// or network dependency, so it behaves identically offline.
package textproc
