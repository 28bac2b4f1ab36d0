// Package driving provides interfaces for application entry points (primary/inbound ports).
//
// The surrounding CLI/worker layer talks to the core exclusively through
// these interfaces.
package driving
