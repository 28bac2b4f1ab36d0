// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
//
// Every model-backed service here is OPTIONAL: a nil service means the
// capability is absent and the pipeline must use its deterministic
// fallback instead of failing. Services are constructed once at startup
// and passed by reference; there are no lazily-initialised singletons.
package driven
