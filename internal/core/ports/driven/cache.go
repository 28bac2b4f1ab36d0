package driven

// EmbeddingCache stores computed embeddings keyed by a content hash.
// The cache is injected explicitly so lifetime and eviction policy are
// visible and testable; implementations are bounded (LRU).
//
// Entries are immutable once written: under concurrent access the worst
// case is duplicate computation, never corruption.
type EmbeddingCache interface {
	// Get returns the cached vector for the key, if present.
	Get(key string) ([]float32, bool)

	// Add stores a vector under the key, evicting the least recently
	// used entry when the cache is full.
	Add(key string, vector []float32)

	// Len returns the number of cached entries.
	Len() int

	// Purge removes all entries.
	Purge()
}
