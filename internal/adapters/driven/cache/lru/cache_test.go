package lru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_AddAndGet(t *testing.T) {
	cache, err := New(8)
	require.NoError(t, err)

	vec := []float32{0.1, 0.2, 0.3}
	cache.Add("doc-1", vec)

	got, ok := cache.Get("doc-1")
	require.True(t, ok)
	assert.Equal(t, vec, got)

	_, ok = cache.Get("doc-2")
	assert.False(t, ok)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := New(2)
	require.NoError(t, err)

	cache.Add("a", []float32{1})
	cache.Add("b", []float32{2})

	// Touch "a" so "b" becomes the eviction candidate.
	_, _ = cache.Get("a")
	cache.Add("c", []float32{3})

	_, ok := cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestCache_BoundedSize(t *testing.T) {
	cache, err := New(4)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		cache.Add(fmt.Sprintf("key-%d", i), []float32{float32(i)})
	}

	assert.Equal(t, 4, cache.Len())
}

func TestCache_Purge(t *testing.T) {
	cache, err := New(8)
	require.NoError(t, err)

	cache.Add("a", []float32{1})
	cache.Purge()

	assert.Zero(t, cache.Len())
}

func TestNew_NonPositiveSizeUsesDefault(t *testing.T) {
	cache, err := New(0)
	require.NoError(t, err)
	require.NotNil(t, cache)
}
