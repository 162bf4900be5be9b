package reconcile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingBuild(calls *int) func() (*Index, error) {
	return func() (*Index, error) {
		*calls++
		return testIndex("a.Size", "1, 1"), nil
	}
}

func TestIndexCache_Disabled(t *testing.T) {
	cache := NewIndexCache(0)
	calls := 0

	for i := 0; i < 3; i++ {
		_, err := cache.GetOrBuild("k", countingBuild(&calls))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

func TestIndexCache_ReusesUntilExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewIndexCache(time.Minute)
	cache.now = func() time.Time { return now }
	calls := 0

	first, err := cache.GetOrBuild("k", countingBuild(&calls))
	require.NoError(t, err)
	second, err := cache.GetOrBuild("k", countingBuild(&calls))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	now = now.Add(2 * time.Minute)
	_, err = cache.GetOrBuild("k", countingBuild(&calls))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	cache.Invalidate("k")
	_, err = cache.GetOrBuild("k", countingBuild(&calls))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestIndexCache_ErrorsNotCached(t *testing.T) {
	cache := NewIndexCache(time.Minute)
	boom := errors.New("boom")

	_, err := cache.GetOrBuild("k", func() (*Index, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	calls := 0
	_, err = cache.GetOrBuild("k", countingBuild(&calls))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestIndexCache_PrunesExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewIndexCache(time.Minute)
	cache.now = func() time.Time { return now }
	calls := 0

	_, err := cache.GetOrBuild("old", countingBuild(&calls))
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = cache.GetOrBuild("new", countingBuild(&calls))
	require.NoError(t, err)

	assert.Len(t, cache.entries, 1)
	assert.Contains(t, cache.entries, "new")
}
