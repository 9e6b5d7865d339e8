package usitc

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/importworks/hts-helpers/internal/database"
)

// countingSearcher counts upstream calls so the tests can observe cache hits.
type countingSearcher struct {
	results []SearchResult
	err     error
	calls   int
}

func (s *countingSearcher) Search(ctx context.Context, keyword string) ([]SearchResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCachedSearcher_HitSkipsUpstream(t *testing.T) {
	inner := &countingSearcher{results: []SearchResult{
		{HtsNo: "6110.20.20", Description: "Sweatshirts", General: "16.5%", Indent: "2"},
	}}
	cached := NewCachedSearcher(inner, openTestDB(t), time.Hour)

	first, err := cached.Search(context.Background(), "sweatshirt")
	require.NoError(t, err)
	second, err := cached.Search(context.Background(), "sweatshirt")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "the second lookup is served from the cache")
	assert.Equal(t, first, second)
}

func TestCachedSearcher_DistinctKeywords(t *testing.T) {
	inner := &countingSearcher{results: []SearchResult{{HtsNo: "6110"}}}
	cached := NewCachedSearcher(inner, openTestDB(t), time.Hour)

	_, err := cached.Search(context.Background(), "sweatshirt")
	require.NoError(t, err)
	_, err = cached.Search(context.Background(), "cotton sweatshirt")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedSearcher_ZeroTTLAlwaysRefetches(t *testing.T) {
	inner := &countingSearcher{results: []SearchResult{{HtsNo: "6110"}}}
	cached := NewCachedSearcher(inner, openTestDB(t), 0)

	for i := 0; i < 3; i++ {
		_, err := cached.Search(context.Background(), "sweatshirt")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.calls, "a zero ttl treats every entry as stale")
}

func TestCachedSearcher_UpstreamErrorPropagates(t *testing.T) {
	upstreamErr := &StatusError{Code: 503}
	inner := &countingSearcher{err: upstreamErr}
	db := openTestDB(t)
	cached := NewCachedSearcher(inner, db, time.Hour)

	_, err := cached.Search(context.Background(), "sweatshirt")
	require.Error(t, err)
	assert.True(t, IsUpstreamError(err))

	size, err := db.CacheSize()
	require.NoError(t, err)
	assert.Zero(t, size, "failures are never cached")

	// A later success for the same keyword still reaches upstream and caches.
	inner.err = nil
	inner.results = []SearchResult{{HtsNo: "6110"}}
	results, err := cached.Search(context.Background(), "sweatshirt")
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 2, inner.calls)
}
