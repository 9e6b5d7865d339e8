package usitc

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/importworks/hts-helpers/internal/database"
)

// Searcher is the keyword-search capability consumed by the classifier and
// the HTTP/tool layers.
type Searcher interface {
	Search(ctx context.Context, keyword string) ([]SearchResult, error)
}

// CachedSearcher is a read-through cache over a Searcher. Fresh cache hits
// skip the network entirely; cache write failures are logged and otherwise
// ignored so a broken cache never masks live results.
type CachedSearcher struct {
	inner Searcher
	db    *database.DB
	ttl   time.Duration
}

// NewCachedSearcher wraps inner with a sqlite-backed cache.
func NewCachedSearcher(inner Searcher, db *database.DB, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{inner: inner, db: db, ttl: ttl}
}

// Search returns cached records when a fresh entry exists, otherwise queries
// the live client and stores the result.
func (s *CachedSearcher) Search(ctx context.Context, keyword string) ([]SearchResult, error) {
	if cached, ok, err := s.db.GetSearchResponse(keyword, s.ttl); err == nil && ok {
		var results []SearchResult
		if err := json.Unmarshal([]byte(cached), &results); err == nil {
			return results, nil
		}
		// Corrupt entry: fall through to a live fetch.
		log.Printf("discarding unreadable cache entry for %q", keyword)
	}

	results, err := s.inner.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(results); err == nil {
		if err := s.db.PutSearchResponse(keyword, string(payload)); err != nil {
			log.Printf("failed to cache search for %q: %v", keyword, err)
		}
	}
	return results, nil
}
