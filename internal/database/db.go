package database

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps the SQLite database backing the tariff search cache.
type DB struct {
	*sql.DB
}

// Open opens or creates the database.
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

// GetSearchResponse returns the cached raw response for a keyword, if it was
// fetched within ttl. The second return value reports whether a fresh entry
// was found.
func (db *DB) GetSearchResponse(keyword string, ttl time.Duration) (string, bool, error) {
	var response string
	var fetchedAt time.Time
	err := db.QueryRow(`
		SELECT response, fetched_at
		FROM search_cache
		WHERE keyword = ?
	`, keyword).Scan(&response, &fetchedAt)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if time.Since(fetchedAt) > ttl {
		return "", false, nil
	}
	return response, true, nil
}

// PutSearchResponse stores (or refreshes) the cached response for a keyword.
func (db *DB) PutSearchResponse(keyword, response string) error {
	_, err := db.Exec(`
		INSERT INTO search_cache (keyword, response, fetched_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(keyword) DO UPDATE SET
			response = excluded.response,
			fetched_at = CURRENT_TIMESTAMP
	`, keyword, response)
	if err != nil {
		return fmt.Errorf("failed to cache search response: %w", err)
	}
	return nil
}

// PruneSearchCache deletes cache entries older than maxAge and returns the
// number removed. The cutoff is computed in SQL so it compares against the
// same clock that wrote fetched_at.
func (db *DB) PruneSearchCache(maxAge time.Duration) (int64, error) {
	modifier := fmt.Sprintf("%d seconds", -int64(maxAge.Seconds()))
	result, err := db.Exec(`DELETE FROM search_cache WHERE fetched_at < datetime('now', ?)`, modifier)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CacheSize returns the number of cached keyword responses.
func (db *DB) CacheSize() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM search_cache`).Scan(&n)
	return n, err
}
