package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/maximdx/TrendRadar/internal/domain"
)

// updated_at is stored as ISO-8601 with second precision, UTC.
const timeLayout = "2006-01-02T15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS publish_time_cache (
	url          TEXT PRIMARY KEY,
	published_at TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL CHECK(status IN ('ok', 'miss')),
	updated_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_publish_time_cache_status
ON publish_time_cache(status, updated_at);
`

// Cache persists resolved publish times keyed by normalized URL. Negative
// results are stored as miss rows so known-unknown URLs are not re-fetched
// on every run.
type Cache struct {
	db      *sqlx.DB
	missTTL time.Duration
	now     func() time.Time
}

// Open opens the cache database at path, creating parent directories and
// the schema if needed. The miss TTL has a one hour floor so a misconfigured
// TTL cannot disable negative caching.
func Open(path string, missTTL time.Duration) (*Cache, error) {
	if missTTL < time.Hour {
		missTTL = time.Hour
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Cache{db: db, missTTL: missTTL, now: time.Now}, nil
}

// Get looks up a key. A miss row is authoritative only while younger than
// the TTL; expired misses and rows with unparseable timestamps read as
// absent so the URL is fetched again.
func (c *Cache) Get(ctx context.Context, key string) (string, domain.LookupState, error) {
	var row struct {
		PublishedAt string `db:"published_at"`
		Status      string `db:"status"`
		UpdatedAt   string `db:"updated_at"`
	}

	err := c.db.GetContext(ctx, &row,
		`SELECT published_at, status, updated_at FROM publish_time_cache WHERE url = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.LookupAbsent, nil
	}
	if err != nil {
		return "", domain.LookupAbsent, err
	}

	if row.Status == "ok" && row.PublishedAt != "" {
		return row.PublishedAt, domain.LookupHit, nil
	}
	if row.Status == "miss" {
		if lastSeen, err := time.Parse(timeLayout, row.UpdatedAt); err == nil {
			if c.now().UTC().Sub(lastSeen) <= c.missTTL {
				return "", domain.LookupRecentMiss, nil
			}
		}
	}
	return "", domain.LookupAbsent, nil
}

// Set upserts an entry, deriving the status from whether publishedAt is
// empty. Last write wins; no history is kept.
func (c *Cache) Set(ctx context.Context, key, publishedAt string) error {
	status := "miss"
	if publishedAt != "" {
		status = "ok"
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO publish_time_cache (url, published_at, status, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			published_at = excluded.published_at,
			status = excluded.status,
			updated_at = excluded.updated_at`,
		key, publishedAt, status, c.now().UTC().Format(timeLayout))
	return err
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}
