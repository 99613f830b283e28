// Package store keeps fetched article text in a local sqlite database.
// A record that failed analysis stays in "Processing" and is retried on the
// next run; caching the fetched text avoids re-downloading the page then.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS content (
	url        TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);
`

// ContentCache wraps the sqlite connection for cached article text.
type ContentCache struct {
	conn *sqlx.DB
}

// NewContentCache opens (and initializes if needed) the cache database.
func NewContentCache(dsn string) (*ContentCache, error) {
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open content cache: %w", err)
	}
	conn.SetMaxOpenConns(1) // single-run tool, no concurrent writers

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("init content cache schema: %w", err)
	}

	return &ContentCache{conn: conn}, nil
}

// Get returns cached text for the URL; found is false on a cache miss.
func (c *ContentCache) Get(ctx context.Context, url string) (text string, found bool, err error) {
	err = c.conn.GetContext(ctx, &text, `SELECT text FROM content WHERE url = ?`, url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get cached content: %w", err)
	}
	return text, true, nil
}

// Put stores text for the URL, replacing any previous entry.
func (c *ContentCache) Put(ctx context.Context, url, text string) error {
	query := `
		INSERT INTO content (url, text, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET text = excluded.text, fetched_at = excluded.fetched_at
	`
	if _, err := c.conn.ExecContext(ctx, query, url, text, time.Now().UTC()); err != nil {
		return fmt.Errorf("put cached content: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *ContentCache) Close() error {
	return c.conn.Close()
}
