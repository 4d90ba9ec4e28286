// Package store caches fetched passages in SQLite for offline play.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/typeracer/internal/quote"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the passage cache.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS passages (
			id INTEGER PRIMARY KEY,
			content TEXT NOT NULL UNIQUE,
			author TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_passages_fetched_at ON passages(fetched_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Put stores a passage, refreshing the fetch time when the content is
// already cached.
func (s *Store) Put(ctx context.Context, p quote.Passage) error {
	if p.Content == "" {
		return errors.New("passage content is empty")
	}
	author := p.Author
	if author == "" {
		author = quote.UnknownAuthor
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO passages (content, author, fetched_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(content) DO UPDATE SET fetched_at = excluded.fetched_at`,
		p.Content,
		author,
		time.Now().Format(time.RFC3339Nano),
	)
	return err
}

// Random returns one cached passage picked uniformly. The second result
// is false when the cache is empty.
func (s *Store) Random(ctx context.Context) (quote.Passage, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT content, author FROM passages ORDER BY RANDOM() LIMIT 1`)
	var p quote.Passage
	if err := row.Scan(&p.Content, &p.Author); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quote.Passage{}, false, nil
		}
		return quote.Passage{}, false, err
	}
	return p, true, nil
}

// Count returns the number of cached passages.
func (s *Store) Count(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM passages`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
