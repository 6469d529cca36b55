// Package history records past playlist fetches in a local sqlite
// database. It is a log, not a cache: page content is never stored and
// the log is never consulted to skip a fetch.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS fetches (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	url        TEXT    NOT NULL,
	videos     INTEGER NOT NULL,
	fetched_at TEXT    NOT NULL
);`

// Entry is one recorded fetch.
type Entry struct {
	URL       string
	Videos    int
	FetchedAt time.Time
}

// Store is a fetch log backed by a sqlite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one fetch to the log.
func (s *Store) Record(url string, videos int) error {
	_, err := s.db.Exec(
		`INSERT INTO fetches (url, videos, fetched_at) VALUES (?, ?, ?)`,
		url, videos, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}
	return nil
}

// Entries returns all recorded fetches, newest first.
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT url, videos, fetched_at FROM fetches ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var stamp string
		if err := rows.Scan(&e.URL, &e.Videos, &stamp); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		when, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			continue // Skip rows with corrupted timestamps
		}
		e.FetchedAt = when
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return entries, nil
}

// Clear removes all recorded fetches.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM fetches`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
