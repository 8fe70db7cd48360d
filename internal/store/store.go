// Package store persists carbon calculation history in a local SQLite
// database. The engine and comparator only ever read from it; writes happen
// through Append when the user asks to save a result.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/oklog/ulid/v2"
)

// Store defines the carbon log operations.
type Store interface {
	// GetAll returns every log entry ordered by timestamp ascending.
	GetAll(ctx context.Context) ([]Entry, error)

	// Append inserts a new entry, assigning ID and Timestamp when absent.
	Append(ctx context.Context, entry *Entry) error

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id string) error

	Close() error
}

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Prepared statements
	insertEntry *sql.Stmt
	deleteEntry *sql.Stmt
}

// Open opens (creating if needed) the database at path, runs migrations,
// and returns a ready Store. The parent directory is created when missing.
func Open(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := NewMigrationRunner(db).Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	s, err := NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore creates a SQLiteStore from an already-opened and migrated
// database. The store takes ownership of the *sql.DB and closes it on Close.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertEntry, err = s.db.Prepare(`
		INSERT INTO carbon_log (id, category, co2e, ts, notes)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}

	s.deleteEntry, err = s.db.Prepare(`DELETE FROM carbon_log WHERE id = ?`)
	if err != nil {
		return err
	}

	return nil
}

// parseTimestamp tries several common SQLite timestamp formats.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

// Append inserts a new entry. The entry's ID is assigned as a ULID and the
// Timestamp is set to now when zero. The entry is persisted exactly as
// given otherwise; saved records round-trip unchanged.
func (s *SQLiteStore) Append(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	tsFormatted := entry.Timestamp.UTC().Format(time.RFC3339)
	_, err := s.insertEntry.ExecContext(ctx,
		entry.ID, entry.Category, entry.CO2eTonnes, tsFormatted, entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

// GetAll returns all entries ordered by timestamp ascending. Entries with
// equal timestamps keep insertion order (id is a monotonic ULID), which the
// comparator relies on for stable most-recent selection.
func (s *SQLiteStore) GetAll(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, co2e, ts, notes
		FROM carbon_log
		ORDER BY ts ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tsStr string
		if err := rows.Scan(&e.ID, &e.Category, &e.CO2eTonnes, &tsStr, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Timestamp, _ = parseTimestamp(tsStr)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Return empty slice rather than nil
	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}

// Delete removes an entry by ID. Deleting an unknown ID is an error so the
// CLI can tell the user nothing happened.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.deleteEntry.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry %s not found", id)
	}

	return nil
}

// Close releases prepared statements and the underlying database.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.insertEntry, s.deleteEntry} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
