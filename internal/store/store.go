// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists migrated records in a SQLite database. Records are
// kept as JSON documents keyed by category and id; inserting an existing
// key replaces the stored record.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docmigrate/pkg/types"
)

// ErrNotFound is returned by Get when no record has the requested key.
var ErrNotFound = errors.New("record not found")

// Store manages the record database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.StoreConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("store: database path is empty")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			kind TEXT NOT NULL,
			id TEXT NOT NULL,
			data TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (kind, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Insert stores rec under (category, id), replacing any record already
// stored there. The first insert time of a key is preserved.
func (s *Store) Insert(ctx context.Context, category types.Category, id string, rec types.Record) error {
	if id == "" {
		return fmt.Errorf("inserting %s: empty id", category)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", category, id, err)
	}
	now := s.now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (kind, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind, id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		string(category), id, string(data), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting %s %s: %w", category, id, err)
	}
	return nil
}

// Get returns the record stored under (category, id), or an error wrapping
// ErrNotFound.
func (s *Store) Get(ctx context.Context, category types.Category, id string) (types.Record, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE kind = ? AND id = ?`,
		string(category), id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", category, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s %s: %w", category, id, err)
	}
	return decode(category, data)
}

// List returns every record of category, ordered by id.
func (s *Store) List(ctx context.Context, category types.Category) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM records WHERE kind = ? ORDER BY id`,
		string(category),
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s records: %w", category, err)
	}
	defer rows.Close()

	var recs []types.Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning %s record: %w", category, err)
		}
		rec, err := decode(category, data)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Counts returns the number of stored records per category. Categories
// with no records are present with a zero count.
func (s *Store) Counts(ctx context.Context) (map[types.Category]int, error) {
	counts := make(map[types.Category]int, len(types.Categories))
	for _, c := range types.Categories {
		counts[c] = 0
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, count(*) FROM records GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[types.Category(kind)] = n
	}
	return counts, rows.Err()
}

func decode(category types.Category, data string) (types.Record, error) {
	rec, err := types.NewRecord(category)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", category, err)
	}
	return rec, nil
}
