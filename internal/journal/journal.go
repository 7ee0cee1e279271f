// Package journal implements the SQLite-backed record of pattern demo
// executions: which pattern ran, when, and what it printed.
package journal

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the journal database file inside the journal dir.
const dbFileName = "journal.db"

// Store errors.
var (
	ErrClosed = errors.New("journal is closed")
)

// Run is one recorded demo execution.
type Run struct {
	RunID     string    `json:"run_id"`
	Pattern   string    `json:"pattern"`
	Category  string    `json:"category"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Pattern string // exact slug match
	Limit   int    // max rows returned, newest first
}

// Store is the SQLite-backed journal.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	open bool
}

// Open creates the journal directory if needed, opens (or creates) the
// database inside it, and applies the schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	dbPath := filepath.Join(dir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}

	return &Store{db: db, open: true}, nil
}

// Close releases the database handle. Close is idempotent; after it
// returns, all other operations return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close journal db: %w", err)
	}
	return nil
}

// Append records a run. A missing RunID is filled with a fresh UUID v7
// and a zero CreatedAt with the current time. Timestamps are stored
// in UTC at second precision. The stored run is returned.
func (s *Store) Append(run Run) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return Run{}, ErrClosed
	}

	if run.RunID == "" {
		run.RunID = newRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC().Truncate(time.Second)

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, pattern, category, output, created_at) VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Pattern, run.Category, run.Output, run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// List returns recorded runs newest first, narrowed by the filter.
func (s *Store) List(f Filter) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrClosed
	}

	query := `SELECT run_id, pattern, category, output, created_at FROM runs`
	var args []any
	if f.Pattern != "" {
		query += ` WHERE pattern = ?`
		args = append(args, f.Pattern)
	}
	query += ` ORDER BY created_at DESC, run_id DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.RunID, &r.Pattern, &r.Category, &r.Output, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// newRunID generates a UUID v7 run id, falling back to v4 if the clock
// source fails.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
