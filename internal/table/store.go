package table

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// RunInfo describes one pipeline run stored in the database
type RunInfo struct {
	ID      string
	URN     string
	Created time.Time
	Lines   int
	Words   int
}

// Store persists tables in a SQLite database. Every saved table becomes a
// run; earlier runs stay in the database.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			urn TEXT NOT NULL,
			created TEXT NOT NULL,
			lines INTEGER NOT NULL,
			words INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS lines (
			run_id TEXT NOT NULL REFERENCES runs(id),
			id TEXT NOT NULL,
			book TEXT NOT NULL,
			line TEXT NOT NULL,
			label TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			run_id TEXT NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			line_id TEXT NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS sounds (
			run_id TEXT NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			sound TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, position, sound)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_lines_run ON lines (run_id, id)`,
		`CREATE INDEX IF NOT EXISTS ix_sounds_sound ON sounds (run_id, sound)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Save writes t as a new run in a single transaction and returns the run
// ID. An empty runID is replaced by a random UUID.
func (s *Store) Save(ctx context.Context, runID, urn string, t *Table) (string, error) {
	if runID == "" {
		runID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, urn, created, lines, words) VALUES (?, ?, ?, ?, ?)`,
		runID, urn, time.Now().UTC().Format(time.RFC3339), t.Lines(), t.Len())
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	lineStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lines (run_id, id, book, line, label) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer lineStmt.Close()

	wordStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (run_id, position, line_id, word) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer wordStmt.Close()

	soundStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sounds (run_id, position, sound, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer soundStmt.Close()

	seen := make(map[string]struct{})
	for pos, r := range t.rows {
		if _, ok := seen[r.ID]; !ok {
			seen[r.ID] = struct{}{}
			if _, err := lineStmt.ExecContext(ctx, runID, r.ID, r.Book, r.Line, r.Label); err != nil {
				return "", fmt.Errorf("failed to insert line %s: %w", r.ID, err)
			}
		}

		if _, err := wordStmt.ExecContext(ctx, runID, pos, r.ID, r.Word); err != nil {
			return "", fmt.Errorf("failed to insert word %d: %w", pos, err)
		}

		for _, sound := range r.Sounds.Keys() {
			if _, err := soundStmt.ExecContext(ctx, runID, pos, sound, r.Sounds[sound]); err != nil {
				return "", fmt.Errorf("failed to insert sound %q: %w", sound, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// Runs lists stored runs, oldest first
func (s *Store) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, urn, created, lines, words FROM runs ORDER BY created, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		var created string
		if err := rows.Scan(&r.ID, &r.URN, &created, &r.Lines, &r.Words); err != nil {
			return nil, err
		}
		r.Created, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SoundTotals sums the counts of every sound over one run, optionally
// restricted to lines with the given label (empty matches all).
func (s *Store) SoundTotals(ctx context.Context, runID, label string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.sound, SUM(s.count)
		FROM sounds s
		JOIN words w ON w.run_id = s.run_id AND w.position = s.position
		JOIN lines l ON l.run_id = w.run_id AND l.id = w.line_id
		WHERE s.run_id = ? AND (? = '' OR l.label = ?)
		GROUP BY s.sound`, runID, label, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var sound string
		var n int
		if err := rows.Scan(&sound, &n); err != nil {
			return nil, err
		}
		totals[sound] = n
	}
	return totals, rows.Err()
}
