// Package store persists chunkbench run metadata and snapshot blobs to
// SQLite via modernc.org/sqlite, a pure-Go driver with no cgo dependency.
// A bench run is a single synchronous process, so writes go straight
// through database/sql rather than a buffered writer goroutine.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists chunkbench run reports.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the SQLite database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id       TEXT PRIMARY KEY,
		recorded_at  TEXT NOT NULL,
		iterations   INTEGER NOT NULL,
		fill_ns      INTEGER NOT NULL,
		carve_ns     INTEGER NOT NULL,
		span_count   INTEGER NOT NULL,
		air_cells    INTEGER NOT NULL,
		quad_count   INTEGER NOT NULL,
		snapshot     BLOB
	);`)
	return err
}

// Run is one row of the runs table.
type Run struct {
	RunID      string
	Iterations int
	FillNs     int64
	CarveNs    int64
	SpanCount  int
	AirCells   int
	QuadCount  int
	Snapshot   []byte
}

// InsertRun records a completed bench run, optionally with its compressed
// span snapshot attached.
func (s *Store) InsertRun(r Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, recorded_at, iterations, fill_ns, carve_ns, span_count, air_cells, quad_count, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, time.Now().UTC().Format(time.RFC3339Nano), r.Iterations,
		r.FillNs, r.CarveNs, r.SpanCount, r.AirCells, r.QuadCount, r.Snapshot,
	)
	return err
}

// LoadRun fetches a previously recorded run by id.
func (s *Store) LoadRun(runID string) (Run, error) {
	var r Run
	row := s.db.QueryRow(
		`SELECT run_id, iterations, fill_ns, carve_ns, span_count, air_cells, quad_count, snapshot
		 FROM runs WHERE run_id = ?`, runID,
	)
	if err := row.Scan(&r.RunID, &r.Iterations, &r.FillNs, &r.CarveNs, &r.SpanCount, &r.AirCells, &r.QuadCount, &r.Snapshot); err != nil {
		return Run{}, err
	}
	return r, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
