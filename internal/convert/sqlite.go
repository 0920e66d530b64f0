package convert

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id                TEXT PRIMARY KEY,
	created_at        TEXT NOT NULL,
	interface_version INTEGER NOT NULL,
	records           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS columns (
	run_id TEXT NOT NULL REFERENCES runs(id),
	idx    INTEGER NOT NULL,
	name   TEXT NOT NULL,
	PRIMARY KEY (run_id, idx)
);

CREATE TABLE IF NOT EXISTS samples (
	run_id TEXT NOT NULL REFERENCES runs(id),
	seq    INTEGER NOT NULL,
	idx    INTEGER NOT NULL,
	value  TEXT NOT NULL,
	PRIMARY KEY (run_id, seq, idx)
);
`

// SQLiteSink loads conversion output into a SQLite database. Several
// runs can share one database file; every run gets a UUIDv7 id and its
// own rows in runs/columns/samples, so analysis tools can query across
// recordings without re-importing CSVs.
type SQLiteSink struct {
	db     *sql.DB
	insert *sql.Stmt
	runID  string
	seq    int64
}

// NewSQLiteSink creates or opens the database at path, applies pragmas
// and the schema, and registers a new run with the given interface
// version.
//
// The database is configured with:
//   - WAL mode for concurrent reads during the load
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
func NewSQLiteSink(path string, interfaceVersion uint64) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	s := &SQLiteSink{
		db:    db,
		runID: uuid.Must(uuid.NewV7()).String(),
	}
	_, err = db.Exec(
		`INSERT INTO runs (id, created_at, interface_version) VALUES (?, ?, ?)`,
		s.runID, time.Now().UTC().Format(time.RFC3339), int64(interfaceVersion),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to register run: %w", err)
	}
	return s, nil
}

// RunID returns the UUIDv7 identifying this run inside the database.
func (s *SQLiteSink) RunID() string {
	return s.runID
}

// WriteHeader stores the column names for this run and prepares the
// sample insert statement.
func (s *SQLiteSink) WriteHeader(columns []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin header transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO columns (run_id, idx, name) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare column insert: %w", err)
	}
	for i, name := range columns {
		if _, err := stmt.Exec(s.runID, i, name); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("insert column %q: %w", name, err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit header transaction: %w", err)
	}

	s.insert, err = s.db.Prepare(`INSERT INTO samples (run_id, seq, idx, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare sample insert: %w", err)
	}
	return nil
}

// WriteRow stores one record's tokens in a single transaction, keyed
// by the next sequence number.
func (s *SQLiteSink) WriteRow(tokens []string) error {
	if s.insert == nil {
		return fmt.Errorf("row written before header")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin row transaction: %w", err)
	}
	stmt := tx.Stmt(s.insert)
	for i, tok := range tokens {
		if _, err := stmt.Exec(s.runID, s.seq, i, tok); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert sample seq=%d idx=%d: %w", s.seq, i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit row transaction: %w", err)
	}
	s.seq++
	return nil
}

// Close records the final row count on the run and closes the
// database. Safe to call after a failed run; the count reflects the
// rows actually committed.
func (s *SQLiteSink) Close() error {
	if s.insert != nil {
		s.insert.Close()
	}
	_, err := s.db.Exec(`UPDATE runs SET records = ? WHERE id = ?`, s.seq, s.runID)
	if closeErr := s.db.Close(); err == nil {
		err = closeErr
	}
	return err
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
