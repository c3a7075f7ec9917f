// Package sqlite persists runs in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/syllog/pkg/syllog/internalerr"
	"github.com/cognicore/syllog/pkg/syllog/logic"
	"github.com/cognicore/syllog/pkg/syllog/parse"
	"github.com/cognicore/syllog/pkg/syllog/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	input TEXT,
	logic TEXT,
	refined INTEGER NOT NULL DEFAULT 0,
	issues TEXT,
	facts TEXT,
	rules TEXT,
	derived TEXT,
	diagnostics TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run, serializing the structured fields
// as JSON columns.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: %w: empty id", internalerr.ErrInvalidInput)
	}

	issues, err := json.Marshal(r.Issues)
	if err != nil {
		return err
	}
	facts, err := json.Marshal(r.Facts)
	if err != nil {
		return err
	}
	rules, err := json.Marshal(r.Rules)
	if err != nil {
		return err
	}
	derived, err := json.Marshal(r.Derived)
	if err != nil {
		return err
	}
	diags, err := json.Marshal(r.Diagnostics)
	if err != nil {
		return err
	}

	refined := 0
	if r.Refined {
		refined = 1
	}

	_, err = s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO runs (id, created_at, input, logic, refined, issues, facts, rules, derived, diagnostics)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.Input, r.Logic, refined,
		string(issues), string(facts), string(rules), string(derived), string(diags))
	return err
}

// GetRun fetches one run by id.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, created_at, input, logic, refined, issues, facts, rules, derived, diagnostics
FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, fmt.Errorf("get run %s: %w", id, internalerr.ErrRunNotFound)
	}
	return r, err
}

// ListRuns returns runs newest first, up to limit (0 means all).
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	query := `
SELECT id, created_at, input, logic, refined, issues, facts, rules, derived, diagnostics
FROM runs ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (store.Run, error) {
	var r store.Run
	var createdAt string
	var refined int
	var issues, facts, rules, derived, diags string

	err := row.Scan(&r.ID, &createdAt, &r.Input, &r.Logic, &refined,
		&issues, &facts, &rules, &derived, &diags)
	if err != nil {
		return store.Run{}, err
	}

	r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	r.Refined = refined != 0

	if err := json.Unmarshal([]byte(issues), &r.Issues); err != nil {
		return store.Run{}, err
	}
	if err := unmarshalFacts(facts, &r.Facts); err != nil {
		return store.Run{}, err
	}
	var parsedRules []logic.Rule
	if err := json.Unmarshal([]byte(rules), &parsedRules); err != nil {
		return store.Run{}, err
	}
	r.Rules = parsedRules
	if err := unmarshalFacts(derived, &r.Derived); err != nil {
		return store.Run{}, err
	}
	var parsedDiags []parse.Diagnostic
	if err := json.Unmarshal([]byte(diags), &parsedDiags); err != nil {
		return store.Run{}, err
	}
	r.Diagnostics = parsedDiags

	return r, nil
}

func unmarshalFacts(data string, dst *[]logic.Fact) error {
	return json.Unmarshal([]byte(data), dst)
}
