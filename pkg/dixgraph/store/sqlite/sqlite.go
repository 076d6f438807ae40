// Package sqlite implements store.Store on top of modernc.org/sqlite,
// for runs that need their proposal batches and evaluation history to
// survive a process restart.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at path, with
// WAL mode enabled, and ensures the schema exists.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS proposal_batches (
	id TEXT PRIMARY KEY,
	lang1 TEXT NOT NULL,
	lang2 TEXT NOT NULL,
	rows_json TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS eval_runs (
	id TEXT PRIMARY KEY,
	lang1 TEXT NOT NULL,
	lang2 TEXT NOT NULL,
	cutoff INTEGER NOT NULL,
	topn INTEGER NOT NULL,
	n_iter INTEGER NOT NULL,
	n INTEGER NOT NULL,
	precision REAL NOT NULL,
	recall REAL NOT NULL,
	f1 REAL NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_eval_runs_pair ON eval_runs(lang1, lang2);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the underlying database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// SaveProposalBatch inserts a proposal batch, JSON-encoding its
// preview rows; for an ID that already exists only the rows are
// replaced, keeping the stored languages and creation time. A batch with no ID, as every caller today
// supplies, gets a generated ULID, mirroring memstore.
func (s *sqliteStore) SaveProposalBatch(ctx context.Context, b store.ProposalBatch) (string, error) {
	if b.ID == "" {
		b.ID = ulid.Make().String()
	}
	rowsJSON, err := json.Marshal(b.Rows)
	if err != nil {
		return "", fmt.Errorf("save proposal batch: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO proposal_batches (id, lang1, lang2, rows_json, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET rows_json=excluded.rows_json`,
		b.ID, b.Lang1, b.Lang2, string(rowsJSON), b.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("save proposal batch: %w", err)
	}
	return b.ID, nil
}

// GetProposalBatch loads a batch by ID.
func (s *sqliteStore) GetProposalBatch(ctx context.Context, id string) (store.ProposalBatch, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT lang1, lang2, rows_json, created_at FROM proposal_batches WHERE id = ?`, id)

	var b store.ProposalBatch
	var rowsJSON, createdAt string
	if err := row.Scan(&b.Lang1, &b.Lang2, &rowsJSON, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return store.ProposalBatch{}, store.ErrNotFound
		}
		return store.ProposalBatch{}, fmt.Errorf("get proposal batch: %w", err)
	}
	b.ID = id
	if err := json.Unmarshal([]byte(rowsJSON), &b.Rows); err != nil {
		return store.ProposalBatch{}, fmt.Errorf("get proposal batch: %w", err)
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return b, nil
}

// SaveEvalRun inserts an evaluation run record. A run with no ID, as
// every caller today supplies, gets a generated ULID, mirroring
// memstore.
func (s *sqliteStore) SaveEvalRun(ctx context.Context, r store.EvalRun) (string, error) {
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO eval_runs (id, lang1, lang2, cutoff, topn, n_iter, n, precision, recall, f1, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Lang1, r.Lang2, r.Cutoff, r.TopN, r.NIter,
		r.Metrics.N, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1,
		r.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("save eval run: %w", err)
	}
	return r.ID, nil
}

// ListEvalRuns returns every recorded run for a language pair, ordered
// by creation time.
func (s *sqliteStore) ListEvalRuns(ctx context.Context, lang1, lang2 string) ([]store.EvalRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, cutoff, topn, n_iter, n, precision, recall, f1, created_at
		FROM eval_runs WHERE lang1 = ? AND lang2 = ? ORDER BY created_at`, lang1, lang2)
	if err != nil {
		return nil, fmt.Errorf("list eval runs: %w", err)
	}
	defer rows.Close()

	var out []store.EvalRun
	for rows.Next() {
		r := store.EvalRun{Lang1: lang1, Lang2: lang2}
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Cutoff, &r.TopN, &r.NIter,
			&r.Metrics.N, &r.Metrics.Precision, &r.Metrics.Recall, &r.Metrics.F1, &createdAt); err != nil {
			return nil, fmt.Errorf("list eval runs: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list eval runs: %w", err)
	}
	return out, nil
}
