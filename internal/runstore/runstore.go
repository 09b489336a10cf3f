// Package runstore persists a record of each compile run (source hash,
// diagnostics, serialized parse tree) to a local sqlite database, so past
// runs can be inspected later through the CLI or the read-only HTTP API.
package runstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"

	"github.com/dekarrin/mimic/internal/cerrors"
)

// ErrNotFound is returned when a run ID has no matching record.
var ErrNotFound = errors.New("run not found")

// Run is one persisted compile run.
type Run struct {
	ID          uuid.UUID
	SourceHash  string
	Clean       bool
	Diagnostics []cerrors.Diagnostic
	TreeText    string
	Created     time.Time
}

// Store is a sqlite-backed history of compile runs.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		id TEXT NOT NULL PRIMARY KEY,
		source_hash TEXT NOT NULL,
		clean INTEGER NOT NULL,
		diagnostics BLOB NOT NULL,
		tree_text TEXT NOT NULL,
		created INTEGER NOT NULL
	);`
	_, err := s.db.Exec(stmt)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashSource returns the content hash used to key a run's source, so
// identical sources across runs can be recognized without re-parsing.
func HashSource(src []byte) string {
	sum := blake2b.Sum256(src)
	return fmt.Sprintf("%x", sum)
}

// Record saves a completed run and returns the ID it was assigned.
func (s *Store) Record(ctx context.Context, sourceHash string, clean bool, diags []cerrors.Diagnostic, treeText string) (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("generate run id: %w", err)
	}

	diagBytes := rezi.EncBinary(diags)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source_hash, clean, diagnostics, tree_text, created) VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), sourceHash, boolToInt(clean), diagBytes, treeText, time.Now().Unix(),
	)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("insert run: %w", err)
	}

	return id, nil
}

// Get fetches a single run by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT source_hash, clean, diagnostics, tree_text, created FROM runs WHERE id = ?`,
		id.String(),
	)

	var r Run
	r.ID = id
	var cleanInt int
	var diagBytes []byte
	var created int64

	err := row.Scan(&r.SourceHash, &cleanInt, &diagBytes, &r.TreeText, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	} else if err != nil {
		return Run{}, fmt.Errorf("query run: %w", err)
	}

	r.Clean = cleanInt != 0
	r.Created = time.Unix(created, 0)
	if _, err := rezi.DecBinary(diagBytes, &r.Diagnostics); err != nil {
		return Run{}, fmt.Errorf("decode diagnostics: %w", err)
	}

	return r, nil
}

// List returns every run, most recently created first.
func (s *Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_hash, clean, created FROM runs ORDER BY created DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var all []Run
	for rows.Next() {
		var r Run
		var idStr string
		var cleanInt int
		var created int64

		if err := rows.Scan(&idStr, &r.SourceHash, &cleanInt, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("stored run id %q is invalid: %w", idStr, err)
		}
		r.ID = id
		r.Clean = cleanInt != 0
		r.Created = time.Unix(created, 0)

		all = append(all, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return all, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
