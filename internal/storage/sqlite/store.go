// Package sqlite provides a SQLite-backed match result history.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/storage/sqlite/migrations"
)

// Store persists match results in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite result store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save inserts a result and returns it with its assigned id.
func (s *Store) Save(ctx context.Context, r engine.Result) (engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return engine.Result{}, err
	}
	if s == nil || s.sqlDB == nil {
		return engine.Result{}, fmt.Errorf("storage is not configured")
	}
	if err := r.Validate(); err != nil {
		return engine.Result{}, fmt.Errorf("invalid result: %w", err)
	}
	r.Player = strings.TrimSpace(r.Player)
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO results (player, board_rows, board_cols, mines, won, duration_seconds, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Rows, r.Cols, r.Mines, r.Won, r.DurationSeconds, toMillis(r.RecordedAt),
	)
	if err != nil {
		return engine.Result{}, fmt.Errorf("insert result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return engine.Result{}, fmt.Errorf("result id: %w", err)
	}
	r.ID = id
	r.RecordedAt = fromMillis(toMillis(r.RecordedAt))
	return r, nil
}

// List returns every result, newest first.
func (s *Store) List(ctx context.Context) ([]engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, player, board_rows, board_cols, mines, won, duration_seconds, recorded_at
		 FROM results
		 ORDER BY recorded_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []engine.Result
	for rows.Next() {
		var (
			r          engine.Result
			recordedAt int64
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Rows, &r.Cols, &r.Mines, &r.Won, &r.DurationSeconds, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.RecordedAt = fromMillis(recordedAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

// applyMigrations runs every embedded .sql file in name order.
// Statements are written to be idempotent.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := sqlDB.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}
