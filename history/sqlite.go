//go:build sqlite

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists history in a SQLite database file.
type SQLiteStore struct {
	path  string
	limit int
	now   func() time.Time

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store backed by the database at path.
func NewSQLiteStore(path string, limit int) *SQLiteStore {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &SQLiteStore{path: path, limit: limit, now: time.Now}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("history: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Add(ctx context.Context, e Entry) (Entry, error) {
	db, err := s.getDB()
	if err != nil {
		return Entry{}, err
	}
	e = stamp(e, s.now)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM searches WHERE start = ? AND goal = ? AND mode = ?`,
		e.Start, e.Goal, e.Mode,
	); err != nil {
		return Entry{}, fmt.Errorf("history: replace %s→%s: %w", e.Start, e.Goal, err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO searches (id, start, goal, mode, max_paths, found, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Start, e.Goal, e.Mode, e.MaxPaths, e.Found, e.CreatedAt.UnixNano()); err != nil {
		return Entry{}, fmt.Errorf("history: insert %s: %w", e.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM searches WHERE seq NOT IN (
			SELECT seq FROM searches ORDER BY seq DESC LIMIT ?
		)
	`, s.limit); err != nil {
		return Entry{}, fmt.Errorf("history: trim: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]Entry, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = s.limit
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, start, goal, mode, max_paths, found, created_at
		FROM searches ORDER BY seq DESC LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			ns int64
		)
		if err := rows.Scan(&e.ID, &e.Start, &e.Goal, &e.Mode, &e.MaxPaths, &e.Found, &ns); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(0, ns).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM searches`)
	return err
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS searches (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			start TEXT NOT NULL,
			goal TEXT NOT NULL,
			mode TEXT NOT NULL,
			max_paths INTEGER NOT NULL,
			found INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
	`)
	return err
}
