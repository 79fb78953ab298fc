// Package history keeps the caller-owned list of recent path searches.
//
// Nothing in the planning or lookup packages touches a Store; the CLI (or any
// host application) opens one and records queries explicitly. Entries with
// the same start, goal and mode replace each other, the newest entry comes
// first, and a store never keeps more than its limit.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit is the number of entries a store keeps when none is given.
const DefaultLimit = 10

// Sentinel errors.
var (
	// ErrNotInitialized is returned when a store is used before Init.
	ErrNotInitialized = errors.New("history: store is not initialized")

	// ErrSQLiteUnavailable is returned by Open when built without -tags sqlite.
	ErrSQLiteUnavailable = errors.New("history: sqlite backend unavailable in this build; rebuild with -tags sqlite")

	// ErrUnknownDriver is returned by Open for an unsupported driver name.
	ErrUnknownDriver = errors.New("history: unsupported store driver")
)

// Entry is one recorded search.
type Entry struct {
	ID        string    `json:"id"`
	Start     string    `json:"start"`
	Goal      string    `json:"goal"`
	Mode      string    `json:"mode"`
	MaxPaths  int       `json:"max_paths"`
	Found     int       `json:"found"`
	CreatedAt time.Time `json:"created_at"`
}

// sameQuery reports whether e and o describe the same search.
func (e Entry) sameQuery(o Entry) bool {
	return e.Start == o.Start && e.Goal == o.Goal && e.Mode == o.Mode
}

// Store persists recent searches.
type Store interface {
	Init(ctx context.Context) error
	// Add records e, filling ID and CreatedAt when empty, and returns the stored entry.
	Add(ctx context.Context, e Entry) (Entry, error)
	// Recent returns up to n entries, newest first. n ≤ 0 returns all.
	Recent(ctx context.Context, n int) ([]Entry, error)
	Clear(ctx context.Context) error
	Close() error
}

// Open returns an initialized store for driver ("memory" or "sqlite").
// limit ≤ 0 selects DefaultLimit.
func Open(ctx context.Context, driver, path string, limit int) (Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var (
		s   Store
		err error
	)
	switch driver {
	case "", "memory":
		s = NewMemoryStore(limit)
	case "sqlite":
		s, err = newSQLiteStore(path, limit)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Init(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// stamp fills the generated fields of e.
func stamp(e Entry, now func() time.Time) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now().UTC()
	}

	return e
}
