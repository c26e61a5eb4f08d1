// Package storage implements the TodoRepository port on top of a pluggable
// Backend. The repository owns aggregate reconstruction and the save
// algorithm; backends only move records in and out of their store.
//
// Available backends:
//
//	postgres.Open(ctx, cfg.Database, logger)  // durable, pgx pool
//	memory.New()                              // non-durable, tests and local runs
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// SeedCategories are the categories a fresh store starts with.
var SeedCategories = []string{"Work", "Personal", "Study", "Health"}

// ErrCorruptItem marks a stored item that no longer satisfies the item
// invariants. It aborts the whole load.
var ErrCorruptItem = errors.New("stored todo item is corrupt")

// ProgressionRecord is a stored progression row.
type ProgressionRecord struct {
	At      time.Time
	Percent todo.Percent
}

// ItemRecord is a stored item with its progressions in time order.
type ItemRecord struct {
	ID           todo.ID
	Title        string
	Description  string
	Category     string
	Progressions []ProgressionRecord
}

// Backend reads and writes records. Implementations must be safe for
// concurrent use.
type Backend interface {
	// Categories returns every category name, sorted and deduplicated.
	Categories(ctx context.Context) ([]string, error)

	// Items returns every stored item ordered by id, progressions ordered by
	// time.
	Items(ctx context.Context) ([]ItemRecord, error)

	// MaxID returns the highest stored id, or 0 when there are none.
	MaxID(ctx context.Context) (todo.ID, error)

	// WithinTx runs fn in a single unit of work. fn's error rolls the unit
	// back where the backend supports it.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the write side of a Backend, valid only inside WithinTx.
type Tx interface {
	// StoredIDs returns the ids currently stored.
	StoredIDs(ctx context.Context) ([]todo.ID, error)

	// Delete removes an item and its progressions.
	Delete(ctx context.Context, id todo.ID) error

	// Insert stores a new item with all its progressions.
	Insert(ctx context.Context, rec ItemRecord) error

	// Update overwrites an existing item and replaces its progressions.
	Update(ctx context.Context, rec ItemRecord) error
}
