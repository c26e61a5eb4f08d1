// Package memory provides a non-durable storage backend. Data lives in
// process memory and is lost on restart.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// Compile-time interface checks.
var (
	_ storage.Backend = (*Backend)(nil)
	_ storage.Tx      = (*tx)(nil)
)

// Backend stores records in maps guarded by a mutex.
type Backend struct {
	mu         sync.RWMutex
	categories []string
	items      map[todo.ID]storage.ItemRecord
}

// New creates a backend seeded with the given categories, or with
// storage.SeedCategories when none are given.
func New(categories ...string) *Backend {
	if len(categories) == 0 {
		categories = storage.SeedCategories
	}
	return &Backend{
		categories: todo.NewCategorySet(categories...).Names(),
		items:      make(map[todo.ID]storage.ItemRecord),
	}
}

// Categories implements storage.Backend.
func (b *Backend) Categories(context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.categories), nil
}

// Items implements storage.Backend.
func (b *Backend) Items(context.Context) ([]storage.ItemRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]storage.ItemRecord, 0, len(b.items))
	for _, id := range slices.Sorted(maps.Keys(b.items)) {
		out = append(out, cloneRecord(b.items[id]))
	}
	return out, nil
}

// MaxID implements storage.Backend.
func (b *Backend) MaxID(context.Context) (todo.ID, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var maxID todo.ID
	for id := range b.items {
		maxID = max(maxID, id)
	}
	return maxID, nil
}

// WithinTx implements storage.Backend. Writes apply directly; there is no
// rollback. The write lock is held while fn runs.
func (b *Backend) WithinTx(ctx context.Context, fn func(storage.Tx) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fn(&tx{b: b})
}

// tx writes straight into the backend maps. The caller holds b.mu.
type tx struct {
	b *Backend
}

func (t *tx) StoredIDs(context.Context) ([]todo.ID, error) {
	return slices.Sorted(maps.Keys(t.b.items)), nil
}

func (t *tx) Delete(_ context.Context, id todo.ID) error {
	delete(t.b.items, id)
	return nil
}

func (t *tx) Insert(_ context.Context, rec storage.ItemRecord) error {
	t.b.items[rec.ID] = cloneRecord(rec)
	return nil
}

func (t *tx) Update(_ context.Context, rec storage.ItemRecord) error {
	t.b.items[rec.ID] = cloneRecord(rec)
	return nil
}

func cloneRecord(rec storage.ItemRecord) storage.ItemRecord {
	rec.Progressions = slices.Clone(rec.Progressions)
	return rec
}
