package ports

import (
	"context"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// TodoRepository loads and stores the todo list aggregate.
// Implemented by the storage adapter; called by the application layer.
type TodoRepository interface {
	// Load rebuilds the aggregate from storage, including the category set
	// it validates against. A stored item that violates an invariant aborts
	// the whole load.
	Load(ctx context.Context) (*todo.List, error)

	// Save persists the aggregate atomically: removed items are deleted,
	// new items inserted and existing items overwritten.
	Save(ctx context.Context, list *todo.List) error

	// NextID returns max(id)+1, or 1 when no items exist.
	NextID(ctx context.Context) (todo.ID, error)

	// Categories returns every category name, sorted and deduplicated.
	Categories(ctx context.Context) ([]string, error)
}

// CategoryCache stores the category list between requests. Entries expire
// after the configured TTL.
// Implemented by the cache adapter; called by the application layer, which
// logs and ignores cache failures.
type CategoryCache interface {
	// Get reports a miss with ok == false and a nil error.
	Get(ctx context.Context) (categories []string, ok bool, err error)

	// Set stores categories, replacing any previous entry.
	Set(ctx context.Context, categories []string) error
}
