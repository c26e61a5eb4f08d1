package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// TodoClient defines the client port for the todo list REST API.
// Implemented by the ACL adapter; called by the todoctl CLI.
// Methods map 1:1 to API endpoints and return domain types. API error
// envelopes are translated back into domain errors.
type TodoClient interface {
	// ListItems calls GET /api/v1/todolists.
	ListItems(ctx context.Context) ([]todo.ItemView, error)

	// GetItem calls GET /api/v1/todolists/{id}.
	// Returns domain.ErrNotFound if the item does not exist.
	GetItem(ctx context.Context, id int64) (todo.ItemView, error)

	// CreateItem calls POST /api/v1/todolists and returns the created item.
	CreateItem(ctx context.Context, title, description, category string) (todo.ItemView, error)

	// UpdateItem calls PUT /api/v1/todolists/{id}.
	UpdateItem(ctx context.Context, id int64, description string) error

	// RemoveItem calls DELETE /api/v1/todolists/{id}.
	RemoveItem(ctx context.Context, id int64) error

	// RegisterProgression calls POST /api/v1/todolists/{id}/progressions.
	// A zero at lets the server use the current time.
	RegisterProgression(ctx context.Context, id int64, at time.Time, percent float64) error

	// Categories calls GET /api/v1/categories.
	Categories(ctx context.Context) ([]string, error)
}
