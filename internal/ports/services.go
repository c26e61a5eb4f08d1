package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// TodoService defines the service port for todo list use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method runs through the request pipeline (error logging, validation,
// resilience, timing) before reaching its handler.
type TodoService interface {
	// NextID returns the identifier the next created item should use.
	NextID(ctx context.Context) (todo.ID, error)

	// AddItem creates an item under the given id.
	// Returns domain.ErrValidation for malformed input and
	// domain.ErrInvalidCategory for an unknown category.
	AddItem(ctx context.Context, item NewItem) error

	// UpdateItem replaces an item's description.
	// Returns domain.ErrItemNotFound or domain.ErrProgressTooHigh.
	UpdateItem(ctx context.Context, id int64, description string) error

	// RemoveItem deletes an item.
	// Returns domain.ErrItemNotFound or domain.ErrProgressTooHigh.
	RemoveItem(ctx context.Context, id int64) error

	// RegisterProgression records progress on an item.
	// Returns domain.ErrItemNotFound, domain.ErrProgressionDate,
	// domain.ErrInvalidPercent or domain.ErrProgressOverflow.
	RegisterProgression(ctx context.Context, id int64, at time.Time, percent float64) error

	// ListItems returns every item ordered by id.
	ListItems(ctx context.Context) ([]todo.ItemView, error)

	// GetItem returns a single item.
	// Returns domain.ErrItemNotFound if the item does not exist.
	GetItem(ctx context.Context, id int64) (todo.ItemView, error)

	// ListProgressions returns an item's progressions in chronological order.
	// Returns domain.ErrItemNotFound if the item does not exist.
	ListProgressions(ctx context.Context, id int64) ([]todo.ProgressionView, error)

	// Categories returns the valid category names in alphabetical order.
	Categories(ctx context.Context) ([]string, error)
}

// NewItem carries the fields of an item to create.
type NewItem struct {
	ID          int64
	Title       string
	Description string
	Category    string
}
