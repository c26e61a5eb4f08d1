package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/platform/resilience"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time check that Repository implements ports.TodoRepository.
var _ ports.TodoRepository = (*Repository)(nil)

// Repository implements ports.TodoRepository. Every call runs under the
// database resilience policy.
type Repository struct {
	backend Backend
	policy  *resilience.Policy
	logger  *slog.Logger
}

// NewRepository creates a Repository. A nil policy runs backend calls
// directly.
func NewRepository(backend Backend, policy *resilience.Policy, logger *slog.Logger) *Repository {
	return &Repository{
		backend: backend,
		policy:  policy,
		logger:  logger,
	}
}

// Load rebuilds the aggregate. Each stored item is recreated through the
// domain factory and its progressions replayed, so stored data is held to
// the same invariants as new data.
func (r *Repository) Load(ctx context.Context) (*todo.List, error) {
	return resilience.Execute(ctx, r.policy, r.load)
}

func (r *Repository) load(ctx context.Context) (*todo.List, error) {
	names, err := r.backend.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	records, err := r.backend.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading todo items: %w", err)
	}

	list := todo.NewList(todo.NewCategorySet(names...))
	for _, rec := range records {
		item, err := rebuild(rec)
		if err == nil {
			err = list.LoadExisting(item)
		}
		if err != nil {
			r.logger.ErrorContext(ctx, "stored todo item violates an invariant",
				slog.String("operation", "Load"),
				slog.Int64("item_id", rec.ID.Int64()),
				slog.Any("error", err),
			)
			// %v keeps the domain error out of the chain: for callers this
			// is a storage fault, not a rejected request.
			return nil, fmt.Errorf("%w: id %d: %v", ErrCorruptItem, rec.ID, err)
		}
	}

	return list, nil
}

func rebuild(rec ItemRecord) (*todo.Item, error) {
	item, err := todo.NewItem(rec.ID, rec.Title, rec.Description, rec.Category)
	if err != nil {
		return nil, err
	}
	for _, p := range rec.Progressions {
		if err := item.AddProgression(p.At, p.Percent); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Save persists the aggregate in one backend unit of work. Items missing
// from list are deleted, new ones inserted and the rest overwritten.
func (r *Repository) Save(ctx context.Context, list *todo.List) error {
	records := toRecords(list)

	return r.policy.Do(ctx, func(ctx context.Context) error {
		return r.backend.WithinTx(ctx, func(tx Tx) error {
			return save(ctx, tx, records)
		})
	})
}

func save(ctx context.Context, tx Tx, records []ItemRecord) error {
	stored, err := tx.StoredIDs(ctx)
	if err != nil {
		return fmt.Errorf("reading stored ids: %w", err)
	}

	wanted := make(map[todo.ID]struct{}, len(records))
	for _, rec := range records {
		wanted[rec.ID] = struct{}{}
	}

	existing := make(map[todo.ID]struct{}, len(stored))
	for _, id := range stored {
		existing[id] = struct{}{}
		if _, keep := wanted[id]; keep {
			continue
		}
		if err := tx.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting todo item %d: %w", id, err)
		}
	}

	for _, rec := range records {
		if _, ok := existing[rec.ID]; ok {
			if err := tx.Update(ctx, rec); err != nil {
				return fmt.Errorf("updating todo item %d: %w", rec.ID, err)
			}
			continue
		}
		if err := tx.Insert(ctx, rec); err != nil {
			return fmt.Errorf("inserting todo item %d: %w", rec.ID, err)
		}
	}

	return nil
}

func toRecords(list *todo.List) []ItemRecord {
	records := make([]ItemRecord, 0, list.Len())
	for view := range list.Items() {
		progressions := make([]ProgressionRecord, 0, len(view.Progressions))
		for _, p := range view.Progressions {
			progressions = append(progressions, ProgressionRecord{At: p.At, Percent: p.Percent})
		}
		records = append(records, ItemRecord{
			ID:           view.ID,
			Title:        view.Title,
			Description:  view.Description,
			Category:     view.Category,
			Progressions: progressions,
		})
	}
	return records
}

// NextID returns max(id)+1, or 1 when no items exist. Two concurrent callers
// may receive the same id.
func (r *Repository) NextID(ctx context.Context) (todo.ID, error) {
	return resilience.Execute(ctx, r.policy, func(ctx context.Context) (todo.ID, error) {
		maxID, err := r.backend.MaxID(ctx)
		if err != nil {
			return 0, fmt.Errorf("reading max id: %w", err)
		}
		return maxID + 1, nil
	})
}

// Categories returns every category name, sorted and deduplicated.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	return resilience.Execute(ctx, r.policy, func(ctx context.Context) ([]string, error) {
		names, err := r.backend.Categories(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading categories: %w", err)
		}
		return todo.NewCategorySet(names...).Names(), nil
	})
}
