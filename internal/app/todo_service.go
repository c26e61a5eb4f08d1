// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every use case is a command or query sent through the request pipeline.
// Commands load the todo list aggregate, apply exactly one list operation and
// save it back. Queries load and project. Nothing is held between calls.
package app

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/app/pipeline"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of the TodoRepository
// port. Business rules live in the todo package; the service only sequences
// load, mutate and save.
type TodoService struct {
	repo     ports.TodoRepository
	cache    ports.CategoryCache
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

// NewTodoService creates a TodoService. cache may be nil to read categories
// straight from the repository.
func NewTodoService(
	repo ports.TodoRepository, cache ports.CategoryCache, p *pipeline.Pipeline, logger *slog.Logger,
) *TodoService {
	return &TodoService{
		repo:     repo,
		cache:    cache,
		pipeline: p,
		logger:   logger,
	}
}

// NextID returns the identifier the next created item should use.
func (s *TodoService) NextID(ctx context.Context) (todo.ID, error) {
	return pipeline.Send(ctx, s.pipeline, NextIDQuery{}, func(ctx context.Context, _ NextIDQuery) (todo.ID, error) {
		return s.repo.NextID(ctx)
	})
}

// AddItem creates an item under the given id.
func (s *TodoService) AddItem(ctx context.Context, in ports.NewItem) error {
	cmd := AddItemCommand{ID: in.ID, Title: in.Title, Description: in.Description, Category: in.Category}
	return send(ctx, s.pipeline, cmd, func(ctx context.Context, c AddItemCommand) error {
		s.logger.InfoContext(ctx, "adding todo item",
			slog.Int64("item_id", c.ID),
			slog.String("title", c.Title),
		)

		return s.mutate(ctx, c.ID, func(list *todo.List, id todo.ID) error {
			return list.AddItem(id, c.Title, c.Description, c.Category)
		})
	})
}

// UpdateItem replaces an item's description.
func (s *TodoService) UpdateItem(ctx context.Context, id int64, description string) error {
	return send(ctx, s.pipeline, UpdateItemCommand{ID: id, Description: description},
		func(ctx context.Context, c UpdateItemCommand) error {
			s.logger.InfoContext(ctx, "updating todo item", slog.Int64("item_id", c.ID))

			return s.mutate(ctx, c.ID, func(list *todo.List, id todo.ID) error {
				return list.UpdateItem(id, c.Description)
			})
		})
}

// RemoveItem deletes an item.
func (s *TodoService) RemoveItem(ctx context.Context, id int64) error {
	return send(ctx, s.pipeline, RemoveItemCommand{ID: id}, func(ctx context.Context, c RemoveItemCommand) error {
		s.logger.InfoContext(ctx, "removing todo item", slog.Int64("item_id", c.ID))

		return s.mutate(ctx, c.ID, func(list *todo.List, id todo.ID) error {
			return list.RemoveItem(id)
		})
	})
}

// RegisterProgression records progress on an item.
func (s *TodoService) RegisterProgression(ctx context.Context, id int64, at time.Time, percent float64) error {
	cmd := RegisterProgressionCommand{ID: id, At: at, Percent: percent}
	return send(ctx, s.pipeline, cmd, func(ctx context.Context, c RegisterProgressionCommand) error {
		s.logger.InfoContext(ctx, "registering progression",
			slog.Int64("item_id", c.ID),
			slog.Time("date_time", c.At),
			slog.Float64("percent", c.Percent),
		)

		return s.mutate(ctx, c.ID, func(list *todo.List, id todo.ID) error {
			return list.RegisterProgression(id, c.At, todo.PercentFromFloat(c.Percent))
		})
	})
}

// ListItems returns every item ordered by id.
func (s *TodoService) ListItems(ctx context.Context) ([]todo.ItemView, error) {
	return pipeline.Send(ctx, s.pipeline, ListItemsQuery{},
		func(ctx context.Context, _ ListItemsQuery) ([]todo.ItemView, error) {
			list, err := s.repo.Load(ctx)
			if err != nil {
				return nil, err
			}
			return slices.Collect(list.Items()), nil
		})
}

// GetItem returns a single item.
func (s *TodoService) GetItem(ctx context.Context, id int64) (todo.ItemView, error) {
	return pipeline.Send(ctx, s.pipeline, GetItemQuery{ID: id},
		func(ctx context.Context, q GetItemQuery) (todo.ItemView, error) {
			return s.view(ctx, q.ID)
		})
}

// ListProgressions returns an item's progressions in chronological order.
func (s *TodoService) ListProgressions(ctx context.Context, id int64) ([]todo.ProgressionView, error) {
	return pipeline.Send(ctx, s.pipeline, ListProgressionsQuery{ID: id},
		func(ctx context.Context, q ListProgressionsQuery) ([]todo.ProgressionView, error) {
			item, err := s.view(ctx, q.ID)
			if err != nil {
				return nil, err
			}
			return item.Progressions, nil
		})
}

// Categories returns the valid category names in alphabetical order. The
// result is cached when a cache is configured; cache failures are logged
// and the repository is used instead.
func (s *TodoService) Categories(ctx context.Context) ([]string, error) {
	return pipeline.Send(ctx, s.pipeline, CategoriesQuery{},
		func(ctx context.Context, _ CategoriesQuery) ([]string, error) {
			if cached, ok := s.cachedCategories(ctx); ok {
				return cached, nil
			}

			categories, err := s.repo.Categories(ctx)
			if err != nil {
				return nil, err
			}

			if s.cache != nil {
				if err := s.cache.Set(ctx, categories); err != nil {
					s.logger.WarnContext(ctx, "failed to cache categories",
						slog.String("operation", "Categories"),
						slog.Any("error", err),
					)
				}
			}

			return categories, nil
		})
}

func (s *TodoService) cachedCategories(ctx context.Context) ([]string, bool) {
	if s.cache == nil {
		return nil, false
	}

	categories, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "category cache read failed",
			slog.String("operation", "Categories"),
			slog.Any("error", err),
		)
		return nil, false
	}

	return categories, ok
}

// send runs a command that returns no value through the pipeline.
func send[C pipeline.Request](
	ctx context.Context, p *pipeline.Pipeline, cmd C, handle func(context.Context, C) error,
) error {
	_, err := pipeline.Send(ctx, p, cmd, func(ctx context.Context, c C) (struct{}, error) {
		return struct{}{}, handle(ctx, c)
	})
	return err
}

// mutate loads the aggregate, applies fn to it and saves it back.
func (s *TodoService) mutate(ctx context.Context, rawID int64, fn func(*todo.List, todo.ID) error) error {
	id, err := todo.NewID(rawID)
	if err != nil {
		return err
	}

	list, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(list, id); err != nil {
		return err
	}

	return s.repo.Save(ctx, list)
}

func (s *TodoService) view(ctx context.Context, rawID int64) (todo.ItemView, error) {
	id, err := todo.NewID(rawID)
	if err != nil {
		return todo.ItemView{}, err
	}

	list, err := s.repo.Load(ctx)
	if err != nil {
		return todo.ItemView{}, err
	}

	item, ok := list.Item(id)
	if !ok {
		return todo.ItemView{}, todo.NotFound(id)
	}
	return item, nil
}
