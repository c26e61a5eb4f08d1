package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	acltodo "github.com/jsamuelsen11/todolist-service/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoClient = (*TodoClient)(nil)

const (
	pathItems      = "/api/v1/todolists"
	pathCategories = "/api/v1/categories"
)

// TodoClient implements [ports.TodoClient] against the todo list REST API.
// The underlying [httpclient.Client] supplies the circuit breaker, retries,
// rate limiting and tracing of every call.
type TodoClient struct {
	req *Requester
}

// NewTodoClient creates a TodoClient. The client's BaseURL should point at
// the service root, e.g. "http://localhost:8080".
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{req: NewRequester(client, logger)}
}

// ListItems calls GET /api/v1/todolists.
func (c *TodoClient) ListItems(ctx context.Context) ([]todo.ItemView, error) {
	var dtos []acltodo.ItemDTO
	if err := c.req.Do(ctx, http.MethodGet, pathItems, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return acltodo.ToItemViews(dtos), nil
}

// GetItem calls GET /api/v1/todolists/{id}.
func (c *TodoClient) GetItem(ctx context.Context, id int64) (todo.ItemView, error) {
	var dto acltodo.ItemDTO
	if err := c.req.Do(ctx, http.MethodGet, itemPath(id), http.StatusOK, nil, &dto); err != nil {
		return todo.ItemView{}, err
	}
	return acltodo.ToItemView(&dto), nil
}

// CreateItem calls POST /api/v1/todolists.
func (c *TodoClient) CreateItem(ctx context.Context, title, description, category string) (todo.ItemView, error) {
	body := acltodo.CreateItemRequestDTO{Title: title, Description: description, Category: category}

	var dto acltodo.ItemDTO
	if err := c.req.Do(ctx, http.MethodPost, pathItems, http.StatusCreated, body, &dto); err != nil {
		return todo.ItemView{}, err
	}
	return acltodo.ToItemView(&dto), nil
}

// UpdateItem calls PUT /api/v1/todolists/{id}.
func (c *TodoClient) UpdateItem(ctx context.Context, id int64, description string) error {
	body := acltodo.UpdateItemRequestDTO{Description: description}
	return c.req.Do(ctx, http.MethodPut, itemPath(id), http.StatusOK, body, nil)
}

// RemoveItem calls DELETE /api/v1/todolists/{id}.
func (c *TodoClient) RemoveItem(ctx context.Context, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, itemPath(id), http.StatusOK, nil, nil)
}

// RegisterProgression calls POST /api/v1/todolists/{id}/progressions.
func (c *TodoClient) RegisterProgression(ctx context.Context, id int64, at time.Time, percent float64) error {
	body := acltodo.ToRegisterProgressionRequest(at, percent)
	return c.req.Do(ctx, http.MethodPost, itemPath(id)+"/progressions", http.StatusCreated, body, nil)
}

// Categories calls GET /api/v1/categories.
func (c *TodoClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.req.Do(ctx, http.MethodGet, pathCategories, http.StatusOK, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", pathItems, id)
}
