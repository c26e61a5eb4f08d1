package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Success messages.
const (
	msgItemUpdated           = "Todo item updated successfully"
	msgItemDeleted           = "Todo item deleted successfully"
	msgProgressionRegistered = "Progression registered successfully"
)

// TodoHandler handles the /api/v1/todolists endpoints.
type TodoHandler struct {
	svc ports.TodoService
	now func() time.Time
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc, now: time.Now}
}

// ListItems handles GET /api/v1/todolists.
func (h *TodoHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeOK(w, r, http.StatusOK, dto.ToItemResponses(items), "")
}

// GetItem handles GET /api/v1/todolists/{id}.
func (h *TodoHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		writeReadError(w, r, err)
		return
	}

	writeOK(w, r, http.StatusOK, dto.ToItemResponse(item), "")
}

// CreateItem handles POST /api/v1/todolists. The id is the next free one.
func (h *TodoHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if !decodeBody(w, r, dto.CreateItemSchema, &req) {
		return
	}

	ctx := r.Context()

	id, err := h.svc.NextID(ctx)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.AddItem(ctx, req.ToNewItem(id.Int64())); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.GetItem(ctx, id.Int64())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", itemLocation(id.Int64()))
	writeOK(w, r, http.StatusCreated, dto.ToItemResponse(created), "")
}

// UpdateItem handles PUT /api/v1/todolists/{id}.
func (h *TodoHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateItemRequest
	if !decodeBody(w, r, dto.UpdateItemSchema, &req) {
		return
	}

	if err := h.svc.UpdateItem(r.Context(), id, req.Description); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeOK[any](w, r, http.StatusOK, nil, msgItemUpdated)
}

// DeleteItem handles DELETE /api/v1/todolists/{id}.
func (h *TodoHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeOK[any](w, r, http.StatusOK, nil, msgItemDeleted)
}

// RegisterProgression handles POST /api/v1/todolists/{id}/progressions.
func (h *TodoHandler) RegisterProgression(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RegisterProgressionRequest
	if !decodeBody(w, r, dto.RegisterProgressionSchema, &req) {
		return
	}

	if err := h.svc.RegisterProgression(r.Context(), id, req.At(h.now), req.Percent); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", itemLocation(id))
	writeOK[any](w, r, http.StatusCreated, nil, msgProgressionRegistered)
}

// ListProgressions handles GET /api/v1/todolists/{id}/progressions.
func (h *TodoHandler) ListProgressions(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	progressions, err := h.svc.ListProgressions(r.Context(), id)
	if err != nil {
		writeReadError(w, r, err)
		return
	}

	writeOK(w, r, http.StatusOK, dto.ToProgressionResponses(progressions), "")
}

// writeReadError answers a missing item with 404. Mutations report the same
// error as a rejected request (400) through dto.WriteErrorResponse.
func writeReadError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrItemNotFound) {
		dto.WriteNotFound(w, r, err)
		return
	}
	dto.WriteErrorResponse(w, r, err)
}

func itemLocation(id int64) string {
	return fmt.Sprintf("/api/v1/todolists/%d", id)
}
