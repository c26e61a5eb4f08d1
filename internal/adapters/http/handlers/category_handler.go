package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// CategoryHandler handles GET /api/v1/categories.
type CategoryHandler struct {
	svc ports.TodoService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc ports.TodoService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories handles GET /api/v1/categories.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	writeOK(w, r, http.StatusOK, categories, "")
}
