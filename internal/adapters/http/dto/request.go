package dto

import (
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// CreateItemRequest is the body of POST /todolists.
type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ToNewItem attaches the id the item will be created under.
func (r *CreateItemRequest) ToNewItem(id int64) ports.NewItem {
	return ports.NewItem{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
}

// UpdateItemRequest is the body of PUT /todolists/{id}.
type UpdateItemRequest struct {
	Description string `json:"description"`
}

// RegisterProgressionRequest is the body of POST /todolists/{id}/progressions.
// A missing DateTime means now.
type RegisterProgressionRequest struct {
	Percent  float64    `json:"percent"`
	DateTime *time.Time `json:"dateTime,omitempty"`
}

// At returns DateTime, or now in UTC when it is absent.
func (r *RegisterProgressionRequest) At(now func() time.Time) time.Time {
	if r.DateTime == nil {
		return now().UTC()
	}
	return *r.DateTime
}
