// Package todo holds the wire shapes of the todo list REST API as seen by a
// client, and their translation to domain views.
package todo

import (
	"encoding/json"
	"time"
)

// EnvelopeDTO is the response wrapper of every API call. Data is decoded
// separately once the status is known.
type EnvelopeDTO struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Errors    []string        `json:"errors"`
	Timestamp time.Time       `json:"timestamp"`
}

// ItemDTO is a todo item in API responses.
type ItemDTO struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	IsCompleted   bool             `json:"isCompleted"`
	TotalProgress float64          `json:"totalProgress"`
	Progressions  []ProgressionDTO `json:"progressions"`
}

// ProgressionDTO is one progression entry with its running total.
type ProgressionDTO struct {
	DateTime           time.Time `json:"dateTime"`
	Percent            float64   `json:"percent"`
	AccumulatedPercent float64   `json:"accumulatedPercent"`
}

// CreateItemRequestDTO is the body of POST /api/v1/todolists.
type CreateItemRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UpdateItemRequestDTO is the body of PUT /api/v1/todolists/{id}.
type UpdateItemRequestDTO struct {
	Description string `json:"description"`
}

// RegisterProgressionRequestDTO is the body of
// POST /api/v1/todolists/{id}/progressions. A nil DateTime lets the server
// use its own clock.
type RegisterProgressionRequestDTO struct {
	DateTime *time.Time `json:"dateTime,omitempty"`
	Percent  float64    `json:"percent"`
}
