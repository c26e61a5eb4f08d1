// Package dto provides the HTTP request and response shapes of the inbound
// adapter: the response envelope, item projections, request bodies and the
// JSON Schemas that bodies are checked against.
package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// MsgSuccess is the default envelope message for successful calls.
const MsgSuccess = "Success"

// Envelope wraps every API response body.
type Envelope[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Message   string    `json:"message"`
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}

// nowUTC is the envelope clock.
var nowUTC = func() time.Time { return time.Now().UTC() }

// OK builds a success envelope. An empty message becomes MsgSuccess.
func OK[T any](data T, message string) Envelope[T] {
	if message == "" {
		message = MsgSuccess
	}
	return Envelope[T]{
		Success:   true,
		Data:      data,
		Message:   message,
		Errors:    []string{},
		Timestamp: nowUTC(),
	}
}

// Fail builds an error envelope with no data.
func Fail(message string, errs ...string) Envelope[any] {
	if errs == nil {
		errs = []string{}
	}
	return Envelope[any]{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: nowUTC(),
	}
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// ItemResponse is a todo item in API responses.
type ItemResponse struct {
	ID            int64                 `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	IsCompleted   bool                  `json:"isCompleted"`
	TotalProgress float64               `json:"totalProgress"`
	Progressions  []ProgressionResponse `json:"progressions"`
}

// ProgressionResponse is a progression with its running total.
type ProgressionResponse struct {
	DateTime           time.Time `json:"dateTime"`
	Percent            float64   `json:"percent"`
	AccumulatedPercent float64   `json:"accumulatedPercent"`
}

// ToItemResponse converts a domain view to its API shape.
func ToItemResponse(v todo.ItemView) ItemResponse {
	return ItemResponse{
		ID:            v.ID.Int64(),
		Title:         v.Title,
		Description:   v.Description,
		Category:      v.Category,
		IsCompleted:   v.IsCompleted,
		TotalProgress: v.TotalProgress.Float64(),
		Progressions:  ToProgressionResponses(v.Progressions),
	}
}

// ToItemResponses converts views in order. The result is never nil.
func ToItemResponses(views []todo.ItemView) []ItemResponse {
	out := make([]ItemResponse, len(views))
	for i, v := range views {
		out[i] = ToItemResponse(v)
	}
	return out
}

// ToProgressionResponses converts progression views in order. The result is
// never nil.
func ToProgressionResponses(views []todo.ProgressionView) []ProgressionResponse {
	out := make([]ProgressionResponse, len(views))
	for i, p := range views {
		out[i] = ProgressionResponse{
			DateTime:           p.At,
			Percent:            p.Percent.Float64(),
			AccumulatedPercent: p.AccumulatedPercent.Float64(),
		}
	}
	return out
}
