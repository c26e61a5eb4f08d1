// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
)

// Envelope messages for requests that match no route.
const (
	MsgRouteNotFound    = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	categoryHandler *handlers.CategoryHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteJSON(w, r, http.StatusNotFound, dto.Fail(MsgRouteNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteJSON(w, r, http.StatusMethodNotAllowed, dto.Fail(MsgMethodNotAllowed))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", categoryHandler.ListCategories)

		r.Route("/todolists", func(r chi.Router) {
			r.Get("/", todoHandler.ListItems)
			r.Post("/", todoHandler.CreateItem)
			r.Get("/{id}", todoHandler.GetItem)
			r.Put("/{id}", todoHandler.UpdateItem)
			r.Delete("/{id}", todoHandler.DeleteItem)
			r.Get("/{id}/progressions", todoHandler.ListProgressions)
			r.Post("/{id}/progressions", todoHandler.RegisterProgression)
		})
	})

	return r
}

// Middleware returns the server's middleware stack in installation order.
// A nil metrics disables request metrics.
func Middleware(cfg config.ServerConfig, logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.OpenTelemetry(metrics),
		middleware.Logging(logger),
		middleware.Timeout(cfg.RequestTimeout),
	}
}
