package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"

	descDegraded    = "dependency degraded"
	descUnavailable = "dependency unavailable"
)

// HealthHandler handles the health endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. A degraded service is still ready;
// only an unhealthy one answers 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	for name, err := range results {
		if err != nil {
			_, checks[name] = describeFailure(r.Context(), name, err)
		} else {
			checks[name] = statusOK
		}
	}

	status, code := statusReady, http.StatusOK
	if health.Evaluate(results) == health.StatusUnhealthy {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	dto.WriteJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}

// checkReport is one entry of the /health response.
type checkReport struct {
	Status      health.Status `json:"status"`
	Description string        `json:"description,omitempty"`
}

// Health handles GET /health. Healthy and Degraded answer 200, Unhealthy
// answers 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]checkReport, len(results))
	for name, err := range results {
		if err == nil {
			checks[name] = checkReport{Status: health.StatusHealthy}
			continue
		}
		status, desc := describeFailure(r.Context(), name, err)
		checks[name] = checkReport{Status: status, Description: desc}
	}

	status := health.Evaluate(results)
	code := http.StatusOK
	if status == health.StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	dto.WriteJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}

// describeFailure maps a failed check to its public status and description.
// The checker's own error stays in the log.
func describeFailure(ctx context.Context, name string, err error) (health.Status, string) {
	status, desc := health.StatusUnhealthy, descUnavailable
	if errors.Is(err, ports.ErrDegraded) {
		status, desc = health.StatusDegraded, descDegraded
	}
	logging.FromContext(ctx).WarnContext(ctx, "health check failed",
		slog.String("check", name),
		slog.String("status", string(status)),
		slog.Any("error", err),
	)
	return status, desc
}
