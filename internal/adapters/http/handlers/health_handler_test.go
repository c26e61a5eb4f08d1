package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
	"github.com/jsamuelsen11/todolist-service/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"database": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want %q", resp["status"], "ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["database"] != "ok" {
		t.Errorf("database check = %v, want %q", checks["database"], "ok")
	}
}

func TestReadiness_Unhealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"database":       errors.New("connection refused"),
		"business_rules": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %q, want %q", resp["status"], "not_ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["database"] != "dependency unavailable" {
		t.Errorf("database check = %v, want %q", checks["database"], "dependency unavailable")
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("body = %s, leaks the checker error", rec.Body.String())
	}
	if checks["business_rules"] != "ok" {
		t.Errorf("business_rules check = %v, want %q", checks["business_rules"], "ok")
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestReadiness_DegradedIsReady(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"cache": fmt.Errorf("%w: redis ping: timeout", ports.ErrDegraded),
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

// --- Health ---

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthy",
			results:    map[string]error{"database": nil, "business_rules": nil},
			wantStatus: http.StatusOK,
			wantBody:   "Healthy",
		},
		{
			name: "degraded",
			results: map[string]error{
				"database":       nil,
				"business_rules": fmt.Errorf("%w: only 2 categories configured", ports.ErrDegraded),
			},
			wantStatus: http.StatusOK,
			wantBody:   "Degraded",
		},
		{
			name: "unhealthy",
			results: map[string]error{
				"database":       errors.New("connection refused"),
				"business_rules": fmt.Errorf("%w: only 2 categories configured", ports.ErrDegraded),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "Unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			h.Health(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			resp := decodeJSON[struct {
				Status string `json:"status"`
				Checks map[string]struct {
					Status      string `json:"status"`
					Description string `json:"description"`
				} `json:"checks"`
			}](t, rec)
			if resp.Status != tt.wantBody {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantBody)
			}
			if len(resp.Checks) != len(tt.results) {
				t.Errorf("checks = %v, want %d entries", resp.Checks, len(tt.results))
			}
			if db, ok := resp.Checks["database"]; ok && tt.results["database"] != nil {
				if db.Status != "Unhealthy" || db.Description != "dependency unavailable" {
					t.Errorf("database check = %+v", db)
				}
			}
			if br, ok := resp.Checks["business_rules"]; ok && tt.results["business_rules"] != nil {
				if br.Status != "Degraded" || br.Description != "dependency degraded" {
					t.Errorf("business_rules check = %+v", br)
				}
			}
			for _, leaked := range []string{"connection refused", "only 2 categories"} {
				if strings.Contains(rec.Body.String(), leaked) {
					t.Errorf("body = %s, leaks %q", rec.Body.String(), leaked)
				}
			}
		})
	}
}
