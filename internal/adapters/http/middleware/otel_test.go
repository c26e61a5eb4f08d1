package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/middleware"
)

// These tests swap the global TracerProvider and so do not run in parallel.

func recordSpans(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return exporter
}

func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) tracetest.SpanStub {
	t.Helper()
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	return spans[0]
}

func spanAttrs(span tracetest.SpanStub) map[string]any {
	attrs := make(map[string]any, len(span.Attributes))
	for _, a := range span.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_ServerSpan(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		wantName   string
		wantStatus codes.Code
	}{
		{"unrouted ok", http.MethodGet, "/health", http.StatusOK, "HTTP GET /health", codes.Unset},
		{"client error", http.MethodPost, "/api/v1/todolists", http.StatusBadRequest, "HTTP POST /api/v1/todolists", codes.Unset},
		{"server error", http.MethodGet, "/api/v1/categories", http.StatusInternalServerError, "HTTP GET /api/v1/categories", codes.Error},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exporter := recordSpans(t)

			handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, http.NoBody))

			assert.Equal(t, tc.status, rec.Code)

			span := onlySpan(t, exporter)
			assert.Equal(t, tc.wantName, span.Name)
			assert.Equal(t, tc.wantStatus, span.Status.Code)

			attrs := spanAttrs(span)
			assert.Equal(t, tc.method, attrs["http.method"])
			assert.Equal(t, int64(tc.status), attrs["http.status_code"])
		})
	}
}

func TestOpenTelemetry_NamesSpanAfterRoute(t *testing.T) {
	exporter := recordSpans(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Get("/api/v1/todolists/{id}/progressions", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/todolists/7/progressions", http.NoBody))

	span := onlySpan(t, exporter)
	assert.Equal(t, "HTTP GET /api/v1/todolists/{id}/progressions", span.Name)
	assert.Equal(t, "/api/v1/todolists/{id}/progressions", spanAttrs(span)["http.route"])
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := recordSpans(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todolists", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", onlySpan(t, exporter).SpanContext.TraceID().String())
}

func TestOpenTelemetry_RecordsRequestIDAndSize(t *testing.T) {
	exporter := recordSpans(t)

	handler := middleware.RequestID()(middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", http.NoBody)
	req.Header.Set("X-Request-ID", "req-otel-1")
	req.Header.Set("User-Agent", "todoctl")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	attrs := spanAttrs(onlySpan(t, exporter))
	assert.Equal(t, "req-otel-1", attrs["request.id"])
	assert.Equal(t, "todoctl", attrs["user_agent.original"])
	assert.Equal(t, int64(16), attrs["http.response_size"])
}
