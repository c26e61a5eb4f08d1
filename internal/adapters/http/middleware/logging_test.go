package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

// completionLine returns the "completed request" record from text output.
func completionLine(out string) string {
	for line := range strings.SplitSeq(out, "\n") {
		if strings.Contains(line, "completed request") {
			return line
		}
	}
	return ""
}

func TestLogging_CompletionRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
		want   []string
	}{
		{
			name: "created", method: http.MethodPost, path: "/api/v1/todolists",
			status: http.StatusCreated, body: `{"success":true}`,
			want: []string{"level=INFO", "method=POST", "path=/api/v1/todolists", "status=201", "bytes=16", "elapsed_ms="},
		},
		{
			name: "client error", method: http.MethodPut, path: "/api/v1/todolists/9",
			status: http.StatusUnprocessableEntity,
			want:   []string{"level=WARN", "status=422", "bytes=0"},
		},
		{
			name: "server error", method: http.MethodGet, path: "/api/v1/categories",
			status: http.StatusServiceUnavailable,
			want:   []string{"level=ERROR", "status=503"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, http.NoBody))

			assert.Contains(t, buf.String(), "processing request")
			line := completionLine(buf.String())
			for _, want := range tc.want {
				assert.Contains(t, line, want)
			}
		})
	}
}

func TestLogging_RequestScopedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logging.FromContext(r.Context()).Info("registering progression")
				w.WriteHeader(http.StatusCreated)
			})),
		),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/todolists/1/progressions", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-1")
	req.Header.Set("X-Correlation-ID", "corr-log-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.Contains(line, "registering progression") {
			handlerLine = line
		}
	}
	assert.Contains(t, handlerLine, "request_id=req-log-1")
	assert.Contains(t, handlerLine, "correlation_id=corr-log-1")
	assert.Contains(t, completionLine(buf.String()), "request_id=req-log-1")
}

func TestLogging_LogsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/api/v1/todolists/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/todolists/42", http.NoBody))

	assert.Contains(t, completionLine(buf.String()), "route=/api/v1/todolists/{id}")
}

func TestLogging_RedactsSensitiveHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todolists", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Cookie", "session=abc123")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, secret := range []string{"secret-token", "abc123"} {
		assert.NotContains(t, out, secret)
	}
	assert.Contains(t, out, "Authorization=[REDACTED]")
	assert.Contains(t, out, "Cookie=[REDACTED]")
	assert.Contains(t, out, "Accept=application/json")
}
