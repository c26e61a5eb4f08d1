package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery_PassesThroughWithoutPanic(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todolists", http.NoBody))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("response = %d %q, want 200 \"ok\"", rec.Code, rec.Body.String())
	}
}

func TestRecovery_PanicBecomesInternalError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		shown string
	}{
		{"string", "repository exploded", "repository exploded"},
		{"int", 42, "42"},
		{"error", errors.New("nil map write"), "nil map write"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			handler := middleware.RequestID()(middleware.Recovery(testLogger(&logs))(
				http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(tc.value) }),
			))

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/todolists/3", http.NoBody)
			req.Header.Set("X-Request-ID", "req-panic-1")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			var body dto.Envelope[any]
			if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&body); err != nil {
				t.Fatalf("decoding response body: %v", err)
			}
			if body.Success || body.Message != dto.MsgInternalError {
				t.Errorf("envelope = %+v, want failure with %q", body, dto.MsgInternalError)
			}
			if strings.Contains(rec.Body.String(), tc.shown) {
				t.Error("response leaks the panic value")
			}

			out := logs.String()
			for _, want := range []string{"panic recovered", tc.shown, "goroutine", "req-panic-1", "/api/v1/todolists/3"} {
				if !strings.Contains(out, want) {
					t.Errorf("log output missing %q", want)
				}
			}
		})
	}
}

func TestRecovery_KeepsResponseAlreadyStarted(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late panic")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todolists", http.NoBody))

	if rec.Code != http.StatusAccepted || rec.Body.String() != "partial" {
		t.Errorf("response = %d %q, want the handler's 202 \"partial\"", rec.Code, rec.Body.String())
	}
}

func TestRecovery_ReRaisesAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/todolists", http.NoBody))
}
