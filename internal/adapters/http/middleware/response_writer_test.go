package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(rw *responseWriter)
		want  int
	}{
		{"implicit ok", func(*responseWriter) {}, http.StatusOK},
		{"explicit", func(rw *responseWriter) { rw.WriteHeader(http.StatusCreated) }, http.StatusCreated},
		{"first call wins", func(rw *responseWriter) {
			rw.WriteHeader(http.StatusNotFound)
			rw.WriteHeader(http.StatusInternalServerError)
		}, http.StatusNotFound},
		{"write locks status", func(rw *responseWriter) {
			_, _ = rw.Write([]byte("{}"))
			rw.WriteHeader(http.StatusBadRequest)
		}, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tc.write(rw)

			if rw.status != tc.want {
				t.Errorf("status = %d, want %d", rw.status, tc.want)
			}
			if rec.Code != tc.want {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())
	_, _ = rw.Write([]byte(`{"success":true}`))
	_, _ = rw.Write([]byte("\n"))

	if rw.bytes != 17 {
		t.Errorf("bytes = %d, want 17", rw.bytes)
	}
	if !rw.wroteHeader {
		t.Error("wroteHeader = false after Write, want true")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
