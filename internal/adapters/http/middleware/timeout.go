package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
)

// MsgTimeout is the envelope message of a 504 response.
const MsgTimeout = "Request timed out"

// Timeout bounds each request by timeout; a non-positive timeout disables it.
// The handler runs on its own goroutine against a buffered writer. Past the
// deadline the client gets a 504 envelope and the handler's output is
// dropped.
//
// A panic in the handler is re-raised on the serving goroutine so Recovery
// still sees it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				if ctx.Err() != nil {
					tw.timeOut(w, r)
					return
				}
				tw.mu.Lock()
				defer tw.mu.Unlock()
				maps.Copy(w.Header(), tw.header)
				if tw.statusCode == 0 {
					tw.statusCode = http.StatusOK
				}
				w.WriteHeader(tw.statusCode)
				_, _ = w.Write(tw.buf)
			case <-ctx.Done():
				tw.timeOut(w, r)
			}
		})
	}
}

// timeoutWriter buffers a handler's response until Timeout decides whether to
// send it.
type timeoutWriter struct {
	mu         sync.Mutex
	header     http.Header
	buf        []byte
	statusCode int
	timedOut   bool
}

// Header returns the buffered header map. Handlers set headers before
// writing, while Timeout is still waiting, so no lock is taken.
func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.statusCode == 0 {
		tw.statusCode = http.StatusOK
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

// timeOut discards the buffered response and writes the 504 envelope.
func (tw *timeoutWriter) timeOut(w http.ResponseWriter, r *http.Request) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.timedOut = true
	dto.WriteJSON(w, r, http.StatusGatewayTimeout, dto.Fail(MsgTimeout))
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.statusCode != 0 {
		return
	}
	tw.statusCode = code
}
