package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/platform/resilience"
)

// jitterFraction spreads each backoff delay by ±25%.
const jitterFraction = 0.25

// retrier resends a request on transport failures, 429 and 5xx.
type retrier struct {
	attempts int
	backoff  resilience.Backoff
	peer     string
}

// send runs up to r.attempts tries. A Retry-After header on the previous
// response replaces the computed backoff, capped at the backoff maximum.
// The last retryable response is returned with its body open alongside
// the error.
func (r retrier) send(ctx context.Context, hc *http.Client, req *http.Request) (*http.Response, error) {
	if r.attempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be at least 1, got %d", r.attempts)
	}

	if err := bufferBody(req); err != nil {
		return nil, err
	}

	var (
		lastErr error
		wait    time.Duration
	)
	for attempt := 1; attempt <= r.attempts; attempt++ {
		if attempt > 1 {
			if err := r.pause(ctx, req, attempt, wait, lastErr); err != nil {
				return nil, err
			}
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := hc.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr, wait = err, 0
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, r.peer)
		wait = retryAfter(resp.Header.Get("Retry-After"), time.Now())
		if attempt == r.attempts {
			return resp, lastErr
		}
		discard(resp)
	}
	return nil, lastErr
}

func (r retrier) pause(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := r.backoff.Delay(attempt - 1)
	if retryAfter > 0 {
		delay = min(retryAfter, r.backoff.Max)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", r.peer),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", r.attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// bufferBody makes req replayable. Requests built from an in-memory reader
// already carry GetBody; any other body is read into memory once.
func bufferBody(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}

	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	req.ContentLength = int64(len(buf))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	req.Body, _ = req.GetBody()
	return nil
}

// rewind restores req's body before a retry.
func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter reads Retry-After as delay-seconds or an HTTP date relative to
// now. Missing, malformed or past values yield zero.
func retryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(time.Duration(secs)*time.Second, 0)
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// retryableErr rejects cancellation and deadlines. Any other transport
// error from http.Client is a *url.Error, which resilience treats as
// transient.
func retryableErr(err error) bool {
	return resilience.IsTransient(err)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
