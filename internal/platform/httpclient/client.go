// Package httpclient is the outbound HTTP client todoctl uses to reach the
// todo list API. Every call goes through these stages, outermost first:
//
//	circuit breaker, rate limiter, id and trace propagation, span, retries
//
// Typical use:
//
//	client := httpclient.New(&cfg.Client, "todolist-api", metrics, logger)
//	req, err := client.NewRequest(ctx, http.MethodGet, "/api/v1/todolists", http.NoBody)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores the ids that are forwarded as headers:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/resilience"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
)

const tracerName = "httpclient"

// Result labels recorded on client metrics.
const (
	resultSuccess     = "success"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil: unlimited
	retry   retrier
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the service called name, which labels spans,
// metrics and the breaker. metrics may be nil.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		name:    name,
		retry: retrier{
			attempts: cfg.Retry.MaxAttempts,
			backoff: resilience.Backoff{
				Initial:    cfg.Retry.InitialInterval,
				Max:        cfg.Retry.MaxInterval,
				Multiplier: cfg.Retry.Multiplier,
				Jitter:     jitterFraction,
			},
			peer: name,
		},
		metrics: metrics,
		logger:  logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	return c
}

// BaseURL is the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewRequest builds a request for path relative to the base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), body)
}

// Do sends req through every stage.
//
// A response whose status is not retried is returned with a nil error and
// an open body. When the retries run out on a retryable status, Do returns
// that last response with its body open together with the error. A
// rejected breaker, a rate limiter wait cut short or a transport failure
// return a nil response. The caller closes any non-nil body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.name),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.url", req.URL.String()),
				attribute.String("peer.service", c.name),
			),
		)
		defer span.End()

		req = req.WithContext(ctx)
		propagate(ctx, req)

		resp, err := c.retry.send(ctx, c.http, req)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.observe(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// Name identifies the downstream service. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck derives availability from the breaker state alone, without a
// network call.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

// observe records duration and count, including breaker rejections.
func (c *Client) observe(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	result := resultError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = resultCircuitOpen
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = resultSuccess
		}
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
