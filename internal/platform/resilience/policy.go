// Package resilience composes a timeout, a retry strategy and a circuit
// breaker into a named policy that wraps any fallible operation.
//
// The strategies nest in this order (outermost first):
//
//	Timeout → Retry → Circuit Breaker → operation
//
// The timeout bounds the whole call including every retry and backoff wait.
// The circuit breaker sees each attempt separately.
//
// Construction:
//
//	policies := resilience.NewPolicies(cfg.Resilience, metrics, logger)
//
// Executing an operation:
//
//	list, err := resilience.Execute(ctx, policies.Database, func(ctx context.Context) (*todo.List, error) {
//	    return backend.load(ctx)
//	})
//
// Only transient errors are retried and counted against the breaker. Domain
// errors pass straight through on the first attempt.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
)

// halfOpenProbes is the number of trial calls allowed while half-open.
const halfOpenProbes = 1

// Policy is a named resilience policy. A nil *Policy runs operations
// directly with no timeout, retry or breaker.
type Policy struct {
	name       string
	timeout    time.Duration
	maxRetries int
	backoff    Backoff
	breaker    *gobreaker.CircuitBreaker[struct{}]
	metrics    *telemetry.Metrics
}

// New builds a policy from configuration. If metrics is nil, retry counts
// are not recorded.
func New(name string, cfg config.PolicyConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Policy {
	cb := cfg.CircuitBreaker

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenProbes,
		Interval:    cb.SamplingDuration,
		Timeout:     cb.BreakDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if int(counts.Requests) < cb.MinimumThroughput {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cb.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !countsAsFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Policy{
		name:       name,
		timeout:    cfg.Timeout,
		maxRetries: cfg.Retry.MaxRetries,
		backoff:    backoffFromConfig(cfg.Retry),
		breaker:    breaker,
		metrics:    metrics,
	}
}

// Name returns the policy name used in logs and metrics.
func (p *Policy) Name() string {
	if p == nil {
		return "none"
	}
	return p.name
}

// State reports the circuit breaker state.
func (p *Policy) State() gobreaker.State {
	if p == nil {
		return gobreaker.StateClosed
	}
	return p.breaker.State()
}

// Do runs fn under the policy. The context passed to fn carries the policy
// deadline. The error of the last attempt is returned unchanged, except that
// breaker rejections are reported as [domain.ErrUnavailable].
//
// A deadline error is retried only while the policy's own context is live,
// which is the case when an inner policy timed out.
func (p *Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	if p == nil {
		return fn(ctx)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			if err := p.waitForRetry(ctx, attempt, lastErr); err != nil {
				return err
			}
		}

		_, err := p.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, fn(ctx)
		})
		if err == nil {
			return nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %s circuit breaker: %w", domain.ErrUnavailable, p.name, err)
		}

		lastErr = err
		if !countsAsFailure(err) {
			return err
		}
		if ctx.Err() != nil {
			if errors.Is(err, ctx.Err()) {
				return err
			}
			return p.gaveUp(ctx, attempt+1, err)
		}
	}

	return lastErr
}

// Execute runs fn under p and returns its value.
func Execute[T any](ctx context.Context, p *Policy, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := p.Do(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func (p *Policy) waitForRetry(ctx context.Context, attempt int, lastErr error) error {
	delay := p.backoff.Delay(attempt)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying operation",
		slog.String("operation", "resilience.Do"),
		slog.String("policy", p.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_retries", p.maxRetries),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	if p.metrics != nil {
		p.metrics.ResilienceRetryTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrPolicy.String(p.name)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return p.gaveUp(ctx, attempt, lastErr)
	case <-timer.C:
		return nil
	}
}

// gaveUp reports a policy context that ended between or during attempts,
// keeping the last attempt's error in the chain.
func (p *Policy) gaveUp(ctx context.Context, attempts int, lastErr error) error {
	return fmt.Errorf("%s policy gave up after %d attempts: %w (last error: %w)", p.name, attempts, ctx.Err(), lastErr)
}

// Policies holds the named policies used by the service.
type Policies struct {
	// Database wraps every repository load and save.
	Database *Policy
	// Command wraps pipeline requests that change state.
	Command *Policy
	// Query wraps read-only pipeline requests.
	Query *Policy
}

// NewPolicies builds the database, command and query policies.
func NewPolicies(cfg config.ResilienceConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Policies {
	return &Policies{
		Database: New("database", cfg.Database, metrics, logger),
		Command:  New("command", cfg.Command, metrics, logger),
		Query:    New("query", cfg.Query, metrics, logger),
	}
}
