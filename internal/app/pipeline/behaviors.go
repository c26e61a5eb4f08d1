package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/platform/resilience"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
)

// Error kinds reported by the Errors behavior.
const (
	KindValidation     = "validation"
	KindBusinessRule   = "business_rule"
	KindInfrastructure = "infrastructure"
	KindUnexpected     = "unexpected"
)

// Classify names the kind of err for logging.
func Classify(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return KindValidation
	case errors.Is(err, domain.ErrBusinessRule):
		return KindBusinessRule
	case resilience.IsTransient(err), errors.Is(err, context.DeadlineExceeded):
		return KindInfrastructure
	default:
		return KindUnexpected
	}
}

// Default builds the standard chain: errors, validation, resilience,
// performance. If metrics is nil, no metrics are recorded.
func Default(cfg config.PipelineConfig, policies *resilience.Policies, metrics *telemetry.Metrics) *Pipeline {
	return New(
		Errors(),
		Validation(time.Now),
		Resilience(policies),
		Performance(cfg.SlowThreshold, metrics),
	)
}

// Errors logs failed requests and returns the error unchanged. Caller
// mistakes are logged at WARN, everything else at ERROR.
func Errors() Behavior {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (any, error) {
			out, err := next(ctx, req)
			if err == nil {
				return out, nil
			}

			kind := Classify(err)
			level := slog.LevelError
			if kind == KindValidation || kind == KindBusinessRule {
				level = slog.LevelWarn
			}

			logging.FromContext(ctx).Log(ctx, level, "request failed",
				slog.String("operation", req.Name()),
				slog.String("error_kind", kind),
				slog.Any("error", err),
			)

			return out, err
		}
	}
}

// Validation rejects requests whose Validate method fails before they reach
// their handler. Requests that are not a [Validator] pass through.
func Validation(now func() time.Time) Behavior {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (any, error) {
			if v, ok := req.(Validator); ok {
				if err := v.Validate(now()); err != nil {
					return nil, err
				}
			}
			return next(ctx, req)
		}
	}
}

// Resilience runs command and query requests under the matching policy.
// [PolicyNone] requests and a nil policies value bypass it.
func Resilience(policies *resilience.Policies) Behavior {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (any, error) {
			var policy *resilience.Policy
			if policies != nil {
				switch req.Policy() {
				case PolicyCommand:
					policy = policies.Command
				case PolicyQuery:
					policy = policies.Query
				case PolicyNone:
				}
			}
			if policy == nil {
				return next(ctx, req)
			}

			return resilience.Execute(ctx, policy, func(ctx context.Context) (any, error) {
				return next(ctx, req)
			})
		}
	}
}

// Performance times each request. Calls slower than threshold are logged at
// WARN and failures at ERROR with the elapsed time.
func Performance(threshold time.Duration, metrics *telemetry.Metrics) Behavior {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (any, error) {
			start := time.Now()
			out, err := next(ctx, req)
			elapsed := time.Since(start)

			logger := logging.FromContext(ctx)
			attrs := []any{
				slog.String("operation", req.Name()),
				slog.Duration("elapsed", elapsed),
			}

			switch {
			case err != nil:
				logger.ErrorContext(ctx, "request failed after elapsed time", append(attrs, slog.Any("error", err))...)
			case elapsed > threshold:
				logger.WarnContext(ctx, "slow request", append(attrs, slog.Duration("threshold", threshold))...)
			default:
				logger.DebugContext(ctx, "request completed", attrs...)
			}

			recordMetrics(ctx, metrics, req, elapsed, err)

			return out, err
		}
	}
}

func recordMetrics(ctx context.Context, metrics *telemetry.Metrics, req Request, elapsed time.Duration, err error) {
	if metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrRequest.String(req.Name()),
		telemetry.AttrPolicy.String(req.Policy().String()),
		telemetry.AttrResult.String(result),
	)

	metrics.PipelineRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.PipelineRequestTotal.Add(ctx, 1, attrs)
}
