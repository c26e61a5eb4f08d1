// Package health runs the API's dependency checks and folds their outcomes
// into the Healthy, Degraded or Unhealthy status served on /health.
package health

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/app/fanout"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

const (
	// maxConcurrentChecks bounds how many checks run at once.
	maxConcurrentChecks = 8
	// checkTimeout bounds each individual check.
	checkTimeout = 5 * time.Second
)

// Registry implements [ports.HealthRegistry]. It is safe for concurrent
// use; checks run in registration order of their names.
type Registry struct {
	mu       sync.RWMutex
	names    []string
	checkers map[string]ports.HealthChecker
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker. A checker with a name already registered replaces
// the earlier one and keeps its position.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checkers[name]; !ok {
		r.names = append(r.names, name)
	}
	r.checkers[name] = checker
}

// CheckAll runs the checks concurrently, each bounded by checkTimeout. A
// panicking check reports [fanout.ErrPanic]; a check skipped because ctx
// ended reports ctx.Err().
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := append([]string(nil), r.names...)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, fanout.Options{Workers: maxConcurrentChecks, Timeout: checkTimeout}, checkers,
		func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
			return struct{}{}, c.HealthCheck(ctx)
		})

	results := make(map[string]error, len(names))
	for i, o := range outcomes {
		results[names[i]] = o.Err
	}
	return results
}

// Status is the aggregate health of the service.
type Status string

const (
	StatusHealthy   Status = "Healthy"
	StatusDegraded  Status = "Degraded"
	StatusUnhealthy Status = "Unhealthy"
)

// Evaluate folds individual check results into one status. Any failure not
// wrapping [ports.ErrDegraded] makes the service unhealthy.
func Evaluate(results map[string]error) Status {
	status := StatusHealthy
	for _, err := range results {
		switch {
		case err == nil:
		case errors.Is(err, ports.ErrDegraded):
			status = StatusDegraded
		default:
			return StatusUnhealthy
		}
	}
	return status
}
