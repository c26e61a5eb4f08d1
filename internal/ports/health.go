package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a failing check that still leaves the API usable, such
// as too few categories configured or an unreachable category cache.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports on one dependency of the API: the database, the
// category cache, the business rules.
type HealthChecker interface {
	// Name keys the check in health responses ("database", "cache",
	// "business_rules").
	Name() string

	// HealthCheck returns nil when healthy and an error wrapping ErrDegraded
	// when degraded. Any other error means unhealthy. It must return once
	// ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry holds the checks behind /health and /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every check and returns the outcomes by name, nil for
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
