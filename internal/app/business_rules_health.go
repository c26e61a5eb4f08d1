package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// MinCategories is the number of categories below which the business rules
// check reports the service as degraded.
const MinCategories = 4

// BusinessRulesCheck reports whether the repository can serve the data the
// business rules depend on.
type BusinessRulesCheck struct {
	repo ports.TodoRepository
}

// NewBusinessRulesCheck creates a BusinessRulesCheck.
func NewBusinessRulesCheck(repo ports.TodoRepository) *BusinessRulesCheck {
	return &BusinessRulesCheck{repo: repo}
}

// Name implements ports.HealthChecker.
func (c *BusinessRulesCheck) Name() string { return "business_rules" }

// HealthCheck implements ports.HealthChecker. Fewer than MinCategories
// categories is degraded; a failing repository is unhealthy.
func (c *BusinessRulesCheck) HealthCheck(ctx context.Context) error {
	categories, err := c.repo.Categories(ctx)
	if err != nil {
		return fmt.Errorf("business rules configuration failed: %w", err)
	}

	if _, err := c.repo.NextID(ctx); err != nil {
		return fmt.Errorf("business rules configuration failed: %w", err)
	}

	if n := len(categories); n < MinCategories {
		return fmt.Errorf("%w: %d categories configured, want at least %d", ports.ErrDegraded, n, MinCategories)
	}
	return nil
}
