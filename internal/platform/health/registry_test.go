package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todolist-service/internal/app/fanout"
	"github.com/jsamuelsen11/todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
	"github.com/jsamuelsen11/todolist-service/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Results(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	degraded := fmt.Errorf("%w: cache unreachable", ports.ErrDegraded)

	tests := []struct {
		name   string
		checks map[string]error
	}{
		{"no checks", map[string]error{}},
		{"all healthy", map[string]error{"database": nil, "cache": nil, "business_rules": nil}},
		{"one failing", map[string]error{"database": refused, "business_rules": nil}},
		{"degraded and healthy", map[string]error{"database": nil, "cache": degraded}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for name, err := range tc.checks {
				r.Register(checker(t, name, err))
			}

			results := r.CheckAll(context.Background())

			require.NotNil(t, results)
			assert.Len(t, results, len(tc.checks))
			for name, want := range tc.checks {
				got, ok := results[name]
				require.True(t, ok, "missing result for %q", name)
				assert.ErrorIs(t, got, want)
				if want == nil {
					assert.NoError(t, got)
				}
			}
		})
	}
}

func TestRegister_SameNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("database")

	secondErr := errors.New("second failure")
	second := checker(t, "database", secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	require.Len(t, results, 1)
	assert.ErrorIs(t, results["database"], secondErr)
}

func TestCheckAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("database")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled).Maybe()

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["database"], context.Canceled)
}

func TestCheckAll_PanickingCheck(t *testing.T) {
	t.Parallel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("cache")
	c.EXPECT().HealthCheck(mock.Anything).Run(func(context.Context) { panic("nil client") }).Return(nil)

	r := health.New()
	r.Register(c)
	r.Register(checker(t, "database", nil))

	results := r.CheckAll(context.Background())

	assert.ErrorIs(t, results["cache"], fanout.ErrPanic)
	assert.NoError(t, results["database"])
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	// Each check waits for the other; running them one by one would deadlock.
	var wg sync.WaitGroup
	wg.Add(2)
	block := func(context.Context) {
		wg.Done()
		wg.Wait()
	}

	a := mocks.NewMockHealthChecker(t)
	a.EXPECT().Name().Return("database")
	a.EXPECT().HealthCheck(mock.Anything).Run(block).Return(nil)

	b := mocks.NewMockHealthChecker(t)
	b.EXPECT().Name().Return("cache")
	b.EXPECT().HealthCheck(mock.Anything).Run(block).Return(nil)

	r := health.New()
	r.Register(a)
	r.Register(b)

	assert.Len(t, r.CheckAll(context.Background()), 2)
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return(fmt.Sprintf("checker-%d", i))
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
		} else {
			wg.Go(func() { r.CheckAll(context.Background()) })
		}
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 25)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	degraded := fmt.Errorf("%w: 2 categories configured, want at least 4", ports.ErrDegraded)

	tests := []struct {
		name    string
		results map[string]error
		want    health.Status
	}{
		{"no checks", map[string]error{}, health.StatusHealthy},
		{"all healthy", map[string]error{"database": nil, "business_rules": nil}, health.StatusHealthy},
		{"degraded", map[string]error{"database": nil, "business_rules": degraded}, health.StatusDegraded},
		{"unhealthy wins", map[string]error{"database": errors.New("down"), "business_rules": degraded}, health.StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, health.Evaluate(tt.results))
		})
	}
}
