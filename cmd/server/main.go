// Package main is the entry point for the todo list API. It opens the
// storage backend, wires all dependencies using samber/do v2, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/cache"
	adapthttp "github.com/jsamuelsen11/todolist-service/internal/adapters/http"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/todolist-service/internal/app"
	"github.com/jsamuelsen11/todolist-service/internal/app/pipeline"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/platform/resilience"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, test, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr, slog.String("service", cfg.Telemetry.ServiceName))

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Infrastructure with a lifecycle: storage backend and cache client.
	infra, err := openInfrastructure(ctx, cfg, logger)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return err
	}
	defer infra.Close(logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue(injector, infra.backend)

	registerDependencies(injector, cfg, infra.cache, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range infra.healthCheckers() {
		registry.Register(checker)
	}
	registry.Register(app.NewBusinessRulesCheck(do.MustInvoke[ports.TodoRepository](injector)))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// infrastructure holds the storage backend and the optional cache together
// with the resources to release on shutdown.
type infrastructure struct {
	backend storage.Backend
	cache   ports.CategoryCache
	pg      *postgres.Backend
	redis   *redis.Client
}

func openInfrastructure(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infrastructure, error) {
	infra := &infrastructure{}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pg, err := postgres.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		infra.backend = pg
		infra.pg = pg
	default:
		logger.Warn("using non-durable memory storage")
		infra.backend = memory.New()
	}

	infra.cache, infra.redis = cache.New(cfg.Cache, logger)
	return infra, nil
}

// healthCheckers returns the infrastructure components that report health.
func (i *infrastructure) healthCheckers() []ports.HealthChecker {
	var checkers []ports.HealthChecker
	if i.pg != nil {
		checkers = append(checkers, i.pg)
	}
	if hc, ok := i.cache.(ports.HealthChecker); ok {
		checkers = append(checkers, hc)
	}
	return checkers
}

// Close releases the cache client and the database pool.
func (i *infrastructure) Close(logger *slog.Logger) {
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			logger.Error("redis close error", slog.Any("error", err))
		}
	}
	if i.pg != nil {
		i.pg.Close()
	}
}

// registerDependencies provides the service graph. categoryCache is passed
// directly because a disabled cache is a nil interface.
func registerDependencies(
	injector *do.RootScope, cfg *config.Config, categoryCache ports.CategoryCache, logger *slog.Logger,
) {
	do.Provide(injector, func(i do.Injector) (*resilience.Policies, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return resilience.NewPolicies(cfg.Resilience, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoRepository, error) {
		backend := do.MustInvoke[storage.Backend](i)
		policies := do.MustInvoke[*resilience.Policies](i)
		return storage.NewRepository(backend, policies.Database, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*pipeline.Pipeline, error) {
		policies := do.MustInvoke[*resilience.Policies](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return pipeline.Default(cfg.Pipeline, policies, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		repo := do.MustInvoke[ports.TodoRepository](i)
		p := do.MustInvoke[*pipeline.Pipeline](i)
		return app.NewTodoService(repo, categoryCache, p, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CategoryHandler, error) {
		return handlers.NewCategoryHandler(do.MustInvoke[ports.TodoService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		categoryH := do.MustInvoke[*handlers.CategoryHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, categoryH, healthH,
			adapthttp.Middleware(cfg.Server, logger, metrics)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
