// Package main is the entry point for todoctl. Flags are parsed by the cli
// package; the API client graph is wired with samber/do v2 on first use.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todolist-service/internal/cli"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// apiServiceName identifies the API in client logs and breaker state.
const apiServiceName = "todolist-api"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, newClient(os.Stderr), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// newClient returns a factory that loads the profile config and resolves the
// ACL client from a fresh injector.
func newClient(logOut io.Writer) cli.ClientFactory {
	return func(_ context.Context, opts cli.Options) (ports.TodoClient, error) {
		loadOpts := []config.Option{config.WithConfigDir(opts.ConfigDir)}
		if opts.BaseURL != "" {
			loadOpts = append(loadOpts, config.WithOverrides(map[string]any{"client.base_url": opts.BaseURL}))
		}
		cfg, err := config.Load(opts.Profile, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		level := "error"
		if opts.Verbose {
			level = "debug"
		}
		logger := logging.New(level, cfg.Log.Format, logOut, slog.String("component", "todoctl"))

		injector := do.New()
		do.ProvideValue(injector, cfg)
		do.ProvideValue(injector, logger)

		do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
			cfg := do.MustInvoke[*config.Config](i)
			return httpclient.New(&cfg.Client, apiServiceName, nil, do.MustInvoke[*slog.Logger](i)), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.TodoClient, error) {
			client := do.MustInvoke[*httpclient.Client](i)
			return acl.NewTodoClient(client, do.MustInvoke[*slog.Logger](i)), nil
		})

		client, err := do.Invoke[ports.TodoClient](injector)
		if err != nil {
			return nil, fmt.Errorf("resolving api client: %w", err)
		}
		return client, nil
	}
}
