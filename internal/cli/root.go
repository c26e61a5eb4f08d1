// Package cli implements todoctl, the command-line client for the todo list
// API. Commands talk to the API through [ports.TodoClient]; the client is
// built on first use so that help and usage errors never need a config.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Options are the global flags shared by every command.
type Options struct {
	// Profile selects configs/{profile}.yaml.
	Profile string
	// ConfigDir is the directory holding the YAML config files.
	ConfigDir string
	// BaseURL overrides client.base_url when set.
	BaseURL string
	// Verbose enables debug logging of API calls on stderr.
	Verbose bool
}

// ClientFactory builds the API client from the global options.
type ClientFactory func(ctx context.Context, opts Options) (ports.TodoClient, error)

// session holds the lazily created client for one invocation.
type session struct {
	opts    Options
	factory ClientFactory
	client  ports.TodoClient
}

func (s *session) todoClient(ctx context.Context) (ports.TodoClient, error) {
	if s.client != nil {
		return s.client, nil
	}
	c, err := s.factory(ctx, s.opts)
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}
	s.client = c
	return c, nil
}

// NewRootCommand returns the todoctl command tree.
func NewRootCommand(factory ClientFactory) *cobra.Command {
	s := &session{factory: factory}

	root := &cobra.Command{
		Use:   "todoctl",
		Short: "Manage todo items through the todo list API",
		Long: `todoctl drives the todo list REST API from a terminal.

Items have a title, a description and a category. Progress is registered
as timestamped percentages that add up to at most 100%.

Examples:
  todoctl list                                   # Show every item
  todoctl add -t "Write report" -d "Q3 numbers" -c Work
  todoctl progress 1 --percent 25                # Register 25% now
  todoctl --base-url http://api:8080 categories  # Talk to another server`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&s.opts.Profile, "profile", "p", "local", "config profile to load")
	flags.StringVar(&s.opts.ConfigDir, "config-dir", "configs", "directory holding the config files")
	flags.StringVar(&s.opts.BaseURL, "base-url", "", "API base URL (overrides client.base_url)")
	flags.BoolVarP(&s.opts.Verbose, "verbose", "v", false, "log API calls to stderr")

	root.AddCommand(
		newListCmd(s),
		newShowCmd(s),
		newAddCmd(s),
		newUpdateCmd(s),
		newRemoveCmd(s),
		newProgressCmd(s),
		newCategoriesCmd(s),
	)

	return root
}

// Run executes the command tree with args and returns the process exit
// code. Failures are written to errOut.
func Run(ctx context.Context, factory ClientFactory, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(factory)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		writeError(errOut, err)
		return 1
	}
	return 0
}

func writeError(w io.Writer, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(w, "✗ Validation failed")
		for _, field := range verr.SortedFields() {
			fmt.Fprintf(w, "  - %s: %s\n", field, verr.Fields[field])
		}
		return
	}
	fmt.Fprintf(w, "✗ %v\n", err)
}
