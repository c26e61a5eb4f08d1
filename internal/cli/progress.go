package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

func newProgressCmd(s *session) *cobra.Command {
	var (
		percent float64
		at      string
	)

	cmd := &cobra.Command{
		Use:   "progress ID",
		Short: "Register progress on a todo item",
		Long: `Register a progression on a todo item. Each progression must be later
than the previous one and the total may not exceed 100%.

Without --at the server records the current time.

Examples:
  todoctl progress 3 --percent 25
  todoctl progress 3 --percent 12.5 --at 2026-03-01T09:30:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var when time.Time
			if at != "" {
				when, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: must be an RFC 3339 timestamp", at)
				}
			}

			client, err := s.todoClient(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.RegisterProgression(cmd.Context(), id, when, percent); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeSuccess(out, "Progress registered on todo item %d", id)
			fmt.Fprintf(out, "  %s\n", previewBar(todo.PercentFromFloat(percent)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&percent, "percent", 0, "percentage to add, greater than 0 and at most 100")
	cmd.Flags().StringVar(&at, "at", "", "when the progress was made (RFC 3339, default now)")
	_ = cmd.MarkFlagRequired("percent")

	return cmd
}
