package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List todo items",
		Long: `List every todo item ordered by id, with its progression history.

Examples:
  todoctl list
  todoctl --profile prod list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := s.todoClient(cmd.Context())
			if err != nil {
				return err
			}

			items, err := client.ListItems(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing todo items: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				writeInfo(out, "No todo items registered.")
				return nil
			}
			for _, item := range items {
				writeItem(out, item)
			}
			return nil
		},
	}
}

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a single todo item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := s.todoClient(cmd.Context())
			if err != nil {
				return err
			}

			item, err := client.GetItem(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeItem(out, item)
			fmt.Fprintf(out, "Total progress: %s\n", previewBar(item.TotalProgress))
			return nil
		},
	}
}
