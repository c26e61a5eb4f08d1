package cli

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a todo item",
		Long: `Delete a todo item. Items past 50% progress cannot be deleted.

Examples:
  todoctl remove 3
  todoctl rm 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := s.todoClient(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.RemoveItem(cmd.Context(), id); err != nil {
				return err
			}

			writeSuccess(cmd.OutOrStdout(), "Todo item %d removed", id)
			return nil
		},
	}
}
