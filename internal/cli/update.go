package cli

import (
	"github.com/spf13/cobra"
)

func newUpdateCmd(s *session) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the description of a todo item",
		Long: `Change the description of a todo item. Items past 50% progress can no
longer be edited.

Examples:
  todoctl update 3 --description "Q3 and Q4 numbers"`,
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

			if err := client.UpdateItem(cmd.Context(), id, description); err != nil {
				return err
			}

			writeSuccess(cmd.OutOrStdout(), "Todo item %d updated", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
