package cli

import (
	"github.com/spf13/cobra"
)

func newAddCmd(s *session) *cobra.Command {
	var title, description, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a todo item",
		Long: `Create a todo item. The category must be one of the names listed by
"todoctl categories".

Examples:
  todoctl add --title "Write report" --description "Q3 numbers" --category Work
  todoctl add -t "Buy milk" -d "Two litres" -c Personal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := s.todoClient(cmd.Context())
			if err != nil {
				return err
			}

			item, err := client.CreateItem(cmd.Context(), title, description, category)
			if err != nil {
				return err
			}

			writeSuccess(cmd.OutOrStdout(), "Todo item %q created with ID %d", item.Title, item.ID.Int64())
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "item title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "item description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "item category")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
