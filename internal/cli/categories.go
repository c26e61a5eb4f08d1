package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the valid categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := s.todoClient(cmd.Context())
			if err != nil {
				return err
			}

			categories, err := client.Categories(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing categories: %w", err)
			}

			out := cmd.OutOrStdout()
			writeInfo(out, "Available categories:")
			for i, name := range categories {
				fmt.Fprintf(out, "  %d. %s\n", i+1, name)
			}
			return nil
		},
	}
}
