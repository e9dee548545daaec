package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := rootOpts.client().Categories(cmd.Context())
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), cats)
			}
			for _, c := range cats {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
