package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipe-backend/internal/domain"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title>",
		Short: "Show one recipe",
		Long:  "Show a recipe's ingredients and steps. The title is matched case-insensitively.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := rootOpts.provider()
			if err != nil {
				return err
			}
			list, err := rootOpts.client().List(cmd.Context())
			if err != nil {
				return err
			}

			key := domain.TitleKey(args[0])
			for _, r := range list {
				if domain.TitleKey(r.Title) != key {
					continue
				}
				view := annotate([]domain.Recipe{r}, provider)[0]
				if rootOpts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), view)
				}
				return writeDetail(cmd.OutOrStdout(), view)
			}
			return fmt.Errorf("recipe %q not found", args[0])
		},
	}
}
