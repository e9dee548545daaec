package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"recipe-backend/internal/prefs"
)

// NewFavoriteCommand creates the favorite command.
func NewFavoriteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <title>",
		Short: "Toggle a recipe as favorite",
		Long:  "Toggle a recipe in the local favorites. Titles are matched exactly as listed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := rootOpts.provider()
			if err != nil {
				return err
			}
			on, err := provider.ToggleFavorite(args[0])
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"title": args[0], "favorite": on})
			}
			state := "removed from"
			if on {
				state = "added to"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s favorites\n", args[0], state)
			return err
		},
	}
}

// NewRateCommand creates the rate command.
func NewRateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <title> <0-5>",
		Short: "Rate a recipe",
		Long:  "Store a local rating for a recipe. A rating of 0 clears it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating %q: %w", args[1], prefs.ErrInvalidRating)
			}
			provider, err := rootOpts.provider()
			if err != nil {
				return err
			}
			if err := provider.SetRating(args[0], value); err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"title":         args[0],
					"rating":        provider.Rating(args[0]),
					"ratingCount":   provider.RatingCount(args[0]),
					"averageRating": provider.AverageRating(args[0]),
				})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s rated %s\n", args[0], stars(value))
			return err
		},
	}
}
