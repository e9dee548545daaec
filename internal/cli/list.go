package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"recipe-backend/internal/query"
)

type listOptions struct {
	search     string
	category   string
	difficulty string
	maxTime    string
	favorites  bool
	sort       string
}

var validSorts = []query.SortKey{query.NameAsc, query.NameDesc, query.TimeAsc, query.TimeDesc, query.RatingDesc}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Long: `List recipes, optionally searched, filtered and sorted.

The collection is fetched from the server and the query runs locally so that
favorites and ratings from the local prefs file take part.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "match title, ingredient or category")
	cmd.Flags().StringVar(&opts.category, "category", "", "exact category, or \"all\"")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "exact difficulty, or \"all\"")
	cmd.Flags().StringVar(&opts.maxTime, "max-time", "", "maximum prep time in minutes")
	cmd.Flags().BoolVar(&opts.favorites, "favorites", false, "only favorites")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "name-asc|name-desc|time-asc|time-desc|rating-desc")

	return cmd
}

func runList(rootOpts *RootOptions, opts *listOptions, cmd *cobra.Command) error {
	sortKey := query.SortKey(strings.TrimSpace(opts.sort))
	if sortKey != "" && !isValidSort(sortKey) {
		return fmt.Errorf("invalid sort %q: must be one of %v", opts.sort, validSorts)
	}

	provider, err := rootOpts.provider()
	if err != nil {
		return err
	}
	list, err := rootOpts.client().List(cmd.Context())
	if err != nil {
		return err
	}

	engine := query.Engine{Annotations: provider, Locale: rootOpts.collationLocale()}
	result := engine.Run(list, query.Query{
		Search: opts.search,
		Filters: query.Filters{
			Category:      opts.category,
			Difficulty:    opts.difficulty,
			MaxTime:       query.ParseMaxTime(opts.maxTime),
			FavoritesOnly: opts.favorites,
		},
		Sort: sortKey,
	})

	views := annotate(result, provider)
	if rootOpts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), views)
	}
	if len(views) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No recipes found.")
		return err
	}
	return writeTable(cmd.OutOrStdout(), views)
}

func isValidSort(key query.SortKey) bool {
	for _, k := range validSorts {
		if k == key {
			return true
		}
	}
	return false
}
