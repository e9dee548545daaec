package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"recipe-backend/internal/client"
)

type addOptions struct {
	file        string
	title       string
	ingredients []string
	steps       []string
	prepTime    string
	category    string
	difficulty  string
	servings    string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		Long: `Submit a new recipe to the server.

Fields come from flags or from a YAML or JSON file given with --file. Flags
override values read from the file. The server validates the submission.`,
		Example: `  recipectl add --title "Soup" --ingredient water --ingredient salt --step boil --prep-time 20
  recipectl add --file soup.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML or JSON recipe file")
	cmd.Flags().StringVar(&opts.title, "title", "", "recipe title")
	cmd.Flags().StringArrayVar(&opts.ingredients, "ingredient", nil, "ingredient (repeatable)")
	cmd.Flags().StringArrayVar(&opts.steps, "step", nil, "step (repeatable)")
	cmd.Flags().StringVar(&opts.prepTime, "prep-time", "", "prep time in minutes")
	cmd.Flags().StringVar(&opts.category, "category", "", "category")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "difficulty")
	cmd.Flags().StringVar(&opts.servings, "servings", "", "servings")

	return cmd
}

func runAdd(rootOpts *RootOptions, opts *addOptions, cmd *cobra.Command) error {
	payload, err := opts.payload(cmd)
	if err != nil {
		return err
	}

	res, err := rootOpts.client().Create(cmd.Context(), payload)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return err
	}

	if rootOpts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Message, res.Recipe.Title)
	return err
}

func (o *addOptions) payload(cmd *cobra.Command) (map[string]any, error) {
	payload := map[string]any{}
	if o.file != "" {
		raw, err := os.ReadFile(o.file)
		if err != nil {
			return nil, fmt.Errorf("read recipe file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("parse recipe file %s: %w", o.file, err)
		}
		if payload == nil {
			payload = map[string]any{}
		}
	}

	flags := cmd.Flags()
	setString := func(name, key, value string) {
		if flags.Changed(name) {
			payload[key] = value
		}
	}
	setString("title", "title", o.title)
	setString("prep-time", "prepTime", strings.TrimSpace(o.prepTime))
	setString("category", "category", o.category)
	setString("difficulty", "difficulty", o.difficulty)
	setString("servings", "servings", o.servings)
	if flags.Changed("ingredient") {
		payload["ingredients"] = o.ingredients
	}
	if flags.Changed("step") {
		payload["steps"] = o.steps
	}
	return payload, nil
}
