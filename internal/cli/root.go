package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"recipe-backend/internal/client"
	"recipe-backend/internal/prefs"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server     string
	Prefs      string
	ConfigPath string
	Format     string // "text" | "json"

	// Locale overrides the collation locale taken from the environment.
	Locale string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for recipectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "recipectl",
		Short:         "Browse and add recipes",
		Long:          "Command-line client for the recipe catalog. Favorites and ratings are stored locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", "", "recipe API base URL")
	cmd.PersistentFlags().StringVar(&opts.Prefs, "prefs", "", "path to the local favorites and ratings file")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", DefaultConfigPath(), "config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "collation locale for name sorting (default from LANG)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewCategoriesCommand(opts))
	cmd.AddCommand(NewFavoriteCommand(opts))
	cmd.AddCommand(NewRateCommand(opts))

	return cmd
}

// resolve fills Server and Prefs. Flags win over the environment, which wins
// over the config file.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("server") {
		o.Server = cfg.Server
		if env := strings.TrimSpace(os.Getenv(envServer)); env != "" {
			o.Server = env
		}
	}
	if !cmd.Flags().Changed("prefs") {
		o.Prefs = cfg.Prefs
	}
	return nil
}

func (o *RootOptions) client() *client.Client {
	return client.New(o.Server)
}

func (o *RootOptions) provider() (*prefs.Provider, error) {
	p, err := prefs.Open(prefs.NewFileKV(o.Prefs))
	if err != nil {
		return nil, fmt.Errorf("open prefs: %w", err)
	}
	return p, nil
}

// collationLocale picks the --locale flag, then LC_ALL, LC_COLLATE and LANG.
func (o *RootOptions) collationLocale() language.Tag {
	candidates := []string{o.Locale, os.Getenv("LC_ALL"), os.Getenv("LC_COLLATE"), os.Getenv("LANG")}
	for _, raw := range candidates {
		if tag, ok := parseLocale(raw); ok {
			return tag
		}
	}
	return language.Und
}

// parseLocale accepts POSIX forms such as "fr_FR.UTF-8" as well as BCP 47.
func parseLocale(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
