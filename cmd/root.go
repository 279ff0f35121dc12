package cmd

import (
	"fmt"

	"github.com/abhisek/orienta/internal/config"
	"github.com/abhisek/orienta/internal/content"
	"github.com/abhisek/orienta/internal/store"
	"github.com/spf13/cobra"
)

// cfg is loaded from the environment before any command runs.
var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "orienta",
	Short: "Vocational orientation quiz",
	Long:  "Orienta: answer a few questions and discover the study areas that fit you best.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		cfg.SetupLogger()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ORIENTA_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a catalog YAML file (overrides ORIENTA_CONTENT env var)")
	rootCmd.Flags().Bool("no-intro", false, "Skip the intro screen")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(areasCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ORIENTA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// loadContent loads the catalog from --content, then ORIENTA_CONTENT, then
// the built-in default.
func loadContent(cmd *cobra.Command) (*content.Content, error) {
	path, _ := cmd.Flags().GetString("content")
	if path == "" {
		path = cfg.ContentPath
	}
	c, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return c, nil
}

// openStore opens the history database resolved for cmd.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
