package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusmart/internal/config"
	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/logger"
	"github.com/abhisek/edusmart/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edusmart",
	Short: "Learn, level up, unlock",
	Long:  "EduSmart is a terminal e-learning client: watch lessons, take quizzes, earn XP and unlock achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUSMART_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog JSON file (overrides EDUSMART_CATALOG env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner id (overrides EDUSMART_USER env var)")
	rootCmd.Flags().Bool("skip-welcome", false, "Start on the dashboard")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.UserID = u
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// loadCatalog reads the configured catalog file or the built-in catalog.
func loadCatalog(cfg config.Config, log *logger.Logger) (*content.Catalog, error) {
	if cfg.CatalogPath == "" {
		return content.Default()
	}
	cat, err := content.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogPath, err)
	}
	log.Info("catalog loaded", "path", cfg.CatalogPath, "version", cat.Version, "courses", len(cat.Courses))
	return cat, nil
}
