package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/config"
	"github.com/abhisek/mathmonsters/internal/logging"
	"github.com/abhisek/mathmonsters/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "mathmonsters",
	Short:        "Arithmetic battles for kids",
	Long:         "Math Monsters: a terminal game where children beat monsters by answering addition and subtraction questions.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHMONSTERS_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON or YAML catalog (overrides MATHMONSTERS_CATALOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	return cfg, nil
}

// resolveDBPath ensures the database directory exists and returns the path.
func resolveDBPath(cfg config.Config) (string, error) {
	return cfg.DBPath, store.EnsureDir(cfg.DBPath)
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}

func newLogger(cfg config.Config) (*logging.Logger, error) {
	log, err := logging.New(logging.Options{
		Mode:  cfg.LogMode,
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}
