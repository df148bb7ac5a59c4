package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cmms/internal/config"
	"cmms/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	sourceFlag string
	pathFlag   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cmms",
	Short: "cmms - maintenance management dashboard",
	Long: `cmms shows the state of maintainable equipment: asset counts, pending
work orders, preventive maintenance and asset health, plus a searchable,
category-filtered asset table.

Run without arguments to open the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The dashboard owns the terminal and logs to files instead.
		if cmd == cmd.Root() {
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

// assetsCmd groups asset queries
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Query asset records",
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets matching a search and category",
	Long: `Lists the assets whose name contains --search (case-insensitive) and whose
category equals --category. Omitting --category, or passing "all", lists
every category.

Example:
  cmms assets list --search rack
  cmms assets list --category HVAC --format yaml`,
	Args: cobra.NoArgs,
	RunE: runAssetsList,
}

// categoriesCmd prints the category selector entries
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category catalog",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

// statsCmd prints the dashboard summary
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

// dbCmd groups SQLite administration
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "SQLite asset database administration",
}

var dbImportCmd = &cobra.Command{
	Use:   "import [seed.yaml]",
	Short: "Load a YAML seed into the SQLite database",
	Long: `Replaces the contents of the SQLite asset database with the records and
stats of a YAML seed file. The database path defaults to data.path when the
configured source is sqlite.`,
	Args: cobra.ExactArgs(1),
	RunE: runDBImport,
}

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cmms configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.cmms/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Data source override: memory, file, sqlite")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "Seed file or database path override")

	// assets list flags
	assetsListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive name substring")
	assetsListCmd.Flags().StringVarP(&listCategory, "category", "c", "all", "Category value, or \"all\"")
	assetsListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format: table, yaml")

	// db import flags
	dbImportCmd.Flags().StringVar(&importDB, "db", "", "Database path (default: data.path, else .cmms/assets.db)")

	// config init flags
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	assetsCmd.AddCommand(assetsListCmd)
	dbCmd.AddCommand(dbImportCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkspace returns --workspace or the current directory.
func resolveWorkspace() string {
	if workspace != "" {
		return workspace
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// resolveConfigPath returns --config or the workspace default.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return filepath.Join(resolveWorkspace(), config.DefaultPath)
}

// loadConfig loads the config file, applies the global flags, validates the
// result and sets up file logging for the workspace.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := logging.Initialize(resolveWorkspace(), cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	if logging.IsDebugMode() {
		getLogger().Debug("File logging enabled",
			zap.String("dir", filepath.Join(resolveWorkspace(), ".cmms", "logs")))
	}
	return cfg, nil
}

// applyFlagOverrides applies --source and --path. Flags win over both the
// file and the environment.
func applyFlagOverrides(cfg *config.Config) {
	if sourceFlag != "" {
		cfg.Data.Source = sourceFlag
	}
	if pathFlag != "" {
		cfg.Data.Path = pathFlag
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func getLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
