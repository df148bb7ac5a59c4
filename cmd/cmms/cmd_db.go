package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cmms/internal/config"
	"cmms/internal/logging"
	"cmms/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importDB string

// defaultDBPath is used by `db import` when neither --db nor a sqlite
// data.path is configured.
const defaultDBPath = ".cmms/assets.db"

func runDBImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cliLog := logging.Get(logging.CategoryCLI)

	dbPath := importDB
	if dbPath == "" && cfg.Data.Source == config.SourceSQLite {
		dbPath = cfg.Data.Path
	}
	if dbPath == "" {
		dbPath = filepath.Join(resolveWorkspace(), defaultDBPath)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open seed: %w", err)
	}
	defer f.Close()

	records, stats, err := store.DecodeSeed(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	repo, err := store.NewSQLiteRepository(cfg.Data.Driver, dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Import(commandContext(cmd), records, stats); err != nil {
		return err
	}

	cliLog.Info("db import: %d assets from %s into %s (driver %s)", len(records), args[0], dbPath, cfg.Data.Driver)
	getLogger().Info("Seed imported",
		zap.String("seed", args[0]),
		zap.String("db", dbPath),
		zap.String("driver", cfg.Data.Driver),
		zap.Int("assets", len(records)))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d assets into %s\n", len(records), dbPath)
	return nil
}
