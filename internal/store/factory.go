package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cmms/internal/assets"
	"cmms/internal/config"
)

// ErrUnknownProvider is returned when data.source names no registered provider.
var ErrUnknownProvider = errors.New("unknown asset provider")

// Constructor builds a repository from the data config.
type Constructor func(ctx context.Context, cfg config.DataConfig) (assets.AssetRepository, error)

// DefaultConstructors maps every data source to its provider.
func DefaultConstructors() map[string]Constructor {
	return map[string]Constructor{
		config.SourceMemory: func(context.Context, config.DataConfig) (assets.AssetRepository, error) {
			return NewSampleRepository(), nil
		},
		config.SourceFile: func(_ context.Context, cfg config.DataConfig) (assets.AssetRepository, error) {
			return NewFileRepository(cfg.Path)
		},
		config.SourceSQLite: func(_ context.Context, cfg config.DataConfig) (assets.AssetRepository, error) {
			return NewSQLiteRepository(cfg.Driver, cfg.Path)
		},
	}
}

// Open builds the repository named by cfg.Source using the default providers.
func Open(ctx context.Context, cfg config.DataConfig) (assets.AssetRepository, error) {
	return OpenWith(ctx, cfg, DefaultConstructors())
}

// OpenWith builds the repository named by cfg.Source from constructors.
func OpenWith(ctx context.Context, cfg config.DataConfig, constructors map[string]Constructor) (assets.AssetRepository, error) {
	constructor, ok := constructors[cfg.Source]
	if !ok {
		names := make([]string, 0, len(constructors))
		for name := range constructors {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("%w %q. Available: %v", ErrUnknownProvider, cfg.Source, names)
	}

	repo, err := constructor(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s provider: %w", cfg.Source, err)
	}
	return repo, nil
}

// Snapshot is one consistent read of a repository.
type Snapshot struct {
	Records []assets.AssetRecord
	Stats   assets.Stats
}

// snapshotReader is implemented by repositories that can read records and
// stats together in one pass.
type snapshotReader interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// LoadSnapshot reads records and stats and enforces unique ids. Repositories
// that implement Snapshot are read once; others through LoadAll then Stats.
func LoadSnapshot(ctx context.Context, repo assets.AssetRepository) (Snapshot, error) {
	if sr, ok := repo.(snapshotReader); ok {
		snap, err := sr.Snapshot(ctx)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
		}
		if err := assets.ValidateIDs(snap.Records); err != nil {
			return Snapshot{}, err
		}
		return snap, nil
	}

	records, err := repo.LoadAll(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load assets: %w", err)
	}
	if err := assets.ValidateIDs(records); err != nil {
		return Snapshot{}, err
	}
	stats, err := repo.Stats(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load stats: %w", err)
	}
	return Snapshot{Records: records, Stats: stats}, nil
}
