package store

import (
	"context"
	"fmt"
	"os"

	"cmms/internal/assets"
	"cmms/internal/logging"
)

// FileRepository reads records from a YAML seed document on every load, so a
// watcher-triggered reload sees the latest contents.
type FileRepository struct {
	path string
}

// NewFileRepository checks that path is readable and returns a repository
// over it.
func NewFileRepository(path string) (*FileRepository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seed file unavailable: %w", err)
	}
	return &FileRepository{path: path}, nil
}

func (f *FileRepository) read(ctx context.Context) ([]assets.AssetRecord, assets.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, assets.Stats{}, err
	}
	timer := logging.StartTimer(logging.CategoryStore, "FileRepository.read")
	defer timer.Stop()

	fh, err := os.Open(f.path)
	if err != nil {
		return nil, assets.Stats{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()

	records, stats, err := DecodeSeed(fh)
	if err != nil {
		return nil, assets.Stats{}, fmt.Errorf("%s: %w", f.path, err)
	}
	logging.StoreDebug("Loaded %d assets from %s", len(records), f.path)
	return records, stats, nil
}

// Snapshot parses the seed file once and returns records and stats from the
// same version of the document.
func (f *FileRepository) Snapshot(ctx context.Context) (Snapshot, error) {
	records, stats, err := f.read(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Records: records, Stats: stats}, nil
}

// LoadAll parses the seed file.
func (f *FileRepository) LoadAll(ctx context.Context) ([]assets.AssetRecord, error) {
	records, _, err := f.read(ctx)
	return records, err
}

// Stats parses the seed file's stats block, or derives it from the records.
func (f *FileRepository) Stats(ctx context.Context) (assets.Stats, error) {
	_, stats, err := f.read(ctx)
	return stats, err
}

// Close is a no-op.
func (f *FileRepository) Close() error { return nil }
