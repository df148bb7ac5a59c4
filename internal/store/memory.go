package store

import (
	"context"

	"cmms/internal/assets"
)

// MemoryRepository serves a fixed in-memory record set. With no arguments it
// holds the built-in sample data.
type MemoryRepository struct {
	records []assets.AssetRecord
	stats   assets.Stats
}

// NewSampleRepository returns the mock repository the dashboard starts with.
func NewSampleRepository() *MemoryRepository {
	return &MemoryRepository{records: assets.SampleRecords(), stats: assets.SampleStats()}
}

// NewMemoryRepository serves the given records and stats. It rejects
// duplicate ids.
func NewMemoryRepository(records []assets.AssetRecord, stats assets.Stats) (*MemoryRepository, error) {
	if err := assets.ValidateIDs(records); err != nil {
		return nil, err
	}
	cp := make([]assets.AssetRecord, len(records))
	copy(cp, records)
	return &MemoryRepository{records: cp, stats: stats}, nil
}

// LoadAll returns a copy of the records.
func (m *MemoryRepository) LoadAll(ctx context.Context) ([]assets.AssetRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]assets.AssetRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Stats returns the configured summary.
func (m *MemoryRepository) Stats(ctx context.Context) (assets.Stats, error) {
	if err := ctx.Err(); err != nil {
		return assets.Stats{}, err
	}
	return m.stats, nil
}

// Close is a no-op.
func (m *MemoryRepository) Close() error { return nil }
