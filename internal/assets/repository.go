package assets

import "context"

// AssetRepository is the source of asset records and dashboard stats.
// The filtering logic depends only on this interface, so memory, file and
// database providers are interchangeable.
type AssetRepository interface {
	// LoadAll returns every record in a stable order.
	LoadAll(ctx context.Context) ([]AssetRecord, error)
	// Stats returns the dashboard summary.
	Stats(ctx context.Context) (Stats, error)
	Close() error
}
