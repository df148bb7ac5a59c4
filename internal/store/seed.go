package store

import (
	"fmt"
	"io"

	"cmms/internal/assets"

	"gopkg.in/yaml.v3"
)

// SeedAsset is the YAML form of an asset record.
type SeedAsset struct {
	ID              int    `yaml:"id"`
	Name            string `yaml:"name"`
	Category        string `yaml:"category,omitempty"`
	Status          string `yaml:"status"`
	LastMaintenance string `yaml:"last_maintenance,omitempty"`
}

// SeedDocument is the YAML document read by the file provider and by
// `cmms db import`, and written by `cmms assets list --format yaml`.
type SeedDocument struct {
	Assets []SeedAsset   `yaml:"assets"`
	Stats  *assets.Stats `yaml:"stats,omitempty"`
}

// DecodeSeed parses a seed document and converts it into records and stats.
// When the document has no stats block, total and health are derived from
// the records.
func DecodeSeed(r io.Reader) ([]assets.AssetRecord, assets.Stats, error) {
	var doc SeedDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, assets.Stats{}, fmt.Errorf("failed to parse seed: %w", err)
	}

	records := make([]assets.AssetRecord, 0, len(doc.Assets))
	for i, sa := range doc.Assets {
		rec, err := sa.Record()
		if err != nil {
			return nil, assets.Stats{}, fmt.Errorf("asset #%d (id %d): %w", i+1, sa.ID, err)
		}
		records = append(records, rec)
	}
	if err := assets.ValidateIDs(records); err != nil {
		return nil, assets.Stats{}, err
	}

	if doc.Stats != nil {
		return records, *doc.Stats, nil
	}
	return records, DerivedStats(records), nil
}

// EncodeSeed writes records (and stats, if non-nil) as a seed document.
func EncodeSeed(w io.Writer, records []assets.AssetRecord, stats *assets.Stats) error {
	doc := SeedDocument{Assets: make([]SeedAsset, 0, len(records)), Stats: stats}
	for _, r := range records {
		doc.Assets = append(doc.Assets, SeedAssetFrom(r))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}
	return enc.Close()
}

// Record converts the YAML form into a validated record.
func (sa SeedAsset) Record() (assets.AssetRecord, error) {
	status, err := assets.ParseStatus(sa.Status)
	if err != nil {
		return assets.AssetRecord{}, err
	}
	rec := assets.AssetRecord{ID: sa.ID, Name: sa.Name, Category: sa.Category, Status: status}
	if sa.LastMaintenance != "" {
		if rec.LastMaintenance, err = assets.ParseDate(sa.LastMaintenance); err != nil {
			return assets.AssetRecord{}, err
		}
	}
	return rec, nil
}

// SeedAssetFrom converts a record into its YAML form.
func SeedAssetFrom(r assets.AssetRecord) SeedAsset {
	return SeedAsset{
		ID:              r.ID,
		Name:            r.Name,
		Category:        r.Category,
		Status:          string(r.Status),
		LastMaintenance: r.LastMaintenanceText(),
	}
}

// DerivedStats computes what can be known from the records alone.
func DerivedStats(records []assets.AssetRecord) assets.Stats {
	return assets.Stats{
		TotalAssets: len(records),
		Health:      assets.ComputeHealth(records),
	}
}
