package assets

import "strings"

// AllCategories is the category filter value meaning "no category constraint".
const AllCategories = "all"

// Filters is the combination of free-text search and category selection
// that decides which records are visible.
type Filters struct {
	SearchQuery string
	Category    string
}

// DefaultFilters matches every record.
func DefaultFilters() Filters {
	return Filters{Category: AllCategories}
}

// IsZero reports whether the filters impose no constraint at all.
func (f Filters) IsZero() bool {
	return f.SearchQuery == "" && f.matchesAnyCategory()
}

func (f Filters) matchesAnyCategory() bool {
	return f.Category == "" || f.Category == AllCategories
}

// Matches reports whether a single record passes both filters.
// A record without a category never matches a concrete category filter.
func (f Filters) Matches(r AssetRecord) bool {
	if !f.matchesAnyCategory() && (r.Category == "" || r.Category != f.Category) {
		return false
	}
	if f.SearchQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.SearchQuery))
}

// DeriveVisibleAssets returns the records that pass f, in input order.
// The input slice is never modified and the result never aliases it.
func DeriveVisibleAssets(records []AssetRecord, f Filters) []AssetRecord {
	visible := make([]AssetRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}
