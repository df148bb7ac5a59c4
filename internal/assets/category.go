package assets

// CategoryMode controls where the selector's categories come from.
type CategoryMode string

const (
	// CategoryModeFixed shows only the configured categories.
	CategoryModeFixed CategoryMode = "fixed"
	// CategoryModeDerived appends categories found in the loaded records.
	CategoryModeDerived CategoryMode = "derived"
)

// CategoryOption is one entry in the category selector.
type CategoryOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// DefaultCategoryOptions are the categories offered out of the box.
func DefaultCategoryOptions() []CategoryOption {
	return []CategoryOption{
		{Value: "HVAC", Label: "HVAC Systems"},
		{Value: "IT", Label: "IT Equipment"},
		{Value: "Lab", Label: "Lab Equipment"},
	}
}

// BuildCatalog assembles the selector entries: "all" first, then the
// configured options in order, then (in derived mode) any record category
// that was not configured, in first-seen order. Empty and repeated values
// are skipped.
func BuildCatalog(configured []CategoryOption, records []AssetRecord, mode CategoryMode) []CategoryOption {
	catalog := []CategoryOption{{Value: AllCategories, Label: "All Categories"}}
	seen := map[string]bool{AllCategories: true}

	for _, opt := range configured {
		if opt.Value == "" || seen[opt.Value] {
			continue
		}
		if opt.Label == "" {
			opt.Label = opt.Value
		}
		catalog = append(catalog, opt)
		seen[opt.Value] = true
	}

	if mode == CategoryModeFixed {
		return catalog
	}

	for _, r := range records {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		catalog = append(catalog, CategoryOption{Value: r.Category, Label: r.Category})
		seen[r.Category] = true
	}
	return catalog
}

// IndexOf returns the catalog position of value, or -1.
func IndexOf(catalog []CategoryOption, value string) int {
	if value == "" {
		value = AllCategories
	}
	for i, opt := range catalog {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// LabelFor returns the display label for value, falling back to value itself.
func LabelFor(catalog []CategoryOption, value string) string {
	if i := IndexOf(catalog, value); i >= 0 {
		return catalog[i].Label
	}
	return value
}
