// Package viewstate coordinates the dashboard's view state.
//
// ViewState is an immutable value: every user event produces a new state via
// Reduce, and the visible asset list is always derived from (records, state).
// Nothing here performs I/O or keeps hidden state, so every transition can be
// tested in isolation.
package viewstate

import "cmms/internal/assets"

// ViewState is the complete mutable-by-replacement state of the dashboard.
type ViewState struct {
	SearchQuery      string
	SelectedCategory string
	ActiveNav        string
	SidebarOpen      bool
}

// Default returns the state a freshly initialized view starts with.
func Default() ViewState {
	return ViewState{
		SearchQuery:      "",
		SelectedCategory: assets.AllCategories,
		ActiveNav:        NavDashboard,
		SidebarOpen:      true,
	}
}

// Filters projects the state onto the asset filters.
func (s ViewState) Filters() assets.Filters {
	return assets.Filters{SearchQuery: s.SearchQuery, Category: s.SelectedCategory}
}

// Visible returns the records that pass the state's filters, in input order.
func (s ViewState) Visible(records []assets.AssetRecord) []assets.AssetRecord {
	return assets.DeriveVisibleAssets(records, s.Filters())
}

// ToggleSidebar flips the sidebar between open and closed.
func ToggleSidebar(s ViewState) ViewState {
	s.SidebarOpen = !s.SidebarOpen
	return s
}

// SetActiveNav highlights navID. Any string is accepted; an id that is not in
// the navigation catalog simply leaves no item highlighted.
func SetActiveNav(s ViewState, navID string) ViewState {
	s.ActiveNav = navID
	return s
}

// SetSearchQuery replaces the free-text search.
func SetSearchQuery(s ViewState, q string) ViewState {
	s.SearchQuery = q
	return s
}

// SetCategory replaces the category selection. The empty string is stored as
// the "all" sentinel.
func SetCategory(s ViewState, category string) ViewState {
	if category == "" {
		category = assets.AllCategories
	}
	s.SelectedCategory = category
	return s
}

// ResetFilters clears search and category, keeping layout state.
func ResetFilters(s ViewState) ViewState {
	d := Default()
	s.SearchQuery = d.SearchQuery
	s.SelectedCategory = d.SelectedCategory
	return s
}
