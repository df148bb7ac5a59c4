package viewstate

import "fmt"

// Event is a discrete user input that changes the view state.
type Event interface {
	fmt.Stringer
	apply(ViewState) ViewState
}

// SearchChanged carries the full text of the search box after a keystroke.
type SearchChanged struct{ Query string }

// CategorySelected carries the new category selection.
type CategorySelected struct{ Category string }

// NavSelected carries the clicked navigation id.
type NavSelected struct{ NavID string }

// SidebarToggled flips the sidebar.
type SidebarToggled struct{}

// Reset clears the filters.
type Reset struct{}

func (e SearchChanged) apply(s ViewState) ViewState    { return SetSearchQuery(s, e.Query) }
func (e CategorySelected) apply(s ViewState) ViewState { return SetCategory(s, e.Category) }
func (e NavSelected) apply(s ViewState) ViewState      { return SetActiveNav(s, e.NavID) }
func (SidebarToggled) apply(s ViewState) ViewState     { return ToggleSidebar(s) }
func (Reset) apply(s ViewState) ViewState              { return ResetFilters(s) }

func (e SearchChanged) String() string    { return fmt.Sprintf("search_changed(%q)", e.Query) }
func (e CategorySelected) String() string { return fmt.Sprintf("category_selected(%q)", e.Category) }
func (e NavSelected) String() string      { return fmt.Sprintf("nav_selected(%q)", e.NavID) }
func (SidebarToggled) String() string     { return "sidebar_toggled" }
func (Reset) String() string              { return "reset" }

// Reduce returns the state that follows s after ev. A nil event is a no-op.
func Reduce(s ViewState, ev Event) ViewState {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}
