package config

import (
	"fmt"

	"cmms/internal/viewstate"
)

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig holds dashboard presentation settings.
type UIConfig struct {
	// Theme is "auto" (detect from the terminal), "light" or "dark".
	Theme string `yaml:"theme"`

	// SidebarOpen is the sidebar state of a freshly opened dashboard.
	SidebarOpen bool `yaml:"sidebar_open"`

	// DefaultNav is the navigation item highlighted on start.
	DefaultNav string `yaml:"default_nav"`

	// SidebarWidth is the width of the expanded sidebar in cells.
	SidebarWidth int `yaml:"sidebar_width"`

	// ShowQuickActions toggles the quick-actions panel.
	ShowQuickActions bool `yaml:"show_quick_actions"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:            ThemeAuto,
		SidebarOpen:      true,
		DefaultNav:       viewstate.NavDashboard,
		SidebarWidth:     24,
		ShowQuickActions: true,
	}
}

// Validate checks the UI settings.
func (u UIConfig) Validate() error {
	switch u.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid ui.theme: %q (valid: auto, light, dark)", u.Theme)
	}
	if u.SidebarWidth < 0 {
		return fmt.Errorf("ui.sidebar_width must not be negative, got %d", u.SidebarWidth)
	}
	return nil
}

// InitialState builds the view state a new dashboard starts from. The nav id
// is taken as configured, even if unknown.
func (u UIConfig) InitialState() viewstate.ViewState {
	s := viewstate.Default()
	s.SidebarOpen = u.SidebarOpen
	if u.DefaultNav != "" {
		s = viewstate.SetActiveNav(s, u.DefaultNav)
	}
	return s
}
