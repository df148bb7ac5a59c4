// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the dashboard regions
const (
	// Sidebar
	SidebarCollapsedWidth = 6
	DefaultSidebarWidth   = 24

	// Stats grid
	StatCardCount     = 4
	StatCardMinWidth  = 20
	StatCardHeight    = 6
	StatsGapWidth     = 1
	QuickActionsWidth = 28

	// Control areas
	HeaderHeight = 3
	FooterHeight = 1

	// Asset table
	TableChromeHeight = 4 // section header + table header + borders
	MinTableRows      = 3

	// Breakpoints
	MinimumTerminalWidth = 80
	CompactModeWidth     = 110
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	SidebarOpen    bool
	SidebarWidth   int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size.
// Negative sizes are treated as zero.
func NewLayoutConfig(width, height, sidebarWidth int, sidebarOpen bool) LayoutConfig {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if sidebarWidth <= 0 {
		sidebarWidth = DefaultSidebarWidth
	}
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		SidebarOpen:    sidebarOpen,
		SidebarWidth:   sidebarWidth,
		IsCompact:      width < CompactModeWidth,
	}
}

// SidebarOuterWidth is the width the sidebar occupies, open or collapsed.
func (l LayoutConfig) SidebarOuterWidth() int {
	if l.SidebarOpen {
		return l.SidebarWidth
	}
	return SidebarCollapsedWidth
}

// MainWidth returns the width left for the main content.
func (l LayoutConfig) MainWidth() int {
	return max(l.TerminalWidth-l.SidebarOuterWidth(), 0)
}

// ShowQuickActions reports whether the quick-actions panel fits beside the
// asset table.
func (l LayoutConfig) ShowQuickActions() bool {
	return !l.IsCompact
}

// AssetPanelWidth returns the width of the asset overview.
func (l LayoutConfig) AssetPanelWidth() int {
	w := l.MainWidth()
	if l.ShowQuickActions() {
		w -= QuickActionsWidth + StatsGapWidth
	}
	return max(w, 0)
}

// StatCardWidth splits the main width across the stat cards.
func (l LayoutConfig) StatCardWidth() int {
	w := (l.MainWidth() - StatsGapWidth*(StatCardCount-1)) / StatCardCount
	return max(w, StatCardMinWidth)
}

// StatsPerRow returns how many cards fit side by side.
func (l LayoutConfig) StatsPerRow() int {
	if l.MainWidth() >= StatCardCount*StatCardMinWidth+StatsGapWidth*(StatCardCount-1) {
		return StatCardCount
	}
	return StatCardCount / 2
}

// TableHeight returns the number of visible table rows.
func (l LayoutConfig) TableHeight() int {
	rows := StatCardHeight * (StatCardCount / l.StatsPerRow())
	h := l.TerminalHeight - HeaderHeight - FooterHeight - rows - TableChromeHeight
	return max(h, MinTableRows)
}
