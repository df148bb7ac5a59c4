package dashboard

import (
	"fmt"
	"strconv"

	"cmms/cmd/cmms/ui"
	"cmms/internal/assets"

	"github.com/charmbracelet/bubbles/table"
)

const (
	colIDWidth       = 4
	colCategoryWidth = 10
	colStatusWidth   = 14
	colDateWidth     = 16
	colNameMinWidth  = 12
)

// assetColumns sizes the table for width cells; the name column takes
// whatever the fixed columns leave.
func assetColumns(width int) []table.Column {
	// Each column carries one cell of padding on both sides.
	fixed := colIDWidth + colCategoryWidth + colStatusWidth + colDateWidth + 5*2
	name := max(width-fixed, colNameMinWidth)
	return []table.Column{
		{Title: "ID", Width: colIDWidth},
		{Title: "Asset Name", Width: name},
		{Title: "Category", Width: colCategoryWidth},
		{Title: "Status", Width: colStatusWidth},
		{Title: "Last Maint.", Width: colDateWidth},
	}
}

// statusGlyphs keeps table cells free of ANSI so the table measures them
// correctly.
var statusGlyphs = map[assets.Status]string{
	assets.StatusOperational: "●",
	assets.StatusMaintenance: "◐",
	assets.StatusCritical:    "▲",
}

func statusCell(s assets.Status) string {
	g, ok := statusGlyphs[s]
	if !ok {
		g = "○"
	}
	return g + " " + s.Label()
}

func assetRow(r assets.AssetRecord) table.Row {
	return table.Row{
		strconv.Itoa(r.ID),
		r.Name,
		r.Category,
		statusCell(r.Status),
		r.LastMaintenanceText(),
	}
}

// assetLine is the clipboard form of a record.
func assetLine(r assets.AssetRecord) string {
	return fmt.Sprintf("#%d %s | %s | %s | last maintenance %s",
		r.ID, r.Name, r.Category, r.Status.Label(), r.LastMaintenanceText())
}

// resize applies new terminal dimensions.
func (m Model) resize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.ready = true
	m.renderer = newRenderer(m.styles.Theme.IsDark, max(m.width-8, 40))
	return m.relayout()
}

// relayout recomputes widget sizes from the terminal size and sidebar state.
func (m Model) relayout() Model {
	m.layout = ui.NewLayoutConfig(m.width, m.height, m.uiCfg.SidebarWidth, m.state.SidebarOpen)
	if !m.ready {
		return m
	}
	panel := m.layout.AssetPanelWidth()
	if !m.uiCfg.ShowQuickActions {
		panel = m.layout.MainWidth()
	}
	m.table.SetColumns(assetColumns(panel - 4))
	m.table.SetWidth(max(panel-2, 0))
	m.table.SetHeight(m.layout.TableHeight())
	m.search.Width = max(min(panel/2, 48), 12)
	m.help.Width = m.layout.MainWidth()
	return m
}
