package dashboard

import (
	"fmt"
	"strings"

	"cmms/cmd/cmms/ui"
	"cmms/internal/assets"
	"cmms/internal/viewstate"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var quickActions = []string{
	"+ New Work Order",
	"◷ Schedule Maintenance",
	"▣ Register Asset",
	"▤ Generate Report",
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.showHelp {
		overlay := m.safeRenderMarkdown(helpMarkdown(m.keys))
		return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(m.width), overlay)
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(m.layout.MainWidth()),
		m.renderStats(),
		m.renderOverview(),
		m.renderFooter(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

func (m Model) renderSidebar() string {
	var sb strings.Builder
	open := m.state.SidebarOpen

	if open {
		sb.WriteString(ui.Logo(m.styles))
	} else {
		sb.WriteString(m.styles.Title.Render("▟▙"))
	}
	sb.WriteString("\n\n")

	inner := m.layout.SidebarOuterWidth() - 3 // padding + border
	for _, item := range viewstate.NavItems() {
		label := item.Icon
		if open {
			label = item.Icon + " " + item.Label
		}
		style := m.styles.NavItem
		if item.ID == m.state.ActiveNav {
			style = m.styles.NavItemActive
		}
		sb.WriteString(style.Width(max(inner, 1)).Render(label))
		sb.WriteString("\n")
	}

	h := max(m.height-2, 0)
	return m.styles.Sidebar.Width(max(inner+2, 0)).Height(h).Render(sb.String())
}

func (m Model) renderHeader(width int) string {
	title := viewstate.NavLabel(m.state.ActiveNav)
	if title == "" {
		title = m.state.ActiveNav
	}

	box := m.styles.SearchBox
	if m.searchFocused {
		box = m.styles.SearchBoxFocused
	}
	search := box.Render(m.search.View())

	source := m.styles.Muted.Render("source: " + m.source)
	left := lipgloss.JoinVertical(lipgloss.Left, m.styles.Title.Render(title), source)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(search)-2, 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), search)
}

func (m Model) card(title, value string, lines ...string) string {
	body := []string{m.styles.CardTitle.Render(title), m.styles.CardValue.Render(value)}
	body = append(body, lines...)
	return m.styles.Card.
		Width(m.layout.StatCardWidth() - 2).
		Height(ui.StatCardHeight - 2).
		Render(strings.Join(body, "\n"))
}

func (m Model) renderStats() string {
	st := m.stats
	p := st.PendingByPriority

	cards := []string{
		m.card("Total Assets", humanize.Comma(int64(st.TotalAssets)),
			m.styles.Success.Render("↑ "+st.Trends.TotalAssets)),
		m.card("Pending Work Orders", humanize.Comma(int64(st.PendingWorkOrders)),
			m.styles.Warning.Render(st.Trends.PendingWorkOrders),
			m.styles.Muted.Render(fmt.Sprintf("%d high · %d medium · %d low", p.High, p.Medium, p.Low))),
		m.card("Preventive Maintenance", fmt.Sprintf("%d%%", st.PreventiveMaintenance),
			m.styles.Success.Render(st.Trends.PreventiveMaintenance)),
		m.card("Asset Health", "",
			m.styles.StatusDot(assets.StatusOperational, fmt.Sprintf("Operational %d%%", st.Health.Operational)),
			m.styles.StatusDot(assets.StatusMaintenance, fmt.Sprintf("Maintenance %d%%", st.Health.Maintenance)),
			m.styles.StatusDot(assets.StatusCritical, fmt.Sprintf("Critical %d%%", st.Health.Critical))),
	}

	per := m.layout.StatsPerRow()
	rows := make([]string, 0, len(cards)/per)
	for i := 0; i < len(cards); i += per {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:min(i+per, len(cards))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderOverview() string {
	label := assets.LabelFor(m.catalog, m.state.SelectedCategory)
	selector := m.styles.Selector.Render("‹ " + label + " ›")
	count := m.styles.Muted.Render(fmt.Sprintf("%d of %d assets", len(m.visible), len(m.records)))
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("Asset Overview"), "  ", selector, "  ", count)

	var body string
	switch {
	case m.err != nil:
		body = m.styles.Error.Render("Failed to load assets: " + m.err.Error())
	case len(m.visible) == 0 && m.state.Filters().IsZero():
		body = m.styles.Muted.Render("No assets loaded.")
	case len(m.visible) == 0:
		body = m.styles.Muted.Render("No assets match the current filters. Press r to reset.")
	default:
		body = m.table.View()
	}
	panel := lipgloss.JoinVertical(lipgloss.Left, head, body)

	if !m.uiCfg.ShowQuickActions || !m.layout.ShowQuickActions() {
		return panel
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.layout.AssetPanelWidth()).Render(panel),
		m.renderQuickActions())
}

func (m Model) renderQuickActions() string {
	lines := []string{m.styles.CardTitle.Render("Quick Actions")}
	for _, a := range quickActions {
		lines = append(lines, m.styles.PrimaryButton.Width(ui.QuickActionsWidth-6).Render(a))
	}
	return m.styles.Card.Width(ui.QuickActionsWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	var parts []string
	if m.status != "" {
		style := m.styles.Success
		if m.statusIsErr {
			style = m.styles.Error
		}
		parts = append(parts, style.Render(m.status))
	}
	if m.searchFocused {
		parts = append(parts, m.styles.Muted.Render("typing: esc to leave search"))
	} else {
		parts = append(parts, m.help.View(m.keys))
	}
	return m.styles.Footer.Render(strings.Join(parts, "  "))
}
