package viewstate

// Navigation item ids.
const (
	NavDashboard  = "dashboard"
	NavAssets     = "assets"
	NavWorkOrders = "workorders"
	NavSchedule   = "schedule"
	NavReports    = "reports"
	NavSettings   = "settings"
)

// NavItem is one entry of the sidebar.
type NavItem struct {
	ID    string
	Label string
	Icon  string
}

var navItems = []NavItem{
	{ID: NavDashboard, Label: "Dashboard", Icon: "◧"},
	{ID: NavAssets, Label: "Asset Management", Icon: "▣"},
	{ID: NavWorkOrders, Label: "Work Orders", Icon: "☰"},
	{ID: NavSchedule, Label: "Schedule", Icon: "◷"},
	{ID: NavReports, Label: "Reports", Icon: "▤"},
	{ID: NavSettings, Label: "Settings", Icon: "⚙"},
}

// NavItems returns the sidebar entries in display order.
func NavItems() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// NavIndex returns the position of id in NavItems, or -1.
func NavIndex(id string) int {
	for i, item := range navItems {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// NavLabel returns the label for id, or "" if id is unknown.
func NavLabel(id string) string {
	if i := NavIndex(id); i >= 0 {
		return navItems[i].Label
	}
	return ""
}

// NextNav returns the id after current, wrapping around. An unknown current
// id starts from the first item.
func NextNav(current string) string {
	i := NavIndex(current)
	if i < 0 {
		return navItems[0].ID
	}
	return navItems[(i+1)%len(navItems)].ID
}

// PrevNav returns the id before current, wrapping around. An unknown current
// id starts from the first item.
func PrevNav(current string) string {
	i := NavIndex(current)
	if i < 0 {
		return navItems[0].ID
	}
	return navItems[(i-1+len(navItems))%len(navItems)].ID
}
