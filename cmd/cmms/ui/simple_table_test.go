package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable_View(t *testing.T) {
	styles := NewStyles(LightTheme())
	table := NewSimpleTable("Assets", []string{"ID", "Name", "Status"})
	table.AddRow("1", "AC Unit - Lab 3", styles.StatusBadge("operational"))
	table.AddRow("2", "Server Rack 05")

	view := table.View(styles)

	for _, want := range []string{"Assets", "ID", "Name", "AC Unit - Lab 3", "Server Rack 05", "Operational"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "─") {
		t.Error("expected a header divider")
	}
}

func TestSimpleTable_Empty(t *testing.T) {
	styles := NewStyles(LightTheme())
	table := NewSimpleTable("", []string{"ID"})
	table.Empty = "No assets found"

	view := table.View(styles)
	if !strings.Contains(view, "No assets found") {
		t.Errorf("expected empty message, got %q", view)
	}
	if strings.Contains(view, "ID") {
		t.Errorf("headers should not render for an empty table, got %q", view)
	}
}

func TestSimpleTable_ColumnWidthsIgnoreStyling(t *testing.T) {
	styles := NewStyles(DarkTheme())
	table := NewSimpleTable("", []string{"S"})
	table.AddRow(styles.Bold.Render("abcdef"))

	widths := table.columnWidths()
	if widths[0] != 6 {
		t.Errorf("expected visible width 6, got %d", widths[0])
	}
}
