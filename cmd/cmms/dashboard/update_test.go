package dashboard

import (
	"errors"
	"strings"
	"testing"

	"cmms/internal/assets"
	"cmms/internal/store"
	"cmms/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// INITIAL STATE
// =============================================================================

func TestNew_DefaultState(t *testing.T) {
	m := NewTestModel()

	assert.Equal(t, viewstate.Default(), m.State())
	assert.Equal(t, []string{"AC Unit - Lab 3", "Server Rack 05", "Microscope X200"}, names(m.Visible()))
	assert.Equal(t, "all", m.Catalog()[0].Value)
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(Options{Snapshot: store.Snapshot{Records: assets.SampleRecords()}})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("expected placeholder view, got %q", got)
	}
}

func TestUpdate_WindowSize_Negative(t *testing.T) {
	m := NewTestModel()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Panic on negative window size: %v", r)
		}
	}()
	m = send(m, tea.WindowSizeMsg{Width: -1, Height: -1})
	_ = m.View()
}

// =============================================================================
// SEARCH
// =============================================================================

func TestSearch_FiltersWhileTyping(t *testing.T) {
	m := NewTestModel()

	m = send(m, runeKey("/"))
	require.True(t, m.searchFocused)

	m = typeText(m, "MICRO")
	assert.Equal(t, "MICRO", m.State().SearchQuery)
	assert.Equal(t, []string{"Microscope X200"}, names(m.Visible()))

	// Keys that are commands elsewhere are plain text while searching.
	m = typeText(m, "q")
	assert.Equal(t, "MICROq", m.State().SearchQuery)
	assert.Empty(t, m.Visible())

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "MICRO", m.State().SearchQuery)
	assert.Len(t, m.Visible(), 1)
}

func TestSearch_EscLeavesQueryInPlace(t *testing.T) {
	m := NewTestModel()
	m = send(m, runeKey("/"))
	m = typeText(m, "rack")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.searchFocused)
	assert.Equal(t, "rack", m.State().SearchQuery)
	assert.Equal(t, []string{"Server Rack 05"}, names(m.Visible()))
}

func TestCtrlC_QuitsEvenWhileSearching(t *testing.T) {
	m := NewTestModel()
	m = send(m, runeKey("/"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected ctrl+c to quit")
	}
}

func TestQ_Quits(t *testing.T) {
	m := NewTestModel()
	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected q to quit")
	}
}

// =============================================================================
// CATEGORY, NAV, SIDEBAR
// =============================================================================

func TestCategoryCycling(t *testing.T) {
	m := NewTestModel()

	m = send(m, runeKey("c"))
	assert.Equal(t, "HVAC", m.State().SelectedCategory)
	assert.Equal(t, []string{"AC Unit - Lab 3"}, names(m.Visible()))

	m = send(m, runeKey("c"), runeKey("c"))
	assert.Equal(t, "Lab", m.State().SelectedCategory)
	assert.Equal(t, []string{"Microscope X200"}, names(m.Visible()))

	// Wraps back to "all".
	m = send(m, runeKey("c"))
	assert.Equal(t, assets.AllCategories, m.State().SelectedCategory)
	assert.Len(t, m.Visible(), 3)

	m = send(m, runeKey("C"))
	assert.Equal(t, "Lab", m.State().SelectedCategory)
}

func TestSearchAndCategoryCombine(t *testing.T) {
	m := NewTestModel()
	m = send(m, runeKey("/"))
	m = typeText(m, "ac")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"AC Unit - Lab 3", "Server Rack 05"}, names(m.Visible()))

	m = send(m, runeKey("c"), runeKey("c")) // IT
	assert.Equal(t, []string{"Server Rack 05"}, names(m.Visible()))
}

func TestNavCycling(t *testing.T) {
	m := NewTestModel()

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewstate.NavAssets, m.State().ActiveNav)

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, viewstate.NavSettings, m.State().ActiveNav)
}

func TestSidebarToggle(t *testing.T) {
	m := NewTestModel()
	before := m.layout.MainWidth()

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.False(t, m.State().SidebarOpen)
	assert.Greater(t, m.layout.MainWidth(), before)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.True(t, m.State().SidebarOpen)
}

func TestReset_KeepsLayout(t *testing.T) {
	m := NewTestModel()
	m = send(m, runeKey("/"))
	m = typeText(m, "zzz")
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc}, runeKey("c"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.Empty(t, m.Visible())

	m = send(m, runeKey("r"))
	s := m.State()
	assert.Equal(t, "", s.SearchQuery)
	assert.Equal(t, assets.AllCategories, s.SelectedCategory)
	assert.Equal(t, viewstate.NavAssets, s.ActiveNav)
	assert.False(t, s.SidebarOpen)
	assert.Equal(t, "", m.search.Value())
	assert.Len(t, m.Visible(), 3)
}

// =============================================================================
// CLIPBOARD
// =============================================================================

func TestCopySelected(t *testing.T) {
	var copied string
	old := clipboardWriteAll
	clipboardWriteAll = func(s string) error { copied = s; return nil }
	defer func() { clipboardWriteAll = old }()

	m := NewTestModel()
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, runeKey("y"))

	assert.Equal(t, "#2 Server Rack 05 | IT | Critical | last maintenance 2024-02-28", copied)
	assert.Contains(t, m.status, "Server Rack 05")
	assert.False(t, m.statusIsErr)
}

func TestCopySelected_Errors(t *testing.T) {
	old := clipboardWriteAll
	clipboardWriteAll = func(string) error { return errors.New("no display") }
	defer func() { clipboardWriteAll = old }()

	m := NewTestModel()
	m = send(m, runeKey("y"))
	assert.True(t, m.statusIsErr)
	assert.Contains(t, m.status, "no display")

	empty := newTestModelWith(nil, nil)
	empty = send(empty, runeKey("y"))
	assert.Equal(t, "No asset selected", empty.status)
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

func TestSnapshotMsg_ReplacesRecordsKeepsFilters(t *testing.T) {
	m := NewTestModel()
	m = send(m, runeKey("c")) // HVAC

	extra := append(assets.SampleRecords(), assets.AssetRecord{
		ID: 4, Name: "Rooftop Chiller 2", Category: "HVAC",
		Status: assets.StatusMaintenance, LastMaintenance: assets.MustDate("2024-01-09"),
	})
	m = send(m, SnapshotMsg{Snapshot: store.Snapshot{Records: extra, Stats: assets.SampleStats()}})

	assert.Equal(t, "HVAC", m.State().SelectedCategory)
	assert.Equal(t, []string{"AC Unit - Lab 3", "Rooftop Chiller 2"}, names(m.Visible()))
	assert.Contains(t, m.status, "Reloaded 4 assets")
}

func TestSnapshotMsg_ErrorShownInPlaceOfTable(t *testing.T) {
	m := NewTestModel()
	m = send(m, SnapshotMsg{Err: errors.New("bad yaml")})

	assert.Len(t, m.Visible(), 3, "records survive a failed reload")
	assert.Contains(t, m.View(), "Failed to load assets: bad yaml")

	m = send(m, SnapshotMsg{Snapshot: store.Snapshot{Records: assets.SampleRecords()}})
	assert.NotContains(t, m.View(), "Failed to load assets")
}

func TestSnapshotMsg_DerivedCategoriesAppear(t *testing.T) {
	m := NewTestModel()
	extra := append(assets.SampleRecords(), assets.AssetRecord{
		ID: 9, Name: "Forklift FL-12", Category: "Warehouse",
		Status: assets.StatusOperational, LastMaintenance: assets.MustDate("2024-03-02"),
	})
	m = send(m, SnapshotMsg{Snapshot: store.Snapshot{Records: extra}})

	cat := m.Catalog()
	assert.Equal(t, "Warehouse", cat[len(cat)-1].Value)
}

// =============================================================================
// VIEW
// =============================================================================

func TestView_RendersRegions(t *testing.T) {
	m := NewTestModel()
	view := m.View()

	for _, want := range []string{
		"Dashboard", "Asset Management", "Total Assets", "1,243",
		"Pending Work Orders", "98%", "Asset Overview", "All Categories",
		"Server Rack 05", "Quick Actions",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_NoMatches(t *testing.T) {
	m := NewTestModel()
	m = send(m, runeKey("/"))
	m = typeText(m, "nothing")
	assert.Contains(t, m.View(), "No assets match the current filters")
}

func TestView_EmptyRepository(t *testing.T) {
	m := newTestModelWith(nil, nil)
	view := m.View()
	assert.Contains(t, view, "No assets loaded.")
	assert.NotContains(t, view, "No assets match the current filters")

	m = send(m, runeKey("/"))
	m = typeText(m, "pump")
	assert.Contains(t, m.View(), "No assets match the current filters")
}

func TestHelpOverlay(t *testing.T) {
	m := NewTestModel()
	m = send(m, runeKey("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Filtering")

	// Keys other than close are swallowed.
	m = send(m, runeKey("c"))
	assert.Equal(t, assets.AllCategories, m.State().SelectedCategory)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestHelpMarkdown_ListsBindings(t *testing.T) {
	md := helpMarkdown(defaultKeyMap())
	for _, want := range []string{"`/`", "`ctrl+b`", "`y`", "`r`", "`?`"} {
		assert.Contains(t, md, want)
	}
}
