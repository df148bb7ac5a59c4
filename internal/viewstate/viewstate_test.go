package viewstate

import (
	"testing"

	"cmms/internal/assets"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "", s.SearchQuery)
	assert.Equal(t, assets.AllCategories, s.SelectedCategory)
	assert.Equal(t, NavDashboard, s.ActiveNav)
	assert.True(t, s.SidebarOpen)
	assert.Len(t, s.Visible(assets.SampleRecords()), 3)
}

func TestToggleSidebar(t *testing.T) {
	s := Default()
	closed := ToggleSidebar(s)
	assert.False(t, closed.SidebarOpen)
	assert.True(t, s.SidebarOpen, "original state must not change")
	assert.True(t, ToggleSidebar(closed).SidebarOpen)
}

func TestSetActiveNav_AcceptsAnyString(t *testing.T) {
	s := SetActiveNav(Default(), "does-not-exist")
	assert.Equal(t, "does-not-exist", s.ActiveNav)
	assert.Equal(t, -1, NavIndex(s.ActiveNav))
	assert.Equal(t, "", NavLabel(s.ActiveNav))
}

func TestReduce_EventsTouchOnlyTheirField(t *testing.T) {
	base := Default()

	tests := []struct {
		name string
		ev   Event
		want ViewState
	}{
		{"search", SearchChanged{Query: "rack"}, ViewState{SearchQuery: "rack", SelectedCategory: assets.AllCategories, ActiveNav: NavDashboard, SidebarOpen: true}},
		{"category", CategorySelected{Category: "IT"}, ViewState{SelectedCategory: "IT", ActiveNav: NavDashboard, SidebarOpen: true}},
		{"empty category", CategorySelected{}, base},
		{"nav", NavSelected{NavID: NavReports}, ViewState{SelectedCategory: assets.AllCategories, ActiveNav: NavReports, SidebarOpen: true}},
		{"sidebar", SidebarToggled{}, ViewState{SelectedCategory: assets.AllCategories, ActiveNav: NavDashboard}},
		{"nil", nil, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Reduce(base, tt.ev)); diff != "" {
				t.Errorf("Reduce(%v) mismatch (-want +got):\n%s", tt.ev, diff)
			}
		})
	}
}

func TestReduce_ResetKeepsLayout(t *testing.T) {
	s := Default()
	for _, ev := range []Event{
		SearchChanged{Query: "micro"},
		CategorySelected{Category: "Lab"},
		NavSelected{NavID: NavAssets},
		SidebarToggled{},
		Reset{},
	} {
		s = Reduce(s, ev)
	}

	assert.Equal(t, ViewState{SelectedCategory: assets.AllCategories, ActiveNav: NavAssets, SidebarOpen: false}, s)
}

func TestVisible_FollowsState(t *testing.T) {
	records := assets.SampleRecords()

	s := Reduce(Default(), SearchChanged{Query: "server"})
	got := s.Visible(records)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Server Rack 05", got[0].Name)
	}

	s = Reduce(Reduce(Default(), CategorySelected{Category: "Lab"}), SearchChanged{})
	got = s.Visible(records)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Microscope X200", got[0].Name)
	}

	// Sidebar and nav never affect filtering.
	s = Reduce(Reduce(Default(), SidebarToggled{}), NavSelected{NavID: "bogus"})
	assert.Len(t, s.Visible(records), 3)
}

func TestNavCycling(t *testing.T) {
	assert.Equal(t, NavAssets, NextNav(NavDashboard))
	assert.Equal(t, NavDashboard, NextNav(NavSettings))
	assert.Equal(t, NavSettings, PrevNav(NavDashboard))
	assert.Equal(t, NavDashboard, NextNav("unknown"))
	assert.Equal(t, NavDashboard, PrevNav("unknown"))
	assert.Equal(t, "Work Orders", NavLabel(NavWorkOrders))
}

func TestNavItems_ReturnsCopy(t *testing.T) {
	items := NavItems()
	items[0].Label = "changed"
	assert.Equal(t, "Dashboard", NavItems()[0].Label)
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, `search_changed("ac")`, SearchChanged{Query: "ac"}.String())
	assert.Equal(t, "sidebar_toggled", SidebarToggled{}.String())
}
