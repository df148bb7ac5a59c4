package dashboard

import (
	"fmt"

	"cmms/internal/assets"
	"cmms/internal/viewstate"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case SnapshotMsg:
		return m.applySnapshot(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other widget-internal messages.
	if m.searchFocused {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) applySnapshot(msg SnapshotMsg) Model {
	if msg.Err != nil {
		m.log.Error("reload failed: %v", msg.Err)
		m.err = msg.Err
		return m
	}
	m.err = nil
	m = m.withSnapshot(msg.Snapshot)
	m = m.setStatus(fmt.Sprintf("Reloaded %d assets", len(m.records)), false)
	m.log.Info("snapshot applied: %d assets, %d visible", len(m.records), len(m.visible))
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, even while typing.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.searchFocused {
		return m.handleSearchKey(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Info("quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searchFocused = true
		cmd := m.search.Focus()
		return m, tea.Batch(cmd, textinput.Blink)

	case key.Matches(msg, m.keys.ToggleSidebar):
		return m.dispatch(viewstate.SidebarToggled{}), nil

	case key.Matches(msg, m.keys.NextNav):
		return m.dispatch(viewstate.NavSelected{NavID: viewstate.NextNav(m.state.ActiveNav)}), nil

	case key.Matches(msg, m.keys.PrevNav):
		return m.dispatch(viewstate.NavSelected{NavID: viewstate.PrevNav(m.state.ActiveNav)}), nil

	case key.Matches(msg, m.keys.NextCategory):
		return m.dispatch(viewstate.CategorySelected{Category: m.cycleCategory(1)}), nil

	case key.Matches(msg, m.keys.PrevCategory):
		return m.dispatch(viewstate.CategorySelected{Category: m.cycleCategory(-1)}), nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected(), nil

	case key.Matches(msg, m.keys.Reset):
		m.search.SetValue("")
		return m.dispatch(viewstate.Reset{}), nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	// Everything else moves the table cursor.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.searchFocused = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.state.SearchQuery {
		m = m.dispatch(viewstate.SearchChanged{Query: q})
	}
	return m, cmd
}

// cycleCategory returns the catalog value delta steps away from the current
// selection. A selection missing from the catalog restarts at "all".
func (m Model) cycleCategory(delta int) string {
	n := len(m.catalog)
	if n == 0 {
		return assets.AllCategories
	}
	i := assets.IndexOf(m.catalog, m.state.SelectedCategory)
	if i < 0 {
		return m.catalog[0].Value
	}
	return m.catalog[((i+delta)%n+n)%n].Value
}

func (m Model) copySelected() Model {
	rec, ok := m.SelectedAsset()
	if !ok {
		return m.setStatus("No asset selected", true)
	}
	if err := clipboardWriteAll(assetLine(rec)); err != nil {
		m.log.Warn("clipboard write failed: %v", err)
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.setStatus(fmt.Sprintf("Copied %s to clipboard", rec.Name), false)
}

func (m Model) setStatus(s string, isErr bool) Model {
	m.status = s
	m.statusIsErr = isErr
	return m
}
