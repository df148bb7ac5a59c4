// Package dashboard implements the interactive asset dashboard.
//
// The model keeps a viewstate.ViewState and replaces it only through
// viewstate.Reduce; the asset table is re-derived from the loaded records
// after every event. Widgets (search input, table, help) mirror that state
// but never own it.
package dashboard

import (
	"cmms/cmd/cmms/ui"
	"cmms/internal/assets"
	"cmms/internal/config"
	"cmms/internal/logging"
	"cmms/internal/store"
	"cmms/internal/viewstate"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// SnapshotMsg delivers a fresh read of the repository, typically after the
// seed file changed on disk.
type SnapshotMsg struct {
	Snapshot store.Snapshot
	Err      error
}

// Options configures a new dashboard.
type Options struct {
	Snapshot   store.Snapshot
	LoadErr    error // shown in place of the table
	Categories config.CategoriesConfig
	UI         config.UIConfig
	Source     string // data source name for the header
	SessionID  string
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	state viewstate.ViewState

	records []assets.AssetRecord
	visible []assets.AssetRecord
	stats   assets.Stats
	catalog []assets.CategoryOption

	categories config.CategoriesConfig
	uiCfg      config.UIConfig
	source     string
	sessionID  string

	// Widgets
	search        textinput.Model
	searchFocused bool
	table         table.Model
	help          help.Model
	keys          keyMap
	renderer      *glamour.TermRenderer
	showHelp      bool

	styles ui.Styles
	layout ui.LayoutConfig
	width  int
	height int
	ready  bool

	status      string
	statusIsErr bool
	err         error

	log *logging.Logger
}

// New builds a dashboard model from a loaded snapshot.
func New(opts Options) Model {
	styles := ui.NewStyles(ui.ThemeByName(opts.UI.Theme))

	ti := textinput.New()
	ti.Placeholder = "Search assets..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 120
	ti.Width = 32

	t := table.New(
		table.WithColumns(assetColumns(80)),
		table.WithFocused(true),
		table.WithHeight(ui.MinTableRows),
	)
	t.SetStyles(tableStyles(styles))

	h := help.New()
	h.Styles.ShortKey = styles.Bold
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted

	m := Model{
		state:      opts.UI.InitialState(),
		categories: opts.Categories,
		uiCfg:      opts.UI,
		source:     opts.Source,
		sessionID:  opts.SessionID,
		search:     ti,
		table:      t,
		help:       h,
		keys:       defaultKeyMap(),
		styles:     styles,
		err:        opts.LoadErr,
		log:        logging.Get(logging.CategoryUI).With("session_id", opts.SessionID),
	}
	m.renderer = newRenderer(styles.Theme.IsDark, 76)
	m = m.withSnapshot(opts.Snapshot)

	m.log.Info("dashboard initialized: source=%s assets=%d nav=%s", opts.Source, len(m.records), m.state.ActiveNav)
	return m
}

func newRenderer(dark bool, wrap int) *glamour.TermRenderer {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

func tableStyles(s ui.Styles) table.Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.Theme.Border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(s.Theme.Primary).
		Bold(false)
	return ts
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current view state.
func (m Model) State() viewstate.ViewState { return m.state }

// Visible returns the records currently shown in the table.
func (m Model) Visible() []assets.AssetRecord { return m.visible }

// Catalog returns the category selector entries.
func (m Model) Catalog() []assets.CategoryOption { return m.catalog }

// withSnapshot replaces the record set and stats and re-derives everything
// that depends on them. The view state is kept as is.
func (m Model) withSnapshot(s store.Snapshot) Model {
	m.records = s.Records
	m.stats = s.Stats
	m.catalog = assets.BuildCatalog(m.categories.Options, m.records, m.categories.Mode)
	return m.refresh()
}

// dispatch runs ev through the reducer and refreshes derived widgets.
func (m Model) dispatch(ev viewstate.Event) Model {
	m.state = viewstate.Reduce(m.state, ev)
	m.log.Debug("event %s: search=%q category=%q nav=%s sidebar=%t",
		ev, m.state.SearchQuery, m.state.SelectedCategory, m.state.ActiveNav, m.state.SidebarOpen)
	return m.refresh()
}

// refresh re-derives the visible list and table rows from records and state.
func (m Model) refresh() Model {
	m.visible = m.state.Visible(m.records)

	rows := make([]table.Row, 0, len(m.visible))
	for _, r := range m.visible {
		rows = append(rows, assetRow(r))
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) || c < 0 {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	return m.relayout()
}

// SelectedAsset returns the record under the table cursor.
func (m Model) SelectedAsset() (assets.AssetRecord, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return assets.AssetRecord{}, false
	}
	return m.visible[c], true
}
