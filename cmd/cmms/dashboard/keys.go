package dashboard

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the dashboard bindings. It satisfies help.KeyMap so the footer
// and the help overlay stay in sync with what Update actually handles.
type keyMap struct {
	Search        key.Binding
	Blur          key.Binding
	ToggleSidebar key.Binding
	NextNav       key.Binding
	PrevNav       key.Binding
	NextCategory  key.Binding
	PrevCategory  key.Binding
	Copy          key.Binding
	Reset         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "leave search"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "sidebar"),
		),
		NextNav: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevNav: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "prev category"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy asset"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.ToggleSidebar, k.Copy, k.Help, k.Quit}
}

// FullHelp is shown by help.Model when ShowAll is set.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Blur, k.Reset},
		{k.NextCategory, k.PrevCategory, k.Copy},
		{k.NextNav, k.PrevNav, k.ToggleSidebar},
		{k.Help, k.Quit},
	}
}
