package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// helpMarkdown builds the overlay text from the live key map.
func helpMarkdown(k keyMap) string {
	var sb strings.Builder
	sb.WriteString("# Dashboard Help\n\n")
	sb.WriteString("The asset table shows every record whose name contains the search text ")
	sb.WriteString("(ignoring case) and whose category matches the selected category. ")
	sb.WriteString("*All Categories* removes the category constraint.\n\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Filtering", []key.Binding{k.Search, k.Blur, k.NextCategory, k.PrevCategory, k.Reset}},
		{"Navigation", []key.Binding{k.NextNav, k.PrevNav, k.ToggleSidebar}},
		{"Assets", []key.Binding{k.Copy}},
		{"General", []key.Binding{k.Help, k.Quit}},
	}
	for _, s := range sections {
		fmt.Fprintf(&sb, "## %s\n\n| Key | Action |\n|-----|--------|\n", s.title)
		for _, b := range s.bindings {
			h := b.Help()
			fmt.Fprintf(&sb, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Press `?` or `esc` to close this help.\n")
	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			// If glamour panics, return plain text
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}
