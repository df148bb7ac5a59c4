package dashboard

import (
	"cmms/internal/assets"
	"cmms/internal/config"
	"cmms/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// NewTestModel returns a sized dashboard over the sample records.
func NewTestModel() Model {
	return newTestModelWith(assets.SampleRecords(), nil)
}

func newTestModelWith(records []assets.AssetRecord, loadErr error) Model {
	cfg := config.DefaultConfig()
	cfg.UI.Theme = config.ThemeLight
	m := New(Options{
		Snapshot:   store.Snapshot{Records: records, Stats: assets.SampleStats()},
		LoadErr:    loadErr,
		Categories: cfg.Categories,
		UI:         cfg.UI,
		Source:     "memory",
		SessionID:  "test-session",
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 45})
	return next.(Model)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update and returns the final model.
func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// typeText sends one key message per rune.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, runeKey(string(r)))
	}
	return m
}

func names(records []assets.AssetRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}
