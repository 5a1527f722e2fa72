package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// startSearch focuses the search input, seeded with the applied query.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.searchInput.SetValue(m.state.Search)
	m.searchInput.CursorEnd()
	return m.searchInput.Focus()
}

// closeSearch leaves input mode. Any pending debounced apply is dropped.
func (m *Model) closeSearch() {
	m.debounce.Cancel()
	m.searching = false
	m.searchInput.Blur()
}

// handleSearchKey routes keys while the search input has focus. Each edit
// schedules a debounced apply; only the most recent one takes effect.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeSearch()
		m.searchInput.SetValue("")
		if m.state.Search != "" {
			m.applySearch("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.closeSearch()
		m.applySearch(m.searchInput.Value())
		return m, nil

	case msg.String() == "ctrl+c":
		m.closeSearch()
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}
	tick := m.debounce.Schedule(m.searchInput.Value())
	return m, tea.Batch(cmd, tick)
}
