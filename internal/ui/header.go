package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, summary and active controls.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render("recipebox", styles.Logo),
		bg.Render(m.summary, styles.Text),
	}

	label := func(name, value string) string {
		if compact {
			return bg.Render(value, styles.AccentText)
		}
		return bg.Render(name+":", styles.MutedText) + bg.Space() + bg.Render(value, styles.AccentText)
	}
	parts = append(parts,
		label("Filter", m.state.Filter.Label()),
		label("Sort", m.state.Sort.Label()),
		bg.Render("♥", lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Favorite)))+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.state.Favorites.Len()), styles.Text),
	)

	if m.state.Search != "" {
		parts = append(parts, bg.Render("/"+truncate(m.state.Search, 18), styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"f", m.state.Filter.Label()},
		{"s", m.state.Sort.Label()},
		{"/", "Search"},
		{"Space", "Favorite"},
		{"i", "Ingredients"},
		{"t", "Steps"},
		{"j/k", "Navigate"},
		{"?", "More"},
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// renderFooter renders the search input while typing, otherwise the last
// status message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.searching {
		return styles.Footer.Width(m.width).Render(m.searchInput.View())
	}
	if m.status == "" {
		return bg.FillLine("", m.width)
	}
	style := styles.SuccessText
	if m.statusIsErr {
		style = styles.DangerText
	}
	return styles.Footer.Width(m.width).Render(bg.Render(m.status, style))
}
