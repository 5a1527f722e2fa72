package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/recipebox/internal/render"
)

// updateSelection keeps the selection on the same recipe after a re-derive.
// If that recipe left the view the row is clamped to the new bounds.
func (m *Model) updateSelection() {
	selectedID := m.selectedID

	if len(m.cards) == 0 {
		m.selectedRow = 0
		return
	}

	if selectedID > 0 {
		if i := m.cardIndex(selectedID); i >= 0 {
			m.selectedRow = i
			m.selectedID = selectedID
			return
		}
	}

	if m.selectedRow >= len(m.cards) {
		m.selectedRow = len(m.cards) - 1
	}
	m.selectedID = m.cards[m.selectedRow].ID
}

// selectedCard returns the card under the cursor, or nil for an empty view.
func (m *Model) selectedCard() *render.Card {
	if m.selectedRow < 0 || m.selectedRow >= len(m.cards) {
		return nil
	}
	return &m.cards[m.selectedRow]
}

// cardIndex returns the position of the card with id, or -1.
func (m *Model) cardIndex(id int) int {
	for i := range m.cards {
		if m.cards[i].ID == id {
			return i
		}
	}
	return -1
}

// contentHeight is the number of rows left for the card list.
func (m Model) contentHeight() int {
	return maxInt(m.height-HeaderLines-FooterLines, 1)
}

// updateViewport re-renders the card list into the viewport and scrolls so
// the selected card is visible.
func (m *Model) updateViewport() {
	if card := m.selectedCard(); card != nil {
		m.selectedID = card.ID
	}
	if !m.ready {
		return
	}

	var blocks []string
	selectedTop, selectedHeight := 0, 0
	lines := 0
	for i, card := range m.cards {
		block := m.renderCard(card, i == m.selectedRow)
		height := lipgloss.Height(block)
		if i == m.selectedRow {
			selectedTop, selectedHeight = lines, height
		}
		blocks = append(blocks, block)
		lines += height
	}

	if len(blocks) == 0 {
		styles := m.theme.Styles()
		m.viewport.SetContent(lipgloss.Place(
			m.width, m.contentHeight(),
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No recipes match"),
		))
		m.viewport.GotoTop()
		return
	}

	m.viewport.SetContent(strings.Join(blocks, "\n"))

	// Keep the selected card in view
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	switch {
	case selectedTop < top:
		m.viewport.SetYOffset(selectedTop)
	case selectedTop+selectedHeight > bottom:
		m.viewport.SetYOffset(selectedTop + selectedHeight - m.viewport.Height)
	}
}

// renderCards renders the scrollable card list.
func (m Model) renderCards() string {
	return m.viewport.View()
}

// renderCard renders one recipe in a titled box. Hidden regions are omitted.
func (m Model) renderCard(card render.Card, selected bool) string {
	bgColor := ternary(selected, m.theme.FocusBg, m.theme.SurfaceAlt)
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	width := maxInt(m.width, 20)
	inner := width - 4

	favStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Favorite)).Bold(true)
	heart := ternary(card.Favorite, "♥", "♡")

	var lines []string
	meta := bg.Render(heart, favStyle) + bg.Space() +
		styles.DifficultyStyle(card.Difficulty).Render(string(card.Difficulty)) + bg.Space() +
		bg.Render(fmt.Sprintf("%d mins", card.Time), styles.MutedText) + bg.Spaces(2) +
		bg.Render(ternary(card.IngredientsVisible, "[i] hide ingredients", "[i] ingredients"), styles.FaintText) + bg.Spaces(2) +
		bg.Render(ternary(card.StepsVisible, "[t] hide steps", "[t] steps"), styles.FaintText)
	lines = append(lines, meta)

	if card.IngredientsVisible {
		lines = append(lines, bg.Render("Ingredients", styles.AccentText.Bold(true)))
		for _, ing := range card.Ingredients {
			lines = append(lines, bg.Render("  • "+truncate(ing, inner-4), styles.Text))
		}
	}

	if card.StepsVisible {
		lines = append(lines, bg.Render("Steps", styles.AccentText.Bold(true)))
		for _, line := range card.Steps.Lines("  ") {
			lines = append(lines, bg.Render("  "+truncate(line, inner-2), styles.Text))
		}
	}

	title := fmt.Sprintf("#%d %s", card.ID, truncate(card.Name, inner-8))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, len(lines)+2, selected)
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐. Focused boxes use the focus colors.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := ternary(focused, m.theme.BorderFocus, m.theme.Border)
	bgColorStr := ternary(focused, m.theme.FocusBg, m.theme.SurfaceAlt)
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := lipgloss.Width(title)
	leftPad := maxInt((innerWidth-titleLen-2)/2, 0)
	rightPad := maxInt(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Padding(0, 1).
		Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	padded := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}
