package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cardrow/internal/icons"
	"github.com/llehouerou/cardrow/internal/ui/styles"
)

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.row.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	t := styles.For(m.variant)
	title := t.S().Title.Render("cardrow")
	deck := t.S().Subtle.Render(" · " + m.deck.Name())
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title+deck)
}

func (m Model) footerView() string {
	t := styles.For(m.variant)

	announcement := ""
	if a := m.row.Announcement(); a.Text != "" {
		announcement = t.S().Announce.Render(icons.Current().Announce + " " + a.Text)
	}

	help := m.row.KeyMap().Instructions() + " · " + m.keys.instructions()

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, announcement) +
		"\n" +
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, t.S().Subtle.Render(help))
}
