package cardrow

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cardrow/internal/ui/styles"
)

// cardStyles holds the pre-built lipgloss styles for one theme.
type cardStyles struct {
	normal  lipgloss.Style // resting card border
	focused lipgloss.Style // keyboard-focused card border
	active  lipgloss.Style // dragged card border
	ghost   lipgloss.Style // drop slot outline under the dragged card
	footer  lipgloss.Style // position indicator
	handle  lipgloss.Style // drag handle glyph
	dimText lipgloss.Style // card text while the card is de-emphasized
	slot    lipgloss.Style // ghost slot marker
}

func newCardStyles(t *styles.Theme) cardStyles {
	border := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

	return cardStyles{
		normal:  border.BorderForeground(t.Border),
		focused: border.BorderForeground(t.BorderFocus),
		active: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.BorderFocus),
		ghost:   border.BorderForeground(t.Shadow),
		footer:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		handle:  lipgloss.NewStyle().Foreground(t.FgMuted),
		dimText: lipgloss.NewStyle().Foreground(t.FgMuted),
		slot:    lipgloss.NewStyle().Foreground(t.Shadow),
	}
}
