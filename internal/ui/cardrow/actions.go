package cardrow

import tea "github.com/charmbracelet/bubbletea"

// OrderChangedMsg is sent whenever the committed order changes, carrying the
// full id sequence after the change.
type OrderChangedMsg struct {
	Order []string
}

func orderChangedCmd(order []string) tea.Cmd {
	return func() tea.Msg {
		return OrderChangedMsg{Order: order}
	}
}
