package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardrow/internal/ui"
	"github.com/llehouerou/cardrow/internal/ui/cardrow"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.row.SetSize(msg.Width, msg.Height-ui.HeaderHeight-ui.FooterHeight)
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case tea.MouseMsg:
		// The row renders below the header, so translate pointer
		// coordinates into its frame.
		msg.Y -= ui.HeaderHeight

		var cmd tea.Cmd
		m.row, cmd = m.row.Update(msg)
		return m, cmd

	case cardrow.OrderChangedMsg:
		m.lastOrder = msg.Order
		m.log.Debug("order changed", "order", msg.Order)
		return m, nil
	}

	var cmd tea.Cmd
	m.row, cmd = m.row.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.DeckLetters):
		return m.switchDeck(DeckLetters), nil, true

	case key.Matches(msg, m.keys.DeckIngredients):
		return m.switchDeck(DeckIngredients), nil, true

	case key.Matches(msg, m.keys.ToggleTheme):
		m.variant = m.variant.Other()
		m.row.SetTheme(m.variant)
		m.log.Debug("theme toggled", "variant", m.variant)
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) switchDeck(d Deck) Model {
	if d == m.deck {
		return m
	}
	m.deck = d
	m.row.SetItems(d.items())
	m.lastOrder = nil
	m.log.Debug("deck switched", "deck", d.Name())
	return m
}
