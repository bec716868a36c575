package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the shell-level bindings. The card row carries its own
// bindings for focus movement and reordering.
type keyMap struct {
	Quit            key.Binding
	DeckLetters     key.Binding
	DeckIngredients key.Binding
	ToggleTheme     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		DeckLetters: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "letters"),
		),
		DeckIngredients: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "ingredients"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
	}
}

// instructions renders the shell bindings as a help line fragment.
func (k keyMap) instructions() string {
	parts := make([]string, 0, 4)
	for _, b := range []key.Binding{k.DeckLetters, k.DeckIngredients, k.ToggleTheme, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
