package cardrow

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the keyboard surface of the card row.
type KeyMap struct {
	FocusLeft  key.Binding
	FocusRight key.Binding
	PickUp     key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	Drop       key.Binding
	Cancel     key.Binding
	Reset      key.Binding
}

// DefaultKeyMap returns the standard bindings with the given reset key.
func DefaultKeyMap(resetKey string) KeyMap {
	if resetKey == "" {
		resetKey = "R"
	}
	return KeyMap{
		FocusLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "focus left"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "focus right"),
		),
		PickUp: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pick up / drop"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "move right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Reset: key.NewBinding(
			key.WithKeys(resetKey),
			key.WithHelp(resetKey, "reset order"),
		),
	}
}

// Instructions renders the persistent keyboard help line referenced by the
// assistive surface.
func (k KeyMap) Instructions() string {
	parts := []string{}
	for _, b := range []key.Binding{k.PickUp, k.MoveLeft, k.MoveRight, k.Drop, k.Cancel, k.Reset} {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " · ")
}
