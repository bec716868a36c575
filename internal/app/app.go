// Package app assembles the demo shell around the card row: deck
// switching, theme toggling, and a footer that mirrors reorder
// announcements for sighted users.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/cardrow/internal/config"
	"github.com/llehouerou/cardrow/internal/deck"
	"github.com/llehouerou/cardrow/internal/ui/cardrow"
	"github.com/llehouerou/cardrow/internal/ui/styles"
)

// Deck identifies one of the built-in demo decks.
type Deck int

const (
	DeckLetters Deck = iota
	DeckIngredients
)

func (d Deck) items() []deck.Item {
	if d == DeckIngredients {
		return deck.Ingredients()
	}
	return deck.Letters()
}

// Name returns the deck label shown in the header.
func (d Deck) Name() string {
	if d == DeckIngredients {
		return "ingredients"
	}
	return "letters"
}

// Model is the top-level Bubble Tea model for the demo.
type Model struct {
	row  cardrow.Model
	keys keyMap

	variant styles.Variant
	deck    Deck
	log     *log.Logger

	width  int
	height int

	lastOrder []string
}

// New builds the demo shell from the loaded configuration.
func New(cfg *config.Config, logger *log.Logger) Model {
	variant := styles.Variant(cfg.Theme)

	row := cardrow.New(deck.Letters())
	row.SetTheme(variant)
	row.SetResetKey(cfg.ResetKey)
	row.SetMotion(cfg.MotionEnabled())
	row.SetFocused(true)

	return Model{
		row:     row,
		keys:    defaultKeyMap(),
		variant: variant,
		deck:    DeckLetters,
		log:     logger,
	}
}

// Row exposes the card row component, mainly for tests.
func (m Model) Row() cardrow.Model {
	return m.row
}

// CurrentDeck returns the active demo deck.
func (m Model) CurrentDeck() Deck {
	return m.deck
}

// Variant returns the active theme variant.
func (m Model) Variant() styles.Variant {
	return m.variant
}

// LastOrder returns the most recent committed card order, or nil if the
// user has not reordered yet.
func (m Model) LastOrder() []string {
	return m.lastOrder
}

func (m Model) Init() tea.Cmd {
	return m.row.Init()
}
