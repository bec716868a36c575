// Package cardrow implements a horizontal row of styled cards with
// drag-to-reorder. Cards can be picked up with the mouse or the keyboard;
// while a drag is active the arched row flattens into a target strip and
// nearby siblings are pushed away from the pointer. Committed reorders are
// reported to the host through OrderChangedMsg.
package cardrow

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardrow/internal/deck"
	"github.com/llehouerou/cardrow/internal/order"
	"github.com/llehouerou/cardrow/internal/ui"
	"github.com/llehouerou/cardrow/internal/ui/styles"
)

// Model is the card row component state.
type Model struct {
	ui.Base

	keys  KeyMap
	theme *styles.Theme
	st    cardStyles

	items []deck.Item
	order order.Order
	focus int // focused position within the order

	session Session
	field   springField

	motion    bool // spring animation enabled
	animating bool // a frame tick is scheduled

	announcement Announcement
	announceSeq  int64
}

// New creates a card row over the given items, in their natural order.
func New(items []deck.Item) Model {
	theme := styles.For(styles.VariantDark)
	return Model{
		keys:   DefaultKeyMap(""),
		theme:  theme,
		st:     newCardStyles(theme),
		items:  items,
		order:  order.New(deck.IDs(items)),
		field:  newSpringField(),
		motion: true,
	}
}

// SetTheme switches the color theme. Only colors and shadows change.
func (m *Model) SetTheme(v styles.Variant) {
	m.theme = styles.For(v)
	m.st = newCardStyles(m.theme)
}

// Theme returns the active theme.
func (m Model) Theme() *styles.Theme {
	return m.theme
}

// SetResetKey rebinds the reset-to-natural-order shortcut.
func (m *Model) SetResetKey(k string) {
	m.keys = DefaultKeyMap(k)
}

// SetMotion enables or disables spring animation. With motion off, cards
// snap to their layout targets.
func (m *Model) SetMotion(enabled bool) {
	m.motion = enabled
}

// KeyMap returns the active key bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// SetItems swaps the deck. An in-progress drag is discarded as cancelled
// before the order is reconciled: stale ids are dropped, new ids appended in
// natural position, and a fully disjoint deck yields its natural order.
func (m *Model) SetItems(items []deck.Item) {
	m.session.clear()
	m.items = items
	m.order = m.order.Reconcile(deck.IDs(items))

	keep := make(map[string]struct{}, len(items))
	for _, it := range items {
		keep[it.ID] = struct{}{}
	}
	m.field.prune(keep)

	if m.focus >= m.order.Len() {
		m.focus = max(m.order.Len()-1, 0)
	}
}

// Items returns the current item set.
func (m Model) Items() []deck.Item {
	return m.items
}

// Order returns the committed id sequence.
func (m Model) Order() []string {
	return m.order.IDs()
}

// Focused returns the id of the focused card, or "" for an empty row.
func (m Model) Focused() string {
	ids := m.order.IDs()
	if m.focus < 0 || m.focus >= len(ids) {
		return ""
	}
	return ids[m.focus]
}

// Dragging reports whether a drag is in progress.
func (m Model) Dragging() bool {
	return m.session.Dragging()
}

// Announcement returns the current live-region announcement. The zero value
// means the region is silent.
func (m Model) Announcement() Announcement {
	return m.announcement
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) itemByID(id string) (deck.Item, bool) {
	return deck.ByID(m.items, id)
}

func (m Model) labelOf(id string) string {
	if it, ok := m.itemByID(id); ok {
		return it.Label
	}
	return id
}
