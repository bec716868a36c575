// Package deck defines the card items displayed by the row and the built-in
// demo decks.
package deck

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cardrow/internal/ui/styles"
)

// Item is a single card as supplied by the caller. Items are immutable for a
// given rendering pass; swapping the whole deck is the only way the item set
// changes.
type Item struct {
	ID       string
	Label    string
	Gradient styles.GradientSpec
	Icon     string // optional visual, rendered inside the card body
}

// IDs returns the natural-order ids of items.
func IDs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// ByID returns the item with the given id and true, or a zero Item and false.
func ByID(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func gradient(from, to string) styles.GradientSpec {
	return styles.GradientSpec{From: lipgloss.Color(from), To: lipgloss.Color(to)}
}

// Letters returns the ten-card letter demo deck.
func Letters() []Item {
	labels := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	hues := []struct{ from, to string }{
		{"#f87171", "#fb923c"},
		{"#fb923c", "#facc15"},
		{"#facc15", "#a3e635"},
		{"#a3e635", "#34d399"},
		{"#34d399", "#22d3ee"},
		{"#22d3ee", "#60a5fa"},
		{"#60a5fa", "#818cf8"},
		{"#818cf8", "#c084fc"},
		{"#c084fc", "#f472b6"},
		{"#f472b6", "#f87171"},
	}

	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{
			ID:       l,
			Label:    l,
			Gradient: gradient(hues[i].from, hues[i].to),
		}
	}
	return items
}

// Ingredients returns the ten-card ingredient demo deck.
func Ingredients() []Item {
	return []Item{
		{ID: "tomato", Label: "Tomato", Gradient: gradient("#ef4444", "#f97316"), Icon: "🍅"},
		{ID: "avocado", Label: "Avocado", Gradient: gradient("#65a30d", "#15803d"), Icon: "🥑"},
		{ID: "lemon", Label: "Lemon", Gradient: gradient("#facc15", "#eab308"), Icon: "🍋"},
		{ID: "basil", Label: "Basil", Gradient: gradient("#22c55e", "#166534"), Icon: "🌿"},
		{ID: "garlic", Label: "Garlic", Gradient: gradient("#e7e5e4", "#a8a29e"), Icon: "🧄"},
		{ID: "chili", Label: "Chili", Gradient: gradient("#dc2626", "#7f1d1d"), Icon: "🌶"},
		{ID: "shrimp", Label: "Shrimp", Gradient: gradient("#fb7185", "#f43f5e"), Icon: "🦐"},
		{ID: "mushroom", Label: "Mushroom", Gradient: gradient("#d6d3d1", "#78716c"), Icon: "🍄"},
		{ID: "cheese", Label: "Cheese", Gradient: gradient("#fde047", "#f59e0b"), Icon: "🧀"},
		{ID: "olive", Label: "Olive", Gradient: gradient("#84cc16", "#3f6212"), Icon: "🫒"},
	}
}
