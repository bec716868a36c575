// Package icons provides the UI chrome glyphs in configurable styles.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Handle   string // drag handle shown on the focused card
	Grabbed  string // handle variant while a card is being dragged
	Theme    string // theme toggle hint in the footer
	Reset    string // reset hint in the footer
	Announce string // prefix for the live announcement line
	DeckSlot string // marker for the ghost slot left by a dragged card
}

var (
	nerdIcons = Icons{
		Handle:   "", // nf-fa-bars
		Grabbed:  "", // nf-fa-hand_paper_o
		Theme:    "", // nf-fa-adjust
		Reset:    "", // nf-fa-undo
		Announce: "", // nf-fa-bullhorn
		DeckSlot: "", // nf-fa-square_o
	}

	unicodeIcons = Icons{
		Handle:   "≡",
		Grabbed:  "✊",
		Theme:    "◐",
		Reset:    "↺",
		Announce: "🔈",
		DeckSlot: "▢",
	}

	noneIcons = Icons{
		Handle:   "=",
		Grabbed:  "*",
		Theme:    "[t]",
		Reset:    "[r]",
		Announce: ">",
		DeckSlot: "_",
	}
)

var current = unicodeIcons

// SetStyle selects the active icon style. Unknown styles select unicode.
func SetStyle(s Style) {
	switch s {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}
