package styles

import "github.com/charmbracelet/lipgloss"

// Variant selects one of the two color themes. It only affects color and
// shadow choices, never layout or behavior.
type Variant string

const (
	VariantDark  Variant = "dark"
	VariantLight Variant = "light"
)

// Theme defines the color palette and pre-built styles for the card row.
type Theme struct {
	Variant Variant

	// Brand/accent colors
	Primary   lipgloss.Color // focused card, active drag
	Secondary lipgloss.Color // secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // primary text
	FgMuted  lipgloss.Color // secondary text
	FgSubtle lipgloss.Color // tertiary text

	// Backgrounds
	BgBase lipgloss.Color // row background

	// Borders
	Border      lipgloss.Color // resting card borders
	BorderFocus lipgloss.Color // focused/dragged card border

	// Shadow is used for the ghost slot left behind by a dragged card.
	Shadow lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // default text
	Muted    lipgloss.Style // dimmed text
	Subtle   lipgloss.Style // very dim text
	Title    lipgloss.Style // bold, bright
	Accent   lipgloss.Style // primary accent
	Announce lipgloss.Style // live-region announcement line
	Success  lipgloss.Style
	Error    lipgloss.Style
}

var darkTheme = Theme{
	Variant:   VariantDark,
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase: lipgloss.Color("#1a1a1a"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),
	Shadow:      lipgloss.Color("#303030"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
}

var lightTheme = Theme{
	Variant:   VariantLight,
	Primary:   lipgloss.Color("#7c3aed"),
	Secondary: lipgloss.Color("#b45309"),

	FgBase:   lipgloss.Color("#2a2a2a"),
	FgMuted:  lipgloss.Color("#6a6a6a"),
	FgSubtle: lipgloss.Color("#9a9a9a"),

	BgBase: lipgloss.Color("#f4f4f4"),

	Border:      lipgloss.Color("#9a9a9a"),
	BorderFocus: lipgloss.Color("#7c3aed"),
	Shadow:      lipgloss.Color("#d8d8d8"),

	Success: lipgloss.Color("#15803d"),
	Error:   lipgloss.Color("#b91c1c"),
}

// For returns the theme for the given variant. Unknown variants fall back to
// the dark theme.
func For(v Variant) *Theme {
	if v == VariantLight {
		return &lightTheme
	}
	return &darkTheme
}

// Other returns the opposite variant, for theme toggling.
func (v Variant) Other() Variant {
	if v == VariantLight {
		return VariantDark
	}
	return VariantLight
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Announce: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
	}
}
