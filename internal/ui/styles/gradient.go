package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// GradientSpec is a card's color descriptor: a two-stop horizontal gradient.
type GradientSpec struct {
	From lipgloss.Color
	To   lipgloss.Color
}

// Render renders text with the gradient applied left to right.
func (g GradientSpec) Render(text string) string {
	return g.render(text, false)
}

// RenderBold renders bold text with the gradient applied left to right.
func (g GradientSpec) RenderBold(text string) string {
	return g.render(text, true)
}

// Stops returns n colors blended between the gradient's endpoints.
// Useful for coloring a multi-row card body.
func (g GradientSpec) Stops(n int) []lipgloss.Color {
	blended := blendColors(n, g.From, g.To)
	out := make([]lipgloss.Color, len(blended))
	for i, c := range blended {
		out[i] = lipgloss.Color(colorToHex(c))
	}
	return out
}

// At returns the gradient color at position t in [0, 1].
func (g GradientSpec) At(t float64) lipgloss.Color {
	c1, _ := colorful.MakeColor(lipglossToColor(g.From))
	c2, _ := colorful.MakeColor(lipglossToColor(g.To))
	t = min(max(t, 0), 1)
	return lipgloss.Color(c1.BlendHcl(c2, t).Hex())
}

func (g GradientSpec) render(text string, bold bool) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}

	if len(clusters) == 1 {
		style := lipgloss.NewStyle().Foreground(g.From)
		if bold {
			style = style.Bold(true)
		}
		return style.Render(text)
	}

	colors := blendColors(len(clusters), g.From, g.To)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorToHex(colors[i])))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// blendColors returns a slice of colors blended between from and to.
// Blending is done in HCL color space for perceptually uniform transitions.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{from}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t)
	}

	return colors
}

// lipglossToColor converts a lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	cf, ok := c.(colorful.Color)
	if ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
